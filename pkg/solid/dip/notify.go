// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package dip makes the notification service depend on a sender abstraction
// rather than on email or SMS directly.
package dip

import (
	"context"
	"fmt"
	"io"
	"strings"

	perrors "github.com/mchmarny/patterns/pkg/errors"
)

// NotificationSender is the abstraction both sides depend on.
type NotificationSender interface {
	Send(ctx context.Context, message string) error
}

type EmailSender struct {
	W io.Writer
}

func (s EmailSender) Send(ctx context.Context, message string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(s.W, "Sending email: %s\n", message)
	return err
}

type SMSSender struct {
	W io.Writer
}

func (s SMSSender) Send(ctx context.Context, message string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(s.W, "Sending SMS: %s\n", message)
	return err
}

// NotificationService is the high-level module.
type NotificationService struct {
	sender NotificationSender
}

// NewNotificationService panics on a nil sender.
func NewNotificationService(sender NotificationSender) *NotificationService {
	if sender == nil {
		panic("dip: NewNotificationService(nil sender)")
	}
	return &NotificationService{sender: sender}
}

// Notify sends a non-blank message through the configured sender.
func (s *NotificationService) Notify(ctx context.Context, message string) error {
	if strings.TrimSpace(message) == "" {
		return perrors.New(perrors.ErrCodeInvalidRequest, "notification message is empty")
	}
	if err := s.sender.Send(ctx, message); err != nil {
		return perrors.Wrap(perrors.ErrCodeInternal, "failed to send notification", err)
	}
	return nil
}
