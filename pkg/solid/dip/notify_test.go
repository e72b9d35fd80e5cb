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

package dip

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	perrors "github.com/mchmarny/patterns/pkg/errors"
)

type failingSender struct{ err error }

func (f failingSender) Send(context.Context, string) error { return f.err }

func TestNotificationService_Notify(t *testing.T) {
	tests := []struct {
		name   string
		sender func(*bytes.Buffer) NotificationSender
		msg    string
		want   string
		code   perrors.ErrorCode
	}{
		{
			name:   "email",
			sender: func(b *bytes.Buffer) NotificationSender { return EmailSender{W: b} },
			msg:    "Hello, World!",
			want:   "Sending email: Hello, World!\n",
		},
		{
			name:   "sms",
			sender: func(b *bytes.Buffer) NotificationSender { return SMSSender{W: b} },
			msg:    "ping",
			want:   "Sending SMS: ping\n",
		},
		{
			name:   "blank message",
			sender: func(b *bytes.Buffer) NotificationSender { return EmailSender{W: b} },
			msg:    "   ",
			code:   perrors.ErrCodeInvalidRequest,
		},
		{
			name:   "sender failure",
			sender: func(*bytes.Buffer) NotificationSender { return failingSender{err: errors.New("smtp down")} },
			msg:    "hi",
			code:   perrors.ErrCodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := NewNotificationService(tt.sender(&buf)).Notify(t.Context(), tt.msg)
			if tt.code != "" {
				assert.Equal(t, tt.code, perrors.CodeOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestNewNotificationService_NilPanics(t *testing.T) {
	assert.Panics(t, func() { NewNotificationService(nil) })
}

func TestRun(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Run(t.Context(), &buf))
	assert.Equal(t, "Sending email: Hello, World!\nSending SMS: Hello, World!\n", buf.String())
}
