// Package errors provides structured error types for better observability
// and programmatic error handling across the catalog.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeConstructionFailed,
//	    "failed to construct instance",
//	    cause,
//	    map[string]any{
//	        "holder":  "settings",
//	        "attempt": 2,
//	    },
//	)
//
// Callers branch on the code rather than the message:
//
//	if errors.HasCode(err, errors.ErrCodeNotFound) {
//	    // ...
//	}
package errors
