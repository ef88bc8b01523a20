// Package test contains helpers for unit tests.
package test

import (
	"context"
	"testing"
	"time"

	"github.com/jackhall/datapy/tlog"
)

// Context returns a context carrying a test logger, for exercising code
// that reports progress through tlog.
func Context(t *testing.T) context.Context {
	return tlog.WithLogger(context.Background(), tlog.NewForTesting(t))
}

// ContextWithTimeout is a version of Context with a timeout.
//
// If the timeout expires, the context is closed with
// context.DeadlineExceeded.
func ContextWithTimeout(t *testing.T, timeout time.Duration) context.Context {
	ctx, cancel := context.WithTimeout(Context(t), timeout)
	t.Cleanup(cancel)
	return ctx
}
