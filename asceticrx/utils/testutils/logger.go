package testutils

import (
	"log/slog"
	"testing"

	"github.com/neilotoole/slogt"
)

// NewLogger returns a debug-level logger that writes through t.Log.
func NewLogger(t testing.TB) *slog.Logger {
	return slogt.New(t)
}
