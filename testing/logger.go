package testing

import (
	"testing"

	"github.com/arloliu/vcut/internal/logger"
	"github.com/arloliu/vcut/types"
)

// NewTestLogger creates a logger that writes to the test log.
//
// Output shows up with -v or when the test fails.
func NewTestLogger(t testing.TB) types.Logger {
	return logger.NewTest(t)
}
