// Package logger provides the default no-op logger of the Partitioner and
// strategies, and a capturing logger for tests.
package logger

import "github.com/arloliu/vcut/types"

// NopLogger is a no-op logger that discards all log messages.
//
// It is what NewPartitioner and the strategy constructors fall back to when
// no WithLogger option is given, so a partitioning run is silent by default.
// Lock restarts are logged at debug level per edge, which is why the default
// must cost nothing.
//
// Example:
//
//	p, err := vcut.NewPartitioner(&cfg, hdrf, vcut.WithLogger(logger.NewNop()))
type NopLogger struct{}

// Compile-time assertion that NopLogger implements Logger.
var _ types.Logger = (*NopLogger)(nil)

// NewNop creates a new no-op logger that discards all messages.
//
// Returns:
//   - *NopLogger: Logger that performs no operations
func NewNop() *NopLogger {
	return &NopLogger{}
}

// Debug discards the message.
func (n *NopLogger) Debug(_ /* msg */ string, _ /* keysAndValues */ ...any) {}

// Info discards the message.
func (n *NopLogger) Info(_ /* msg */ string, _ /* keysAndValues */ ...any) {}

// Warn discards the message.
func (n *NopLogger) Warn(_ /* msg */ string, _ /* keysAndValues */ ...any) {}

// Error discards the message.
func (n *NopLogger) Error(_ /* msg */ string, _ /* keysAndValues */ ...any) {}

// Fatal discards the message; it never exits the process.
func (n *NopLogger) Fatal(_ /* msg */ string, _ /* keysAndValues */ ...any) {}
