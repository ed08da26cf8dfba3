package logger

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/arloliu/vcut/types"
)

// Entry is one message captured by a TestLogger.
type Entry struct {
	Level   string
	Message string
}

// TestLogger implements types.Logger on top of the test log.
//
// Messages show up with -v or when the test fails, and are also kept so a
// test can assert on them (for example that a skipped edge was warned about).
// Partitioner workers log concurrently, so capture is mutex-guarded.
type TestLogger struct {
	t      testing.TB
	fields []any

	mu      *sync.Mutex
	entries *[]Entry
}

// Compile-time assertion that TestLogger implements Logger.
var _ types.Logger = (*TestLogger)(nil)

// NewTest creates a logger writing to the log of t.
//
// Example:
//
//	p, err := vcut.NewPartitioner(&cfg, hdrf, vcut.WithLogger(logger.NewTest(t)))
func NewTest(t testing.TB) *TestLogger {
	return &TestLogger{t: t, mu: &sync.Mutex{}, entries: &[]Entry{}}
}

// With returns a logger that prefixes every message with the given pairs.
// The returned logger shares captured entries with its parent.
func (l *TestLogger) With(keysAndValues ...any) *TestLogger {
	child := *l
	child.fields = append(append([]any(nil), l.fields...), keysAndValues...)

	return &child
}

// Entries returns a copy of the captured messages, oldest first.
func (l *TestLogger) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	return append([]Entry(nil), *l.entries...)
}

// Count returns how many messages with the given level and text were logged.
func (l *TestLogger) Count(level, msg string) int {
	n := 0
	for _, e := range l.Entries() {
		if e.Level == level && e.Message == msg {
			n++
		}
	}

	return n
}

func (l *TestLogger) Debug(msg string, keysAndValues ...any) { l.log("DEBUG", msg, keysAndValues) }
func (l *TestLogger) Info(msg string, keysAndValues ...any)  { l.log("INFO", msg, keysAndValues) }
func (l *TestLogger) Warn(msg string, keysAndValues ...any)  { l.log("WARN", msg, keysAndValues) }
func (l *TestLogger) Error(msg string, keysAndValues ...any) { l.log("ERROR", msg, keysAndValues) }

// Fatal logs the message and fails the test.
func (l *TestLogger) Fatal(msg string, keysAndValues ...any) {
	l.record("FATAL", msg)
	l.t.Fatalf("FATAL: %s%s", msg, formatKeyValues(l.fields, keysAndValues))
}

func (l *TestLogger) log(level, msg string, keysAndValues []any) {
	l.t.Helper()
	l.record(level, msg)
	l.t.Logf("%s: %s%s", level, msg, formatKeyValues(l.fields, keysAndValues))
}

func (l *TestLogger) record(level, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	*l.entries = append(*l.entries, Entry{Level: level, Message: msg})
}

// formatKeyValues renders pairs as " k=v k=v"; a dangling key gets <missing>.
func formatKeyValues(groups ...[]any) string {
	var b strings.Builder
	for _, kv := range groups {
		for i := 0; i < len(kv); i += 2 {
			if i+1 < len(kv) {
				fmt.Fprintf(&b, " %v=%v", kv[i], kv[i+1])
			} else {
				fmt.Fprintf(&b, " %v=<missing>", kv[i])
			}
		}
	}

	return b.String()
}
