package types

// Logger defines methods for structured logging.
//
// Every method takes a message followed by alternating key/value pairs,
// e.g. logger.Warn("edge skipped", "edge", e, "error", err).
type Logger interface {
	// Debug logs a message at DebugLevel.
	Debug(msg string, keysAndValues ...any)

	// Info logs a message at InfoLevel.
	Info(msg string, keysAndValues ...any)

	// Warn logs a message at WarnLevel.
	Warn(msg string, keysAndValues ...any)

	// Error logs a message at ErrorLevel.
	Error(msg string, keysAndValues ...any)

	// Fatal logs a message at FatalLevel and calls os.Exit(1).
	//
	// Library code never calls Fatal; it is reserved for command-line entry points.
	Fatal(msg string, keysAndValues ...any)
}
