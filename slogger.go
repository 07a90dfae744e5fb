package tuple

import "sync/atomic"

// SLogger abstracts the [*slog.Logger] behavior.
//
// The only events logged are precondition violations and arithmetic
// failures, both at Info level and immediately before the panic that
// reports them. Arithmetic itself never logs.
//
// The [*slog.Logger] type satisfies this interface.
type SLogger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
}

// DefaultSLogger returns the [SLogger] used until [SetLogger] is
// called. It discards everything.
func DefaultSLogger() SLogger {
	return discardSLogger{}
}

type discardSLogger struct{}

var _ SLogger = discardSLogger{}

// Debug implements [SLogger].
func (discardSLogger) Debug(msg string, args ...any) {}

// Info implements [SLogger].
func (discardSLogger) Info(msg string, args ...any) {}

type loggerBox struct {
	SLogger
}

var logger atomic.Pointer[loggerBox]

func init() {
	logger.Store(&loggerBox{DefaultSLogger()})
}

// SetLogger replaces the package-wide logger and returns the previous
// one. Passing nil restores [DefaultSLogger].
func SetLogger(l SLogger) SLogger {
	if l == nil {
		l = DefaultSLogger()
	}
	return logger.Swap(&loggerBox{l}).SLogger
}

// Logger returns the current package-wide logger.
func Logger() SLogger {
	return logger.Load().SLogger
}
