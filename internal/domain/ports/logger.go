package ports

// Logger is the structured logging port of the core. Every validation
// and mutation decision point emits a structured entry through it.
type Logger interface {
	Info(msg string, args ...any)
	Error(msg string, args ...any)
	Debug(msg string, args ...any)
	Warn(msg string, args ...any)
	With(args ...any) Logger
}
