package domain

// Logger defines the logging operations used across the application.
type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

// ChangeStore records and queries the history of configuration changes.
type ChangeStore interface {
	// Insert records one change.
	Insert(change Change) error

	// List returns changes matching the given filter, newest first.
	List(filter ChangeFilter) ([]Change, error)

	// Close releases the underlying storage.
	Close() error
}
