package ports

// Logger defines the interface for logging.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	// Info logs an informational message.
	Info(msg string)
	// Warn logs a warning. Used for degraded but non-fatal conditions.
	Warn(msg string)
	// Error logs an error together with its cause chain.
	Error(err error)
}
