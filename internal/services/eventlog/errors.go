package eventlog

// LogError is a custom error type for event log errors
type LogError string

// Error implements the error interface
func (e LogError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig        LogError = "config cannot be nil"
	ErrNilClock         LogError = "clock cannot be nil"
	ErrNilUUIDGenerator LogError = "UUID generator cannot be nil"
)
