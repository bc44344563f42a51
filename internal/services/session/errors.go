package session

// SessionError is a custom error type for session errors
type SessionError string

// Error implements the error interface
func (e SessionError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrSessionNotFound  SessionError = "session not found"
	ErrNilInput         SessionError = "input cannot be nil"
	ErrNilUpdater       SessionError = "updater cannot be nil"
	ErrNilState         SessionError = "updater returned a nil state"
	ErrNilConfig        SessionError = "config cannot be nil"
	ErrNilRepository    SessionError = "game repository cannot be nil"
	ErrNilUUIDGenerator SessionError = "UUID generator cannot be nil"
)
