package messaging

// MessagingError is a custom error type for narration errors
type MessagingError string

// Error implements the error interface
func (e MessagingError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig MessagingError = "config cannot be nil"
	ErrNilRandom MessagingError = "random source cannot be nil"
	ErrNilInput  MessagingError = "input cannot be nil"
)
