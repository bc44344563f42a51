package voting

// VotingError is a custom error type for vote resolution errors
type VotingError string

// Error implements the error interface
func (e VotingError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilInput                  VotingError = "input cannot be nil"
	ErrUnknownVotingType         VotingError = "unknown voting type"
	ErrMissingConfirmationTarget VotingError = "confirmation vote has no candidate"
)
