package roles

// RoleError is a custom error type for role assignment errors
type RoleError string

// Error implements the error interface
func (e RoleError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInvalidPlayerCount RoleError = "game requires exactly 10 players"
	ErrInvalidNameCount   RoleError = "name count must be positive"
	ErrNotEnoughNames     RoleError = "not enough default names"
	ErrNilConfig          RoleError = "config cannot be nil"
	ErrNilRandom          RoleError = "random source cannot be nil"
	ErrNilUUIDGenerator   RoleError = "UUID generator cannot be nil"
)
