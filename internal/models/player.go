package models

// Player represents a participant in a game
type Player struct {
	// ID is the unique identifier generated when roles are dealt
	ID string `json:"id"`

	// Name is the display name of the player, unique within a game
	Name string `json:"name"`

	// Role is the secret role dealt to the player
	Role Role `json:"role"`

	// IsAlive is flipped to false when the player is eliminated
	IsAlive bool `json:"isAlive"`
}
