package models

// Role is the secret identity dealt to a player at game start
type Role string

const (
	// RoleCivilian is an ordinary town member with no night action
	RoleCivilian Role = "civilian"

	// RoleSheriff is the town member who investigates one player each night
	RoleSheriff Role = "sheriff"

	// RoleMafia is a member of the mafia faction
	RoleMafia Role = "mafia"

	// RoleDon leads the mafia faction; treated as mafia for every rule
	RoleDon Role = "don"
)

// Faction is the team a role plays for
type Faction string

const (
	// FactionTown is civilians plus the sheriff
	FactionTown Faction = "town"

	// FactionMafia is mafia plus the don
	FactionMafia Faction = "mafia"
)

// IsMafia reports whether the role belongs to the mafia faction
func (r Role) IsMafia() bool {
	return r == RoleMafia || r == RoleDon
}

// Faction returns the team the role plays for
func (r Role) Faction() Faction {
	if r.IsMafia() {
		return FactionMafia
	}
	return FactionTown
}

// IsValid reports whether r is one of the four known roles
func (r Role) IsValid() bool {
	switch r {
	case RoleCivilian, RoleSheriff, RoleMafia, RoleDon:
		return true
	}
	return false
}

// String returns the string representation of the role
func (r Role) String() string {
	return string(r)
}
