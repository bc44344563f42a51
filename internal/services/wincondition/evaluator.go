// Package wincondition decides whether a game has ended and who won.
package wincondition

import "github.com/KirkDiggler/mafia/internal/models"

// Count holds the alive head count of each faction
type Count struct {
	Mafia int
	Town  int
}

// CountAlive tallies alive players by faction
func CountAlive(players []*models.Player) Count {
	var count Count
	for _, p := range players {
		if p == nil || !p.IsAlive {
			continue
		}
		if p.Role.IsMafia() {
			count.Mafia++
		} else {
			count.Town++
		}
	}
	return count
}

// Evaluate must be called after every elimination. The mafia-majority rule
// is checked before the all-mafia-dead rule, so an empty table is a mafia win.
func Evaluate(players []*models.Player) models.WinResult {
	count := CountAlive(players)

	if count.Mafia >= count.Town {
		return models.WinResult{Over: true, Winner: models.WinnerMafia}
	}

	if count.Mafia == 0 {
		return models.WinResult{Over: true, Winner: models.WinnerTown}
	}

	return models.WinResult{Over: false}
}
