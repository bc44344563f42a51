package game

import "github.com/KirkDiggler/mafia/internal/models"

type SaveGameInput struct {
	SessionID string
	State     *models.GameState
}

type GetGameInput struct {
	SessionID string
}

type DeleteGameInput struct {
	SessionID string
}

type GetActiveGamesInput struct {
}

type GetActiveGamesOutput struct {
	// SessionIDs are sorted
	SessionIDs []string
}
