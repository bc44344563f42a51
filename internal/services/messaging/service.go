package messaging

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/mafia/internal/models"
	"github.com/KirkDiggler/mafia/internal/random"
	"github.com/KirkDiggler/mafia/internal/services/game"
	"github.com/KirkDiggler/mafia/internal/services/session"
)

// service implements the Service interface
type service struct {
	// Random source for selecting message variants
	rand random.Source
}

// New creates a new narration service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Random == nil {
		return nil, ErrNilRandom
	}

	return &service{
		rand: cfg.Random,
	}, nil
}

func (s *service) pick(messages []string) string {
	return messages[s.rand.Intn(len(messages))]
}

// GetPhaseMessage returns a banner for the phase the game just entered
func (s *service) GetPhaseMessage(ctx context.Context, input *GetPhaseMessageInput) (*GetPhaseMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	tone := input.PreferredTone
	if tone == "" {
		tone = ToneDramatic
	}

	var title string
	var messages []string

	switch input.Phase {
	case models.PhaseSetup:
		title = "New Game"
		messages = []string{
			"Ten names, four secrets. Who sits at the table tonight?",
			"Gather round. Enter the names of the townsfolk.",
		}
	case models.PhaseNight:
		title = fmt.Sprintf("Night %d", input.Round)
		messages = []string{
			"The town falls asleep. The mafia opens its eyes.",
			"Darkness settles over the town. Someone will not see the morning.",
			"Everyone close your eyes. The mafia has work to do.",
			"The streets are empty and the mafia is restless.",
		}
	case models.PhaseDay:
		title = fmt.Sprintf("Day %d", input.Round)
		messages = []string{
			"The sun rises on a shaken town. Time to talk.",
			"Morning comes. Someone in this room is lying.",
			"The town wakes up and counts its neighbors.",
		}
	case models.PhaseVoting:
		switch input.VotingType {
		case models.VotingTypeRunoff:
			title = "Runoff Vote"
			messages = []string{
				"Nobody could agree. Choose between the tied players only.",
				"It's a tie! Vote again, tied players only.",
			}
		case models.VotingTypeConfirmation:
			title = "Confirmation Vote"
			messages = []string{
				"Still deadlocked. Exile or keep? A majority decides.",
				"One name remains. Does the town want them gone?",
			}
		default:
			title = "Voting"
			messages = []string{
				"Talk is cheap. Cast your votes.",
				"The town must decide. Who goes?",
				"Point your fingers. The most votes leaves the town.",
			}
		}
	case models.PhaseResults:
		title = "Game Over"
		messages = []string{
			"The dust settles. Let's see who was who.",
			"It's over. Time to reveal every secret.",
		}
	default:
		title = "Mafia"
		messages = []string{"The game continues."}
	}

	if tone == ToneNeutral {
		messages = messages[:1]
	}

	return &GetPhaseMessageOutput{
		Title:   title,
		Message: s.pick(messages),
		Tone:    tone,
	}, nil
}

// GetNightKillMessage announces the mafia's victim to the town
func (s *service) GetNightKillMessage(ctx context.Context, input *GetNightKillMessageInput) (*GetNightKillMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	messages := []string{
		"%s was found at dawn. The mafia struck in the night.",
		"%s will not be joining the discussion today.",
		"The town mourns %s, taken in the night.",
		"%s went to sleep and never woke up.",
	}

	return &GetNightKillMessageOutput{
		Message: fmt.Sprintf(s.pick(messages), input.PlayerName),
	}, nil
}

// GetEliminationMessage announces the player removed by vote
func (s *service) GetEliminationMessage(ctx context.Context, input *GetEliminationMessageInput) (*GetEliminationMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	messages := []string{
		"The town has spoken. %s is out with %d votes.",
		"%s is escorted out of town after %d votes.",
		"%s leaves the table with %d votes against them.",
	}

	return &GetEliminationMessageOutput{
		Message: fmt.Sprintf(s.pick(messages), input.PlayerName, input.Votes),
	}, nil
}

// GetGameOverMessage announces the winning faction
func (s *service) GetGameOverMessage(ctx context.Context, input *GetGameOverMessageInput) (*GetGameOverMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	var messages []string
	switch input.Winner {
	case models.WinnerMafia:
		messages = []string{
			"The mafia now runs this town.",
			"Outnumbered and outplayed. The town belongs to the mafia.",
			"Nobody is left to stop them.",
		}
	case models.WinnerTown:
		messages = []string{
			"Every last mafioso is gone. The town sleeps safely tonight.",
			"Justice prevails! The mafia has been rooted out.",
			"The town saw through the lies.",
		}
	default:
		return &GetGameOverMessageOutput{Title: "Game Over", Message: "Nobody won this one."}, nil
	}

	return &GetGameOverMessageOutput{
		Title:   fmt.Sprintf("%s wins!", input.Winner.Title()),
		Message: s.pick(messages),
	}, nil
}

// GetErrorMessage returns a user-friendly error message
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	tone := input.PreferredTone
	if tone == "" {
		tone = ToneFunny
	}

	var messages []string
	switch {
	case errors.Is(input.Err, game.ErrGameOver):
		messages = []string{
			"The game is over! Type `again` for a rematch.",
			"It's done. The bodies are counted. Type `again` to play again.",
		}
	case errors.Is(input.Err, game.ErrInvalidPlayerCount):
		messages = []string{
			"Mafia needs exactly 10 players. Count again!",
			"We need ten names, no more, no less.",
		}
	case errors.Is(input.Err, game.ErrDuplicateName):
		messages = []string{
			"Two players with the same name? That's how mistakes happen.",
			"Names must be unique. Give somebody a nickname.",
		}
	case errors.Is(input.Err, game.ErrEmptyName):
		messages = []string{
			"Every player needs a name, even the mafia.",
		}
	case errors.Is(input.Err, game.ErrInvalidPhase), errors.Is(input.Err, game.ErrWrongNightStep):
		messages = []string{
			"That can't happen right now. Type `status` to see what the game is waiting for.",
			"Not yet! Check `status` for what comes next.",
		}
	case errors.Is(input.Err, game.ErrPlayerNotFound):
		messages = []string{
			"Who? Nobody at this table goes by that name.",
			"That player isn't in this game.",
		}
	case errors.Is(input.Err, game.ErrPlayerNotAlive):
		messages = []string{
			"That player is already dead. Let them rest.",
			"Dead players tell no tales, and cast no votes.",
		}
	case errors.Is(input.Err, game.ErrInvalidTarget):
		messages = []string{
			"Nice try. Pick someone else.",
			"That target isn't allowed for this role.",
		}
	case errors.Is(input.Err, game.ErrAlreadyVoted):
		messages = []string{
			"One vote per player! No ballot stuffing.",
			"You've already voted this round.",
		}
	case errors.Is(input.Err, game.ErrNotEligibleTarget):
		messages = []string{
			"That player isn't on the ballot this round.",
			"Only the tied players can be voted for now.",
		}
	case errors.Is(input.Err, game.ErrWrongVotingType):
		messages = []string{
			"Wrong kind of vote. Use `vote` for names and `confirm` for exile or keep.",
		}
	case errors.Is(input.Err, game.ErrResultsPending), errors.Is(input.Err, game.ErrNoResults):
		messages = []string{
			"Read the results first, then `continue`.",
		}
	case errors.Is(input.Err, session.ErrSessionNotFound):
		messages = []string{
			"No game is running. Type `start` to begin.",
		}
	default:
		messages = []string{
			"Something went wrong! Try again.",
			"The town is confused. Try that again.",
		}
	}

	message := s.pick(messages)
	if tone == ToneNeutral && input.Err != nil {
		message = input.Err.Error()
	}

	return &GetErrorMessageOutput{
		Message: message,
		Tone:    tone,
	}, nil
}
