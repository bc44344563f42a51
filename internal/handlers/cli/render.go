package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/enescakir/emoji"

	"github.com/KirkDiggler/mafia/internal/logging"
	"github.com/KirkDiggler/mafia/internal/models"
	"github.com/KirkDiggler/mafia/internal/services/eventlog"
	"github.com/KirkDiggler/mafia/internal/services/game"
	"github.com/KirkDiggler/mafia/internal/services/messaging"
)

// narrate prints the entries added between prev and next, then whatever
// screen next is on
func (c *Console) narrate(ctx context.Context, prev, next *models.GameState) {
	added := next.GameLog
	if prev != nil && !prev.IsOver() && len(prev.GameLog) <= len(next.GameLog) {
		added = next.GameLog[len(prev.GameLog):]
	}

	resolved := false
	for _, entry := range added {
		switch entry.Kind {
		case models.EventKindGameEnd:
			continue
		case models.EventKindElimination:
			c.renderElimination(ctx, next, entry)
			resolved = true
			continue
		case models.EventKindEscalation, models.EventKindNoElimination:
			resolved = true
		}
		c.printf("  %s %s\n", entryIcon(entry.Kind), entry.Action)
	}

	if resolved {
		c.renderVoteSummary(next)
	}

	if prev == nil || prev.Phase != next.Phase || prev.Round != next.Round || prev.VotingType != next.VotingType {
		c.renderBanner(ctx, next)
	}

	if next.IsOver() {
		c.renderGameOver(ctx, next)
	}

	c.renderPrompt(next)
}

func (c *Console) renderElimination(ctx context.Context, state *models.GameState, entry models.LogEntry) {
	votes := 0
	if last := state.LastVote; last != nil {
		if last.VotingType == models.VotingTypeConfirmation {
			votes = last.ExileVotes
		} else {
			votes = last.Counts[entry.TargetID]
		}
	}

	out, err := c.messages.GetEliminationMessage(ctx, &messaging.GetEliminationMessageInput{
		PlayerName: state.PlayerName(entry.TargetID),
		Votes:      votes,
	})
	if err != nil {
		c.printf("  %s %s\n", emoji.Skull, entry.Action)
		return
	}
	c.printf("  %s %s\n", emoji.Skull, out.Message)
}

// renderBanner prints the title of the phase state just entered
func (c *Console) renderBanner(ctx context.Context, state *models.GameState) {
	out, err := c.messages.GetPhaseMessage(ctx, &messaging.GetPhaseMessageInput{
		Phase:      state.Phase,
		VotingType: state.VotingType,
		Round:      state.Round,
	})
	if err != nil {
		logging.FromContext(ctx).Warnw("failed to get phase message", "error", err)
		return
	}

	c.printf("\n%s %s\n%s\n", phaseIcon(state.Phase), strings.ToUpper(out.Title), out.Message)

	if state.Phase == models.PhaseDay {
		for _, kill := range eventlog.NightKills(state.GameLog, state.Round) {
			msg, err := c.messages.GetNightKillMessage(ctx, &messaging.GetNightKillMessageInput{
				PlayerName: state.PlayerName(kill.TargetID),
			})
			if err != nil {
				continue
			}
			c.printf("%s %s\n", emoji.BrokenHeart, msg.Message)
		}
	}
}

// renderPrompt tells the moderator what the game is waiting for
func (c *Console) renderPrompt(state *models.GameState) {
	switch state.Phase {
	case models.PhaseSetup:
		c.printf("%s Type `start Name1, Name2, ...` with ten names, or `start` for random names.\n", emoji.Pen)

	case models.PhaseNight:
		switch game.CurrentNightStep(state) {
		case game.NightStepMafia:
			c.printf("%s Mafia, choose a victim with `kill <name>`: %s\n", emoji.Ninja, names(game.EligibleTargets(state)))
		case game.NightStepSheriff:
			c.printf("%s Sheriff, check a player with `investigate <name>`: %s\n", emoji.Detective, names(game.EligibleTargets(state)))
		case game.NightStepAcknowledge:
			c.printf("%s Type `continue` when the sheriff has seen the result.\n", emoji.Stopwatch)
		}

	case models.PhaseDay:
		c.printf("%s Discuss! Type `ballot` to open the vote.\n", emoji.Loudspeaker)

	case models.PhaseVoting:
		if state.ShowVotingResults {
			c.printf("%s Type `continue` to move on to the next night.\n", emoji.Stopwatch)
			return
		}

		voter, ok := game.NextVoter(state)
		if !ok {
			return
		}

		if state.VotingType == models.VotingTypeConfirmation && len(state.TiedPlayerIDs) > 0 {
			c.printf("%s %s, exile or keep %s? `confirm exile` or `confirm keep`\n",
				emoji.BallotBoxWithBallot, voter.Name, state.PlayerName(state.TiedPlayerIDs[0]))
			return
		}

		c.printf("%s %s, cast your vote with `vote <name>`: %s\n",
			emoji.BallotBoxWithBallot, voter.Name, names(game.EligibleTargets(state)))

	case models.PhaseResults:
		c.printf("%s Type `again` to replay with the same players, `start` for a new table or `quit`.\n", emoji.VideoGame)
	}
}

// renderStatus prints the roster; roles are shown only when reveal is set
func (c *Console) renderStatus(state *models.GameState, reveal bool) {
	c.printf("%s Round %d, %s", emoji.CardIndex, state.Round, state.Phase)
	if state.Phase == models.PhaseVoting {
		c.printf(" (%s)", state.VotingType)
	}
	c.println("")

	for i, p := range state.Players {
		mark := emoji.CheckMark.String()
		if !p.IsAlive {
			mark = emoji.Skull.String()
		}

		line := fmt.Sprintf("  %2d. %s %s", i+1, mark, p.Name)
		if reveal {
			line = fmt.Sprintf("%-24s %s %s", line, roleIcon(p.Role), p.Role)
		}
		c.println(line)
	}
}

// renderVoteSummary prints the distribution of the last resolved ballot
func (c *Console) renderVoteSummary(state *models.GameState) {
	last := state.LastVote
	if last == nil {
		return
	}

	c.printf("%s Results (%d ballots)\n", emoji.BarChart, last.TotalVotes)

	if last.VotingType == models.VotingTypeConfirmation {
		keep := last.TotalVotes - last.ExileVotes
		c.printf("  Exile %s: %d (%d%%)\n", state.PlayerName(last.TargetID), last.ExileVotes, last.Percentage(last.ExileVotes))
		c.printf("  Keep: %d (%d%%)\n", keep, last.Percentage(keep))
	} else {
		ids := make([]string, 0, len(last.Counts))
		for id := range last.Counts {
			ids = append(ids, id)
		}
		seat := seating(state)
		sort.Slice(ids, func(i, j int) bool {
			if last.Counts[ids[i]] != last.Counts[ids[j]] {
				return last.Counts[ids[i]] > last.Counts[ids[j]]
			}
			return seat[ids[i]] < seat[ids[j]]
		})

		for _, id := range ids {
			count := last.Counts[id]
			c.printf("  %-12s %s %d (%d%%)\n", state.PlayerName(id), strings.Repeat("#", count), count, last.Percentage(count))
		}
	}

	if last.EliminatedID != "" {
		c.printf("  %s eliminated: %s\n", emoji.Skull, state.PlayerName(last.EliminatedID))
	}
}

// renderGameOver announces the winner and reveals the table
func (c *Console) renderGameOver(ctx context.Context, state *models.GameState) {
	out, err := c.messages.GetGameOverMessage(ctx, &messaging.GetGameOverMessageInput{Winner: state.Winner})
	if err == nil {
		c.printf("%s %s %s\n", emoji.Trophy, out.Title, out.Message)
	}

	c.renderStatus(state, true)

	order := eventlog.EliminationOrder(state.GameLog)
	if len(order) == 0 {
		return
	}

	c.println("Elimination order:")
	for i, entry := range order {
		how := "voted out"
		if entry.Kind == models.EventKindNightKill {
			how = "killed at night"
		}
		c.printf("  %d. %s, round %d, %s\n", i+1, state.PlayerName(entry.TargetID), entry.Round, how)
	}
}

// renderLog prints the log newest round first
func (c *Console) renderLog(state *models.GameState) {
	groups := eventlog.GroupByRound(state.GameLog)
	if len(groups) == 0 {
		c.println("The log is empty.")
		return
	}

	for _, group := range groups {
		c.printf("%s Round %d\n", emoji.Bookmark, group.Round)
		for _, entry := range group.Entries {
			stamp := time.UnixMilli(entry.Timestamp).Format("15:04:05")
			c.printf("  [%s] %s %s\n", stamp, entryIcon(entry.Kind), entry.Action)
		}
	}
}

// renderError prints the friendly version of err
func (c *Console) renderError(ctx context.Context, err error) {
	out, msgErr := c.messages.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{Err: err})
	if msgErr != nil {
		c.printf("%s %v\n", emoji.CrossMark, err)
		return
	}
	c.printf("%s %s\n", emoji.CrossMark, out.Message)
}

func names(players []*models.Player) string {
	list := make([]string, 0, len(players))
	for _, p := range players {
		list = append(list, p.Name)
	}
	return strings.Join(list, ", ")
}

func seating(state *models.GameState) map[string]int {
	seat := make(map[string]int, len(state.Players))
	for i, p := range state.Players {
		seat[p.ID] = i
	}
	return seat
}

func phaseIcon(phase models.Phase) emoji.Emoji {
	switch phase {
	case models.PhaseNight:
		return emoji.CrescentMoon
	case models.PhaseDay:
		return emoji.Sun
	case models.PhaseVoting:
		return emoji.BallotBoxWithBallot
	case models.PhaseResults:
		return emoji.ChequeredFlag
	default:
		return emoji.GameDie
	}
}

func roleIcon(role models.Role) emoji.Emoji {
	switch role {
	case models.RoleDon:
		return emoji.Crown
	case models.RoleMafia:
		return emoji.Emoji(emoji.Ninja.String())
	case models.RoleSheriff:
		return emoji.Star
	default:
		return emoji.House
	}
}

func entryIcon(kind models.EventKind) emoji.Emoji {
	switch kind {
	case models.EventKindNightKill:
		return emoji.BrokenHeart
	case models.EventKindInvestigation:
		return emoji.Emoji(emoji.Detective.String())
	case models.EventKindVoteCast:
		return emoji.BallotBoxWithBallot
	case models.EventKindEscalation, models.EventKindConfirmation:
		return emoji.Loudspeaker
	case models.EventKindElimination:
		return emoji.Skull
	case models.EventKindGameEnd:
		return emoji.Trophy
	default:
		return emoji.Bookmark
	}
}
