package eventlog

import (
	"sort"

	"github.com/KirkDiggler/mafia/internal/models"
)

// RoundGroup is the display bucket for one round
type RoundGroup struct {
	Round   int
	Entries []models.LogEntry
}

// GroupByRound buckets the log by round, newest round first and newest
// entry first within a round
func GroupByRound(log []models.LogEntry) []RoundGroup {
	byRound := make(map[int][]models.LogEntry)
	var rounds []int

	for _, entry := range log {
		if _, ok := byRound[entry.Round]; !ok {
			rounds = append(rounds, entry.Round)
		}
		byRound[entry.Round] = append(byRound[entry.Round], entry)
	}

	sort.Sort(sort.Reverse(sort.IntSlice(rounds)))

	groups := make([]RoundGroup, 0, len(rounds))
	for _, round := range rounds {
		entries := byRound[round]
		// Reverse first so equal timestamps keep the later entry on top.
		for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
			entries[i], entries[j] = entries[j], entries[i]
		}
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Timestamp > entries[j].Timestamp
		})
		groups = append(groups, RoundGroup{Round: round, Entries: entries})
	}

	return groups
}

// Filter returns entries of the given kinds in chronological order
func Filter(log []models.LogEntry, kinds ...models.EventKind) []models.LogEntry {
	wanted := make(map[models.EventKind]bool, len(kinds))
	for _, kind := range kinds {
		wanted[kind] = true
	}

	var result []models.LogEntry
	for _, entry := range log {
		if wanted[entry.Kind] {
			result = append(result, entry)
		}
	}
	return result
}

// NightKills returns the mafia kills of a round, for "last night" summaries
func NightKills(log []models.LogEntry, round int) []models.LogEntry {
	var result []models.LogEntry
	for _, entry := range Filter(log, models.EventKindNightKill) {
		if entry.Round == round {
			result = append(result, entry)
		}
	}
	return result
}

// EliminationOrder returns every night kill and vote elimination in the order they happened
func EliminationOrder(log []models.LogEntry) []models.LogEntry {
	return Filter(log, models.EventKindNightKill, models.EventKindElimination)
}

// Last returns the most recent entry of kind
func Last(log []models.LogEntry, kind models.EventKind) (models.LogEntry, bool) {
	for i := len(log) - 1; i >= 0; i-- {
		if log[i].Kind == kind {
			return log[i], true
		}
	}
	return models.LogEntry{}, false
}
