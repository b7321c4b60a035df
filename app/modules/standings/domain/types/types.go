package standingstypes

import "fmt"

// NoTeamsToRank is rendered in place of an empty ranking table.
const NoTeamsToRank = "There are no teams to rank"

// Team is one league participant. Name is the identity key and is compared
// case-sensitively.
type Team struct {
	Name   string
	Points int
	// Rank is nil until the team has been ranked.
	Rank *int
}

// GameResult is one decoded match outcome.
type GameResult struct {
	Team1Name  string
	Team1Score int
	Team2Name  string
	Team2Score int
}

// RankingEntry is one row of a computed ranking table.
type RankingEntry struct {
	Rank     int
	TeamName string
	Points   int
}

// String renders the entry as "<rank>. <name>, <points> pts".
func (e RankingEntry) String() string {
	return fmt.Sprintf("%d. %s, %d pts", e.Rank, e.TeamName, e.Points)
}

// RenderLines renders a ranking table, substituting NoTeamsToRank when empty.
func RenderLines(entries []RankingEntry) []string {
	if len(entries) == 0 {
		return []string{NoTeamsToRank}
	}
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = e.String()
	}
	return lines
}
