package standingsservice

import (
	"cmp"
	"slices"

	standingstypes "github.com/Black-And-White-Club/league-ranker/app/modules/standings/domain/types"
)

// ComputeRanking orders teams by descending points then ascending name and
// assigns competition ranks: tied teams share a rank and the next distinct
// points total takes its 1-based position (1, 2, 3, 3, 5).
// Each team's Rank field is updated as a side effect.
func (e *Engine) ComputeRanking() []standingstypes.RankingEntry {
	if len(e.teams) == 0 {
		return []standingstypes.RankingEntry{}
	}

	sorted := make([]*standingstypes.Team, 0, len(e.teams))
	for _, team := range e.teams {
		sorted = append(sorted, team)
	}

	// names are unique so the order is total
	slices.SortStableFunc(sorted, func(a, b *standingstypes.Team) int {
		if c := cmp.Compare(b.Points, a.Points); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})

	entries := make([]standingstypes.RankingEntry, len(sorted))
	for i, team := range sorted {
		rank := i + 1
		if i > 0 && team.Points == sorted[i-1].Points {
			rank = entries[i-1].Rank
		}
		team.Rank = &rank
		entries[i] = standingstypes.RankingEntry{
			Rank:     rank,
			TeamName: team.Name,
			Points:   team.Points,
		}
	}

	return entries
}
