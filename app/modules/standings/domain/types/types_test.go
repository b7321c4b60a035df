package standingstypes

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRankingEntry_String(t *testing.T) {
	require.Equal(t, "3. FC Awesome, 1 pts", RankingEntry{Rank: 3, TeamName: "FC Awesome", Points: 1}.String())
}

func TestRenderLines(t *testing.T) {
	t.Run("empty table", func(t *testing.T) {
		require.Equal(t, []string{"There are no teams to rank"}, RenderLines(nil))
	})

	t.Run("entries", func(t *testing.T) {
		got := RenderLines([]RankingEntry{
			{Rank: 1, TeamName: "Arms", Points: 10},
			{Rank: 2, TeamName: "Legs", Points: 8},
		})
		require.Equal(t, []string{"1. Arms, 10 pts", "2. Legs, 8 pts"}, got)
	})
}
