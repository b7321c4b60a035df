package standingsservice

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/Black-And-White-Club/league-ranker/app/modules/standings/application/parsers"
	standingstypes "github.com/Black-And-White-Club/league-ranker/app/modules/standings/domain/types"
)

func TestEngine_ComputeRanking(t *testing.T) {
	e := NewEngine()
	e.AddPoints("Arms", 10)
	e.AddPoints("Legs", 8)
	e.AddPoints("Torso", 5)
	e.AddPoints("Chest", 5)
	e.AddPoints("Head", 0)

	want := []standingstypes.RankingEntry{
		{Rank: 1, TeamName: "Arms", Points: 10},
		{Rank: 2, TeamName: "Legs", Points: 8},
		{Rank: 3, TeamName: "Chest", Points: 5},
		{Rank: 3, TeamName: "Torso", Points: 5},
		{Rank: 5, TeamName: "Head", Points: 0},
	}
	got := e.ComputeRanking()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ComputeRanking() mismatch (-want +got):\n%s", diff)
	}

	require.Equal(t, []string{
		"1. Arms, 10 pts",
		"2. Legs, 8 pts",
		"3. Chest, 5 pts",
		"3. Torso, 5 pts",
		"5. Head, 0 pts",
	}, standingstypes.RenderLines(got))

	wantRanks := map[string]int{"Arms": 1, "Legs": 2, "Chest": 3, "Torso": 3, "Head": 5}
	for name, rank := range wantRanks {
		team := e.GetOrCreateTeam(name)
		require.NotNil(t, team.Rank, name)
		require.Equal(t, rank, *team.Rank, name)
	}
}

func TestEngine_ComputeRankingEmpty(t *testing.T) {
	got := NewEngine().ComputeRanking()
	require.NotNil(t, got)
	require.Empty(t, got)
	require.Equal(t, []string{standingstypes.NoTeamsToRank}, standingstypes.RenderLines(got))
}

func TestEngine_ComputeRankingTies(t *testing.T) {
	tests := []struct {
		name   string
		points map[string]int
		want   []standingstypes.RankingEntry
	}{
		{
			name:   "everyone tied",
			points: map[string]int{"c": 2, "a": 2, "b": 2},
			want: []standingstypes.RankingEntry{
				{Rank: 1, TeamName: "a", Points: 2},
				{Rank: 1, TeamName: "b", Points: 2},
				{Rank: 1, TeamName: "c", Points: 2},
			},
		},
		{
			name:   "tie at the bottom",
			points: map[string]int{"x": 9, "y": 0, "z": 0},
			want: []standingstypes.RankingEntry{
				{Rank: 1, TeamName: "x", Points: 9},
				{Rank: 2, TeamName: "y", Points: 0},
				{Rank: 2, TeamName: "z", Points: 0},
			},
		},
		{
			name:   "ordinal name comparison",
			points: map[string]int{"alpha": 1, "Beta": 1},
			want: []standingstypes.RankingEntry{
				{Rank: 1, TeamName: "Beta", Points: 1},
				{Rank: 1, TeamName: "alpha", Points: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEngine()
			for name, points := range tt.points {
				e.AddPoints(name, points)
			}
			if diff := cmp.Diff(tt.want, e.ComputeRanking()); diff != "" {
				t.Errorf("ComputeRanking() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// Rank must equal 1 + the number of teams with strictly more points.
func TestEngine_ComputeRankingCompetitionProperty(t *testing.T) {
	e := NewEngine()
	for i := 0; i < 40; i++ {
		e.AddPoints(fmt.Sprintf("Team %02d", i), (i*7)%11)
	}

	entries := e.ComputeRanking()
	for _, entry := range entries {
		ahead := 0
		for _, other := range entries {
			if other.Points > entry.Points {
				ahead++
			}
		}
		require.Equal(t, ahead+1, entry.Rank, entry.TeamName)
	}
}

func TestEngine_EndToEnd(t *testing.T) {
	lines := []string{
		"Lions 3, Snakes 3",
		"Tarantulas 1, FC Awesome 0",
		"Lions 1, FC Awesome 1",
		"Tarantulas 3, Snakes 1",
		"Lions 4, Grouches 0",
	}

	e := NewEngine()
	for _, line := range lines {
		result, err := parsers.ParseGameResult(line)
		require.NoError(t, err)
		e.RecordResult(result)
	}

	require.Equal(t, []string{
		"1. Tarantulas, 6 pts",
		"2. Lions, 5 pts",
		"3. FC Awesome, 1 pts",
		"3. Snakes, 1 pts",
		"5. Grouches, 0 pts",
	}, standingstypes.RenderLines(e.ComputeRanking()))
}
