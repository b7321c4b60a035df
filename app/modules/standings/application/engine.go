package standingsservice

import (
	"fmt"
	"strings"

	standingstypes "github.com/Black-And-White-Club/league-ranker/app/modules/standings/domain/types"
)

// Points awarded per match outcome.
const (
	PointsForWin  = 3
	PointsForDraw = 1
	PointsForLoss = 0
)

// PointsFor returns the points a side earns given its own and its opponent's score.
func PointsFor(ownScore, otherScore int) int {
	switch {
	case ownScore > otherScore:
		return PointsForWin
	case ownScore < otherScore:
		return PointsForLoss
	default:
		return PointsForDraw
	}
}

// Engine accumulates points per team and computes rankings.
// It is not safe for concurrent use; callers funnel all writes through one goroutine.
type Engine struct {
	teams map[string]*standingstypes.Team
	// order is first-seen order, used for summaries only.
	order []*standingstypes.Team
}

// NewEngine creates an empty Engine.
func NewEngine() *Engine {
	return &Engine{teams: make(map[string]*standingstypes.Team)}
}

// GetOrCreateTeam returns the team called name, registering it with zero
// points on first reference.
func (e *Engine) GetOrCreateTeam(name string) *standingstypes.Team {
	if team, ok := e.teams[name]; ok {
		return team
	}
	team := &standingstypes.Team{Name: name}
	e.teams[name] = team
	e.order = append(e.order, team)
	return team
}

// AddPoints adds points to the named team, creating it if needed. A zero
// addition still makes the team visible in rankings.
func (e *Engine) AddPoints(name string, points int) {
	team := e.GetOrCreateTeam(name)
	team.Points += points
}

// RecordResult applies a match outcome to both teams.
func (e *Engine) RecordResult(result standingstypes.GameResult) {
	e.AddPoints(result.Team1Name, PointsFor(result.Team1Score, result.Team2Score))
	e.AddPoints(result.Team2Name, PointsFor(result.Team2Score, result.Team1Score))
}

// TeamCount returns the number of distinct teams seen.
func (e *Engine) TeamCount() int {
	return len(e.teams)
}

// Teams returns the tracked teams in first-seen order.
func (e *Engine) Teams() []*standingstypes.Team {
	out := make([]*standingstypes.Team, len(e.order))
	copy(out, e.order)
	return out
}

func (e *Engine) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Standings with %d teams:\n", len(e.order))
	for i, team := range e.order {
		fmt.Fprintf(&b, "%d. Team %s with %d pts.\n", i+1, team.Name, team.Points)
	}
	return b.String()
}
