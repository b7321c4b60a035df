package standingsevents

// Topics published by the standings service.
const (
	ResultRecordedTopic = "standings.result.recorded"
	LineRejectedTopic   = "standings.line.rejected"
)

// ResultRecordedPayload is published after a game result has been applied.
type ResultRecordedPayload struct {
	Team1Name   string `json:"team1_name"`
	Team1Score  int    `json:"team1_score"`
	Team1Points int    `json:"team1_points"`
	Team2Name   string `json:"team2_name"`
	Team2Score  int    `json:"team2_score"`
	Team2Points int    `json:"team2_points"`
}

// LineRejectedPayload is published when a raw line fails to parse.
type LineRejectedPayload struct {
	Line   string `json:"line"`
	Kind   string `json:"kind"`
	Reason string `json:"reason"`
}
