package parsers

import (
	"strconv"
	"strings"

	standingstypes "github.com/Black-And-White-Club/league-ranker/app/modules/standings/domain/types"
	"github.com/Black-And-White-Club/league-ranker/pkg/results"
)

// Parser decodes one raw game result line.
type Parser interface {
	Parse(line string) (standingstypes.GameResult, error)
}

// ResultParser decodes lines of the form "<name> <score>, <name> <score>".
// Names may contain spaces; only the last space-separated token of each
// side is the score.
type ResultParser struct{}

// NewResultParser creates a new ResultParser.
func NewResultParser() *ResultParser {
	return &ResultParser{}
}

// Parse decodes line, returning a *FormatError for any grammar violation.
func (p *ResultParser) Parse(line string) (standingstypes.GameResult, error) {
	result := p.Decode(line)
	if result.IsFailure() {
		return standingstypes.GameResult{}, *result.Failure
	}
	return *result.Success, nil
}

// Decode is Parse in tagged-result form.
func (p *ResultParser) Decode(line string) results.OperationResult[standingstypes.GameResult, *FormatError] {
	commas := strings.Count(line, ",")
	switch {
	case commas == 0:
		return results.FailureResult[standingstypes.GameResult](&FormatError{Kind: KindMissingComma})
	case commas > 1:
		return results.FailureResult[standingstypes.GameResult](&FormatError{Kind: KindTooManyCommas, Commas: commas})
	}

	first, second, _ := strings.Cut(line, ",")

	name1, score1, ferr := parseSide(first, 1)
	if ferr != nil {
		return results.FailureResult[standingstypes.GameResult](ferr)
	}
	name2, score2, ferr := parseSide(second, 2)
	if ferr != nil {
		return results.FailureResult[standingstypes.GameResult](ferr)
	}

	return results.SuccessResult[standingstypes.GameResult, *FormatError](standingstypes.GameResult{
		Team1Name:  name1,
		Team1Score: score1,
		Team2Name:  name2,
		Team2Score: score2,
	})
}

// parseSide splits one "<name> <score>" segment.
func parseSide(segment string, team int) (string, int, *FormatError) {
	tokens := strings.Split(strings.TrimSpace(segment), " ")
	if len(tokens) < 2 {
		return "", 0, &FormatError{Kind: KindScoreNotRetrievable, Team: team}
	}

	name := strings.Join(tokens[:len(tokens)-1], " ")
	if name == "" {
		return "", 0, &FormatError{Kind: KindNameNotRetrievable, Team: team}
	}

	raw := tokens[len(tokens)-1]
	if !isDigits(raw) {
		return "", 0, &FormatError{Kind: KindScoreNotInteger, Team: team}
	}
	score, err := strconv.Atoi(raw)
	if err != nil {
		// out of int range
		return "", 0, &FormatError{Kind: KindScoreNotInteger, Team: team}
	}

	return name, score, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// ParseGameResult is a convenience wrapper around a zero ResultParser.
func ParseGameResult(line string) (standingstypes.GameResult, error) {
	return (&ResultParser{}).Parse(line)
}
