package parsers

import (
	"errors"
	"fmt"
)

// ErrInvalidEntry is wrapped by every FormatError.
var ErrInvalidEntry = errors.New("invalid entry")

// FormatErrorKind identifies which grammar rule a line violated.
type FormatErrorKind int

const (
	KindMissingComma FormatErrorKind = iota + 1
	KindTooManyCommas
	KindScoreNotRetrievable
	KindNameNotRetrievable
	KindScoreNotInteger
)

func (k FormatErrorKind) String() string {
	switch k {
	case KindMissingComma:
		return "missing_comma"
	case KindTooManyCommas:
		return "too_many_commas"
	case KindScoreNotRetrievable:
		return "score_not_retrievable"
	case KindNameNotRetrievable:
		return "name_not_retrievable"
	case KindScoreNotInteger:
		return "score_not_integer"
	default:
		return "unknown"
	}
}

// FormatError reports a malformed game result line. Its message text is
// stable and shown to users as-is.
type FormatError struct {
	Kind FormatErrorKind
	// Team is 1 or 2 for per-team rules and 0 for the comma rules.
	Team int
	// Commas is the number of commas found, set for KindTooManyCommas.
	Commas int
}

func (e *FormatError) Error() string {
	switch e.Kind {
	case KindMissingComma:
		return "INVALID ENTRY: Game result must be a comma delimited string of team scores."
	case KindTooManyCommas:
		return fmt.Sprintf("INVALID ENTRY: Too many comma delimited sections in game results (expected 1, got %d).", e.Commas)
	case KindScoreNotRetrievable:
		return fmt.Sprintf("INVALID ENTRY: Team %d score not retrievable from game results.", e.Team)
	case KindNameNotRetrievable:
		return fmt.Sprintf("INVALID ENTRY: Team %d name not retrievable from game results.", e.Team)
	case KindScoreNotInteger:
		return fmt.Sprintf("INVALID ENTRY: Team %d score is not an integer.", e.Team)
	default:
		return "INVALID ENTRY: Game result could not be parsed."
	}
}

func (e *FormatError) Unwrap() error {
	return ErrInvalidEntry
}
