package parse

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/debsouryadatta/langgraph-agents/internal/utils"
)

var (
	// ErrScoreNotFound means the text has no "Score: <number>" token.
	ErrScoreNotFound = errors.New("score not found")

	// ErrScoreOutOfRange means a score was found but lies outside [0, 1].
	ErrScoreOutOfRange = errors.New("score out of range")
)

// scorePattern is case-sensitive and matches integers and decimals only.
var scorePattern = regexp.MustCompile(`Score:\s*(\d+(\.\d+)?)`)

// previewLen bounds the excerpt of offending content kept on an ExtractionError.
const previewLen = 120

// ExtractionError reports why no usable score could be read from a reply.
type ExtractionError struct {
	// Err is ErrScoreNotFound or ErrScoreOutOfRange.
	Err error
	// Value is the parsed number for out-of-range failures.
	Value float64
	// Preview is a truncated copy of the content.
	Preview string
}

func (e *ExtractionError) Error() string {
	if errors.Is(e.Err, ErrScoreOutOfRange) {
		return fmt.Sprintf("extract score: %v: %g", e.Err, e.Value)
	}
	return fmt.Sprintf("extract score: %v in %q", e.Err, e.Preview)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// ExtractScore returns the number following the first "Score:" in content.
func ExtractScore(content string) (float64, error) {
	match := scorePattern.FindStringSubmatch(content)
	if match == nil {
		return 0, &ExtractionError{Err: ErrScoreNotFound, Preview: utils.TruncateString(content, previewLen)}
	}

	value, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		// Only reachable for literals too large for a float64.
		return 0, &ExtractionError{Err: ErrScoreOutOfRange, Value: value, Preview: match[0]}
	}
	return value, nil
}

// ExtractUnitScore is ExtractScore restricted to scores in [0, 1].
func ExtractUnitScore(content string) (float64, error) {
	value, err := ExtractScore(content)
	if err != nil {
		return 0, err
	}
	if value > 1 {
		return 0, &ExtractionError{Err: ErrScoreOutOfRange, Value: value, Preview: utils.TruncateString(content, previewLen)}
	}
	return value, nil
}
