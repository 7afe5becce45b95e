package slogobs

import "strings"

// Format represents the output format for logs.
type Format string

const (
	// FormatCompact prints one line per record with JSON attributes:
	//   2026-01-02 10:40:35  INFO Gate passed → {"grader.criterion":"relevance"}
	FormatCompact Format = "compact"

	// FormatPretty prints the message followed by one indented line per attribute.
	FormatPretty Format = "pretty"

	// FormatJSON prints one JSON object per record, for log aggregation.
	FormatJSON Format = "json"
)

// Formats lists every supported format.
var Formats = []Format{FormatCompact, FormatPretty, FormatJSON}

// ParseFormat parses a format name. Unknown names yield FormatCompact.
func ParseFormat(s string) Format {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatPretty, FormatJSON:
		return f
	default:
		return FormatCompact
	}
}

func (f Format) String() string {
	return string(f)
}
