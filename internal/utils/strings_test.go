package utils

import (
	"strings"
	"testing"
)

func TestJSONToString(t *testing.T) {
	input := map[string]float64{"final": 0.75}

	compact := JSONToString(input, false)
	if strings.Contains(compact, "\n") {
		t.Errorf("compact output should not contain newlines, got %q", compact)
	}

	indented := JSONToString(input, true)
	if !strings.Contains(indented, "\n  ") {
		t.Errorf("indented output should contain two-space indentation, got %q", indented)
	}
}

// TestJSONToString_MarshalError verifies that an unmarshalable value yields a
// JSON error object instead of a panic.
func TestJSONToString_MarshalError(t *testing.T) {
	result := JSONToString(make(chan int), false)
	if !strings.HasPrefix(result, `{"error":`) {
		t.Errorf("expected error object, got %q", result)
	}
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{name: "shorter than limit", input: "abc", maxLen: 5, want: "abc"},
		{name: "equal to limit", input: "abcde", maxLen: 5, want: "abcde"},
		{name: "longer than limit", input: "abcdefgh", maxLen: 3, want: "abc... (truncated, total: 8 chars)"},
		{name: "non-positive limit uses default", input: "short", maxLen: 0, want: "short"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateString(tt.input, tt.maxLen); got != tt.want {
				t.Errorf("TruncateString(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
			}
		})
	}
}

func TestTruncateString_DefaultLimit(t *testing.T) {
	long := strings.Repeat("x", DefaultMaxStringLength+10)
	got := TruncateString(long, -1)
	if !strings.HasPrefix(got, strings.Repeat("x", DefaultMaxStringLength)+"...") {
		t.Errorf("expected truncation at default limit, got length %d", len(got))
	}
}
