package slogobs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func newTestLogger(format Format, level slog.Level) (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(NewHandler(&HandlerOptions{Format: format, Level: level, Output: &buf})), &buf
}

func TestHandler_Compact(t *testing.T) {
	logger, buf := newTestLogger(FormatCompact, slog.LevelDebug)
	logger.Info("Gate passed", "grader.criterion", "relevance", "grader.score", 0.9)

	output := buf.String()
	for _, want := range []string{" INFO ", "Gate passed", " → ", `"grader.criterion":"relevance"`, `"grader.score":0.9`} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output, got: %s", want, output)
		}
	}
	if !strings.HasSuffix(output, "\n") {
		t.Error("expected trailing newline")
	}
}

func TestHandler_CompactWithoutAttributes(t *testing.T) {
	logger, buf := newTestLogger(FormatCompact, slog.LevelDebug)
	logger.Info("plain")

	if strings.Contains(buf.String(), "→") {
		t.Errorf("expected no separator without attributes, got: %s", buf.String())
	}
}

func TestHandler_PrettySortsKeys(t *testing.T) {
	logger, buf := newTestLogger(FormatPretty, slog.LevelDebug)
	logger.Warn("Criterion fell back", "zeta", 1, "alpha", "a")

	output := buf.String()
	if !strings.Contains(output, "WARN  | Criterion fell back") {
		t.Errorf("unexpected header line: %s", output)
	}
	alpha := strings.Index(output, "• alpha = a")
	zeta := strings.Index(output, "• zeta = 1")
	if alpha < 0 || zeta < 0 || alpha > zeta {
		t.Errorf("expected sorted attribute lines, got: %s", output)
	}
}

func TestHandler_JSON(t *testing.T) {
	logger, buf := newTestLogger(FormatJSON, slog.LevelDebug)
	logger.Info("done", "evaluation.id", "abc", "took", 1500*time.Millisecond)

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not JSON: %v (%s)", err, buf.String())
	}
	if record["level"] != "INFO" || record["msg"] != "done" {
		t.Errorf("unexpected standard fields: %v", record)
	}
	if record["evaluation.id"] != "abc" {
		t.Errorf("expected evaluation.id attribute, got %v", record["evaluation.id"])
	}
	if record["took"] != "1.5s" {
		t.Errorf("expected duration rendered as string, got %v", record["took"])
	}
	if _, ok := record["time"]; !ok {
		t.Error("expected time field")
	}
}

func TestHandler_LevelFiltering(t *testing.T) {
	logger, buf := newTestLogger(FormatCompact, slog.LevelWarn)
	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Warn("shown")

	output := buf.String()
	if strings.Contains(output, "hidden") {
		t.Errorf("expected DEBUG and INFO to be filtered out, got: %s", output)
	}
	if !strings.Contains(output, "shown") {
		t.Errorf("expected WARN to appear, got: %s", output)
	}
}

func TestHandler_WithAttrsAndGroup(t *testing.T) {
	logger, buf := newTestLogger(FormatJSON, slog.LevelDebug)
	logger.With("service", "grader").WithGroup("req").Info("call", "attempt", 2)

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if record["service"] != "grader" {
		t.Errorf("expected handler attribute, got %v", record)
	}
	if record["req.attempt"] != float64(2) {
		t.Errorf("expected grouped attribute req.attempt, got %v", record)
	}
}

func TestHandler_NestedGroupAttr(t *testing.T) {
	logger, buf := newTestLogger(FormatJSON, slog.LevelDebug)
	logger.Info("usage", slog.Group("tokens", slog.Int("prompt", 10), slog.Int("total", 12)))

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if record["tokens.prompt"] != float64(10) || record["tokens.total"] != float64(12) {
		t.Errorf("expected flattened group, got %v", record)
	}
}

func TestHandler_Colors(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&HandlerOptions{Format: FormatCompact, Level: slog.LevelDebug, Output: &buf, Colors: true}))
	logger.Error("boom")

	if !strings.Contains(buf.String(), colorRed) || !strings.Contains(buf.String(), colorReset) {
		t.Errorf("expected ANSI colors, got %q", buf.String())
	}
}

func TestNewHandler_Defaults(t *testing.T) {
	h := NewHandler(nil)
	if h.format != FormatCompact {
		t.Errorf("expected compact default, got %v", h.format)
	}
	if h.level.Level() != slog.LevelInfo {
		t.Errorf("expected INFO default, got %v", h.level)
	}
}
