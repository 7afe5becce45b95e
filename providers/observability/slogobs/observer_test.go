package slogobs

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/debsouryadatta/langgraph-agents/providers/observability"
)

func newTestObserver(level slog.Level) (*Observer, *bytes.Buffer) {
	var buf bytes.Buffer
	return New(WithFormat(FormatCompact), WithLevel(level), WithOutput(&buf)), &buf
}

func TestObserver_Logging(t *testing.T) {
	obs, buf := newTestObserver(slog.LevelInfo)
	ctx := context.Background()

	obs.Debug(ctx, "hidden debug")
	obs.Info(ctx, "score recorded", observability.Float64(observability.AttrGraderScore, 0.8))
	obs.Warn(ctx, "fallback", observability.String(observability.AttrGraderCriterion, "grammar"))
	obs.Error(ctx, "failed", observability.Error(errors.New("boom")))

	output := buf.String()
	if strings.Contains(output, "hidden debug") {
		t.Error("debug line should be filtered at INFO")
	}
	for _, want := range []string{`"grader.score":0.8`, `"grader.criterion":"grammar"`, `"error":"boom"`, " WARN ", "ERROR"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output, got: %s", want, output)
		}
	}
}

func TestObserver_TraceLevel(t *testing.T) {
	obs, buf := newTestObserver(LevelTrace)
	obs.Trace(context.Background(), "very chatty")

	if !strings.Contains(buf.String(), "TRACE very chatty") {
		t.Errorf("expected TRACE line, got: %s", buf.String())
	}
}

func TestObserver_SpanLifecycle(t *testing.T) {
	obs, buf := newTestObserver(slog.LevelDebug)

	ctx, span := obs.StartSpan(context.Background(), "grader.criterion", observability.String("grader.criterion", "depth"))
	if observability.SpanFromContext(ctx) != span {
		t.Fatal("expected span to be attached to the returned context")
	}

	span.SetAttributes(observability.Float64("grader.score", 0.3))
	span.SetStatus(observability.StatusError, "timeout")
	span.RecordError(errors.New("deadline"))
	span.End()
	span.End()

	output := buf.String()
	if strings.Count(output, "Span ended") != 1 {
		t.Errorf("expected exactly one span end line, got: %s", output)
	}
	for _, want := range []string{"Span started", `"status":"error"`, `"status_description":"timeout"`, `"error":"deadline"`, `"grader.score":0.3`} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output, got: %s", want, output)
		}
	}
}

func TestObserver_Metrics(t *testing.T) {
	obs, _ := newTestObserver(slog.LevelInfo)
	ctx := context.Background()

	obs.Counter("fallbacks").Add(ctx, 1)
	obs.Counter("fallbacks").Add(ctx, 2)
	obs.Histogram("final").Record(ctx, 0.75)
	obs.Histogram("final").Record(ctx, 0.12)

	if got := obs.CounterValue("fallbacks"); got != 3 {
		t.Errorf("CounterValue = %d, want 3", got)
	}
	if got := obs.CounterValue("missing"); got != 0 {
		t.Errorf("CounterValue of unknown counter = %d, want 0", got)
	}
	count, sum := obs.HistogramStats("final")
	if count != 2 || sum < 0.869 || sum > 0.871 {
		t.Errorf("HistogramStats = (%d, %f), want (2, 0.87)", count, sum)
	}
	if obs.Counter("fallbacks") != obs.Counter("fallbacks") {
		t.Error("expected the same counter instance per name")
	}
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	obs := New(WithLogger(logger), WithFormat(FormatJSON))

	if obs.Logger() != logger {
		t.Fatal("expected provided logger to be used")
	}
	obs.Info(context.Background(), "hello")
	if !strings.Contains(buf.String(), "msg=hello") {
		t.Errorf("expected text handler output, got: %s", buf.String())
	}
}
