package grader

import (
	"errors"
	"strings"
	"testing"
)

func TestNext(t *testing.T) {
	tests := []struct {
		name  string
		stage Stage
		score float64
		want  Stage
	}{
		{"relevance passes", StageRelevance, 0.9, StageGrammar},
		{"relevance at threshold stops", StageRelevance, 0.5, StageAggregate},
		{"relevance low stops", StageRelevance, 0.1, StageAggregate},
		{"grammar passes", StageGrammar, 0.51, StageStructure},
		{"grammar stops", StageGrammar, 0.5, StageAggregate},
		{"structure passes", StageStructure, 1, StageDepth},
		{"structure stops", StageStructure, 0, StageAggregate},
		{"depth high aggregates", StageDepth, 0.99, StageAggregate},
		{"depth low aggregates", StageDepth, 0, StageAggregate},
		{"aggregate finishes", StageAggregate, 0.75, StageDone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Next(tt.stage, tt.score)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Next(%v, %v) = %v, want %v", tt.stage, tt.score, got, tt.want)
			}
		})
	}
}

func TestNext_UnknownStage(t *testing.T) {
	for _, stage := range []Stage{StageDone, Stage(-1), Stage(42)} {
		if _, err := Next(stage, 1); !errors.Is(err, ErrUnknownStage) {
			t.Errorf("Next(%v) error = %v, want ErrUnknownStage", stage, err)
		}
	}
}

func TestStage_String(t *testing.T) {
	if got := StageStructure.String(); got != "structure" {
		t.Errorf("String() = %q", got)
	}
	if got := Stage(9).String(); got != "Stage(9)" {
		t.Errorf("String() = %q", got)
	}
	if _, err := Stage(9).MarshalText(); !errors.Is(err, ErrUnknownStage) {
		t.Errorf("MarshalText error = %v", err)
	}
}

func TestStage_Criterion(t *testing.T) {
	for i, c := range Criteria() {
		got, ok := Stage(i).Criterion()
		if !ok || got != c {
			t.Errorf("Stage(%d).Criterion() = %q, %v; want %q", i, got, ok, c)
		}
	}
	if _, ok := StageAggregate.Criterion(); ok {
		t.Error("aggregate should not map to a criterion")
	}
}

func TestMermaid(t *testing.T) {
	out := Mermaid()

	want := []string{
		"flowchart TD",
		"relevance -->|score above 0.5| grammar",
		"grammar -->|score above 0.5| structure",
		"structure -->|score above 0.5| depth",
		"relevance -.->|score at most 0.5| aggregate",
		"depth --> aggregate",
		"aggregate --> __end__",
	}
	for _, w := range want {
		if !strings.Contains(out, w) {
			t.Errorf("diagram missing %q:\n%s", w, out)
		}
	}
	if strings.Contains(out, "depth -.->") {
		t.Error("depth must not have a gated edge")
	}
}
