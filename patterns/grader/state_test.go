package grader

import (
	"errors"
	"math"
	"testing"
)

const tolerance = 1e-9

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < tolerance
}

func TestAggregate(t *testing.T) {
	tests := []struct {
		name   string
		scores Scores
		want   float64
	}{
		{"all zero", Scores{}, 0},
		{"all one", Scores{1, 1, 1, 1}, 1},
		{"full run", Scores{0.9, 0.8, 0.7, 0.6}, 0.75},
		{"relevance only", Scores{Relevance: 0.4}, 0.12},
		{"relevance and grammar", Scores{Relevance: 0.8, Grammar: 0.3}, 0.3},
		{"depth only", Scores{Depth: 0.5}, 0.15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Aggregate(tt.scores); !approxEqual(got, tt.want) {
				t.Errorf("Aggregate(%+v) = %v, want %v", tt.scores, got, tt.want)
			}
		})
	}
}

func TestAggregate_Monotonic(t *testing.T) {
	base := Scores{0.4, 0.6, 0.2, 0.7}
	baseline := Aggregate(base)

	bump := []func(*Scores){
		func(s *Scores) { s.Relevance += 0.1 },
		func(s *Scores) { s.Grammar += 0.1 },
		func(s *Scores) { s.Structure += 0.1 },
		func(s *Scores) { s.Depth += 0.1 },
	}
	for i, f := range bump {
		s := base
		f(&s)
		if got := Aggregate(s); got < baseline {
			t.Errorf("bumping criterion %d lowered the score: %v < %v", i, got, baseline)
		}
	}
}

func TestWeightsSumToOne(t *testing.T) {
	var sum float64
	for _, spec := range DefaultCriteria() {
		sum += spec.Weight
	}
	if !approxEqual(sum, 1) {
		t.Errorf("weights sum to %v", sum)
	}
}

func TestScores_Get(t *testing.T) {
	s := Scores{Relevance: 0.1, Grammar: 0.2, Structure: 0.3, Depth: 0.4}
	want := []float64{0.1, 0.2, 0.3, 0.4}
	for i, c := range Criteria() {
		if got := s.Get(c); got != want[i] {
			t.Errorf("Get(%s) = %v, want %v", c, got, want[i])
		}
	}
	if got := s.Get("style"); got != 0 {
		t.Errorf("Get(unknown) = %v", got)
	}
}

func TestState_Record(t *testing.T) {
	s := NewState("essay")

	if err := s.Record(CriterionRelevance, 0.9); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Record(CriterionRelevance, 0.1); !errors.Is(err, ErrScoreAlreadyRecorded) {
		t.Fatalf("second record error = %v, want ErrScoreAlreadyRecorded", err)
	}
	if err := s.Record("style", 0.5); !errors.Is(err, ErrUnknownCriterion) {
		t.Fatalf("unknown criterion error = %v", err)
	}

	if got, ok := s.Score(CriterionRelevance); !ok || got != 0.9 {
		t.Errorf("Score(relevance) = %v, %v", got, ok)
	}
	if got, ok := s.Score(CriterionDepth); ok || got != 0 {
		t.Errorf("Score(depth) = %v, %v; want unset 0", got, ok)
	}
	if got := s.Recorded(); len(got) != 1 || got[0] != CriterionRelevance {
		t.Errorf("Recorded() = %v", got)
	}
	if s.Subject() != "essay" {
		t.Errorf("Subject() = %q", s.Subject())
	}
}

func TestState_Finalize(t *testing.T) {
	s := NewState("essay")
	_ = s.Record(CriterionRelevance, 0.4)

	if _, ok := s.Final(); ok {
		t.Fatal("Final() reported finalized before Finalize")
	}

	final, err := s.Finalize()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !approxEqual(final, 0.12) {
		t.Errorf("final = %v, want 0.12", final)
	}
	if got, ok := s.Final(); !ok || got != final {
		t.Errorf("Final() = %v, %v", got, ok)
	}

	if _, err := s.Finalize(); !errors.Is(err, ErrAlreadyFinalized) {
		t.Errorf("second Finalize error = %v", err)
	}
	if err := s.Record(CriterionGrammar, 1); !errors.Is(err, ErrAlreadyFinalized) {
		t.Errorf("record after finalize error = %v", err)
	}
}
