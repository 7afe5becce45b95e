package grader

import (
	"errors"
	"fmt"
)

var (
	// ErrScoreAlreadyRecorded means a criterion was scored twice in one evaluation.
	ErrScoreAlreadyRecorded = errors.New("score already recorded")

	// ErrAlreadyFinalized means the final score was computed twice.
	ErrAlreadyFinalized = errors.New("final score already computed")
)

// Scores holds one value per criterion. Unscored criteria read as 0.
type Scores struct {
	Relevance float64 `json:"relevance"`
	Grammar   float64 `json:"grammar"`
	Structure float64 `json:"structure"`
	Depth     float64 `json:"depth"`
}

// Get returns the score for c, or 0 for an unknown criterion.
func (s Scores) Get(c Criterion) float64 {
	switch c {
	case CriterionRelevance:
		return s.Relevance
	case CriterionGrammar:
		return s.Grammar
	case CriterionStructure:
		return s.Structure
	case CriterionDepth:
		return s.Depth
	default:
		return 0
	}
}

// State is the working record of a single evaluation. It is not safe for
// concurrent use and is never shared between evaluations.
type State struct {
	subject   string
	scores    [4]float64
	recorded  [4]bool
	final     float64
	finalized bool
}

// NewState returns a State with every score unset.
func NewState(subject string) *State {
	return &State{subject: subject}
}

func (s *State) Subject() string {
	return s.subject
}

// Record stores the score for c. Each criterion can be recorded once.
func (s *State) Record(c Criterion, score float64) error {
	i := c.index()
	if i < 0 {
		return fmt.Errorf("record: %w: %q", ErrUnknownCriterion, c)
	}
	if s.recorded[i] {
		return fmt.Errorf("record %s: %w", c, ErrScoreAlreadyRecorded)
	}
	if s.finalized {
		return fmt.Errorf("record %s: %w", c, ErrAlreadyFinalized)
	}
	s.scores[i] = score
	s.recorded[i] = true
	return nil
}

// Score returns the score for c and whether it was recorded.
func (s *State) Score(c Criterion) (float64, bool) {
	i := c.index()
	if i < 0 {
		return 0, false
	}
	return s.scores[i], s.recorded[i]
}

// Recorded lists the scored criteria in evaluation order.
func (s *State) Recorded() []Criterion {
	var out []Criterion
	for _, c := range Criteria() {
		if s.recorded[c.index()] {
			out = append(out, c)
		}
	}
	return out
}

// Scores returns a snapshot of all four scores.
func (s *State) Scores() Scores {
	return Scores{
		Relevance: s.scores[0],
		Grammar:   s.scores[1],
		Structure: s.scores[2],
		Depth:     s.scores[3],
	}
}

// Finalize computes the final score from the current scores. It can run once.
func (s *State) Finalize() (float64, error) {
	if s.finalized {
		return 0, ErrAlreadyFinalized
	}
	s.final = Aggregate(s.Scores())
	s.finalized = true
	return s.final, nil
}

// Final returns the final score and whether Finalize has run.
func (s *State) Final() (float64, bool) {
	return s.final, s.finalized
}
