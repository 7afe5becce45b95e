package grader

import (
	"errors"
	"fmt"
	"strings"
)

// Stage is a step of the grading pipeline.
type Stage int

const (
	StageRelevance Stage = iota
	StageGrammar
	StageStructure
	StageDepth
	StageAggregate
	StageDone
)

// GateThreshold is the score a gated criterion must strictly exceed for the
// pipeline to continue to the next criterion.
const GateThreshold = 0.5

// ErrUnknownStage is returned by Next for StageDone or an undefined stage.
var ErrUnknownStage = errors.New("unknown stage")

var stageNames = [...]string{
	StageRelevance: "relevance",
	StageGrammar:   "grammar",
	StageStructure: "structure",
	StageDepth:     "depth",
	StageAggregate: "aggregate",
	StageDone:      "done",
}

func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return fmt.Sprintf("Stage(%d)", int(s))
	}
	return stageNames[s]
}

// MarshalText renders the stage by name, so JSON output shows "grammar"
// rather than 1.
func (s Stage) MarshalText() ([]byte, error) {
	if s < 0 || int(s) >= len(stageNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStage, int(s))
	}
	return []byte(stageNames[s]), nil
}

// Criterion returns the criterion evaluated at s, if any.
func (s Stage) Criterion() (Criterion, bool) {
	switch s {
	case StageRelevance:
		return CriterionRelevance, true
	case StageGrammar:
		return CriterionGrammar, true
	case StageStructure:
		return CriterionStructure, true
	case StageDepth:
		return CriterionDepth, true
	default:
		return "", false
	}
}

// Next returns the stage that follows stage given the score just recorded.
// Relevance, grammar and structure advance when score > GateThreshold and
// jump to StageAggregate otherwise. Depth always goes to StageAggregate and
// aggregate to StageDone. The score is ignored for those two.
func Next(stage Stage, score float64) (Stage, error) {
	switch stage {
	case StageRelevance, StageGrammar, StageStructure:
		if score > GateThreshold {
			return stage + 1, nil
		}
		return StageAggregate, nil
	case StageDepth:
		return StageAggregate, nil
	case StageAggregate:
		return StageDone, nil
	default:
		return 0, fmt.Errorf("next after %v: %w", stage, ErrUnknownStage)
	}
}

// Mermaid returns a Mermaid flowchart of the pipeline, derived from Next.
func Mermaid() string {
	var b strings.Builder
	b.WriteString("flowchart TD\n")
	b.WriteString("    __start__([start]) --> relevance\n")

	for stage := StageRelevance; stage < StageDone; stage++ {
		pass, _ := Next(stage, 1)
		fail, _ := Next(stage, 0)
		if pass == fail {
			fmt.Fprintf(&b, "    %s --> %s\n", stage, nodeName(pass))
			continue
		}
		fmt.Fprintf(&b, "    %s -->|score above %g| %s\n", stage, GateThreshold, nodeName(pass))
		fmt.Fprintf(&b, "    %s -.->|score at most %g| %s\n", stage, GateThreshold, nodeName(fail))
	}

	b.WriteString("    __end__([end])\n")
	return b.String()
}

func nodeName(s Stage) string {
	if s == StageDone {
		return "__end__"
	}
	return s.String()
}
