package grader

import (
	"errors"
	"fmt"
	"strings"
)

// Criterion names one quality dimension.
type Criterion string

const (
	CriterionRelevance Criterion = "relevance"
	CriterionGrammar   Criterion = "grammar"
	CriterionStructure Criterion = "structure"
	CriterionDepth     Criterion = "depth"
)

// Weights of each criterion in the final score. They sum to 1.
const (
	WeightRelevance = 0.3
	WeightGrammar   = 0.2
	WeightStructure = 0.2
	WeightDepth     = 0.3
)

// SubjectPlaceholder is replaced by the subject text when a prompt is rendered.
const SubjectPlaceholder = "{essay}"

// ErrUnknownCriterion is returned for a Criterion outside the four above.
var ErrUnknownCriterion = errors.New("unknown criterion")

// Criteria returns the criteria in evaluation order.
func Criteria() []Criterion {
	return []Criterion{CriterionRelevance, CriterionGrammar, CriterionStructure, CriterionDepth}
}

// index is the criterion's position in evaluation order, or -1.
func (c Criterion) index() int {
	switch c {
	case CriterionRelevance:
		return 0
	case CriterionGrammar:
		return 1
	case CriterionStructure:
		return 2
	case CriterionDepth:
		return 3
	default:
		return -1
	}
}

// Valid reports whether c is one of the four criteria.
func (c Criterion) Valid() bool {
	return c.index() >= 0
}

// CriterionSpec is the immutable definition of one criterion.
type CriterionSpec struct {
	Criterion      Criterion
	PromptTemplate string
	Weight         float64
}

// Render substitutes subject into the prompt template.
func (s CriterionSpec) Render(subject string) string {
	return strings.ReplaceAll(s.PromptTemplate, SubjectPlaceholder, subject)
}

// Validate checks the criterion name, the placeholder and the weight.
func (s CriterionSpec) Validate() error {
	if !s.Criterion.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownCriterion, s.Criterion)
	}
	if !strings.Contains(s.PromptTemplate, SubjectPlaceholder) {
		return fmt.Errorf("criterion %s: prompt template lacks %s", s.Criterion, SubjectPlaceholder)
	}
	if s.Weight < 0 || s.Weight > 1 {
		return fmt.Errorf("criterion %s: weight %g outside [0, 1]", s.Criterion, s.Weight)
	}
	return nil
}

const (
	relevancePrompt = "Analyze the relevance of the following essay to the given topic. " +
		"Provide a relevance score between 0 and 1. " +
		"Your response should start with 'Score: ' followed by the numeric score, " +
		"then provide your explanation.\n\nEssay: {essay}"

	grammarPrompt = "Analyze the grammar and language of the following essay. " +
		"Provide a grammar score between 0 and 1. " +
		"Your response should start with 'Score: ' followed by the numeric score, " +
		"then provide your explanation.\n\nEssay: {essay}"

	structurePrompt = "Analyze the structure of the following essay. " +
		"Provide a structure score between 0 and 1. " +
		"Your response should start with 'Score: ' followed by the numeric score, " +
		"then provide your explanation.\n\nEssay: {essay}"

	depthPrompt = "Analyze the depth of analysis in the following essay. " +
		"Provide a depth score between 0 and 1. " +
		"Your response should start with 'Score: ' followed by the numeric score, " +
		"then provide your explanation.\n\nEssay: {essay}"
)

// DefaultCriteria returns a fresh copy of the built-in criteria in evaluation
// order.
func DefaultCriteria() []CriterionSpec {
	return []CriterionSpec{
		{Criterion: CriterionRelevance, PromptTemplate: relevancePrompt, Weight: WeightRelevance},
		{Criterion: CriterionGrammar, PromptTemplate: grammarPrompt, Weight: WeightGrammar},
		{Criterion: CriterionStructure, PromptTemplate: structurePrompt, Weight: WeightStructure},
		{Criterion: CriterionDepth, PromptTemplate: depthPrompt, Weight: WeightDepth},
	}
}
