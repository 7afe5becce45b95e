package grader

import (
	"errors"
	"strings"
	"testing"
)

func TestDefaultCriteria(t *testing.T) {
	specs := DefaultCriteria()
	if len(specs) != 4 {
		t.Fatalf("got %d criteria", len(specs))
	}
	for i, c := range Criteria() {
		if specs[i].Criterion != c {
			t.Errorf("position %d = %q, want %q", i, specs[i].Criterion, c)
		}
		if err := specs[i].Validate(); err != nil {
			t.Errorf("%s: %v", c, err)
		}
		if !strings.Contains(specs[i].PromptTemplate, "Score: ") {
			t.Errorf("%s prompt does not ask for a Score: line", c)
		}
	}
}

func TestDefaultCriteria_ReturnsCopies(t *testing.T) {
	first := DefaultCriteria()
	first[0].PromptTemplate = "changed {essay}"
	first[0].Weight = 0.9

	second := DefaultCriteria()
	if second[0].PromptTemplate == "changed {essay}" || second[0].Weight != WeightRelevance {
		t.Error("DefaultCriteria shares state between calls")
	}
}

func TestCriterionSpec_Render(t *testing.T) {
	spec := CriterionSpec{Criterion: CriterionGrammar, PromptTemplate: "Rate: {essay}\nAgain: {essay}"}
	if got := spec.Render("text"); got != "Rate: text\nAgain: text" {
		t.Errorf("Render() = %q", got)
	}
}

func TestCriterionSpec_Validate(t *testing.T) {
	tests := []struct {
		name    string
		spec    CriterionSpec
		wantErr bool
	}{
		{"valid", CriterionSpec{CriterionDepth, "Essay: {essay}", 0.3}, false},
		{"unknown criterion", CriterionSpec{"style", "Essay: {essay}", 0.3}, true},
		{"missing placeholder", CriterionSpec{CriterionDepth, "Essay:", 0.3}, true},
		{"negative weight", CriterionSpec{CriterionDepth, "{essay}", -0.1}, true},
		{"weight above one", CriterionSpec{CriterionDepth, "{essay}", 1.5}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.spec.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}

	err := CriterionSpec{Criterion: "style", PromptTemplate: "{essay}"}.Validate()
	if !errors.Is(err, ErrUnknownCriterion) {
		t.Errorf("expected ErrUnknownCriterion, got %v", err)
	}
}
