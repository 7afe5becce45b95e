package grader

import (
	"context"
	"errors"

	"github.com/debsouryadatta/langgraph-agents/core/parse"
	"github.com/debsouryadatta/langgraph-agents/providers/ai"
)

// DefaultScore is recorded for a criterion whose evaluation failed.
const DefaultScore = 0.0

// Sender sends one prompt to an LLM. *client.Client implements it.
type Sender interface {
	SendMessage(ctx context.Context, prompt string) (*ai.ChatResponse, error)
}

// DiagnosticKind classifies a recovered criterion failure.
type DiagnosticKind string

const (
	// DiagnosticExtraction means the reply had no usable "Score:" value.
	DiagnosticExtraction DiagnosticKind = "extraction"
	// DiagnosticTransport means the LLM call itself failed.
	DiagnosticTransport DiagnosticKind = "transport"
	// DiagnosticTimeout means the LLM call exceeded its deadline.
	DiagnosticTimeout DiagnosticKind = "timeout"
)

// Diagnostic explains why a criterion received DefaultScore.
type Diagnostic struct {
	Criterion Criterion      `json:"criterion"`
	Kind      DiagnosticKind `json:"kind"`
	Message   string         `json:"message"`
	// Err is the underlying error, kept for errors.Is / errors.As.
	Err error `json:"-"`
}

// evaluation is the outcome of a single criterion call.
type evaluation struct {
	score      float64
	diagnostic *Diagnostic
	usage      *ai.Usage
}

// evaluateCriterion renders the prompt, calls the LLM once and extracts the
// score. Criterion-level failures come back as a diagnostic with
// DefaultScore. A non-nil error means the caller's context is done.
func evaluateCriterion(ctx context.Context, sender Sender, spec CriterionSpec, subject string) (evaluation, error) {
	response, err := sender.SendMessage(ctx, spec.Render(subject))
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return evaluation{}, ctxErr
		}
		kind := DiagnosticTransport
		if errors.Is(err, context.DeadlineExceeded) {
			kind = DiagnosticTimeout
		}
		return failed(spec.Criterion, kind, err), nil
	}

	score, err := parse.ExtractUnitScore(response.Content)
	if err != nil {
		out := failed(spec.Criterion, DiagnosticExtraction, err)
		out.usage = response.Usage
		return out, nil
	}

	return evaluation{score: score, usage: response.Usage}, nil
}

func failed(c Criterion, kind DiagnosticKind, err error) evaluation {
	return evaluation{
		score: DefaultScore,
		diagnostic: &Diagnostic{
			Criterion: c,
			Kind:      kind,
			Message:   err.Error(),
			Err:       err,
		},
	}
}
