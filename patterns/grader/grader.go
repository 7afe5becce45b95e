package grader

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/debsouryadatta/langgraph-agents/core/cost"
	"github.com/debsouryadatta/langgraph-agents/providers/ai"
	"github.com/debsouryadatta/langgraph-agents/providers/observability"
)

// ErrNilSender is returned by New when no Sender is given.
var ErrNilSender = errors.New("grader: sender is nil")

// Result is the outcome of one evaluation.
type Result struct {
	ID string `json:"id"`

	Relevance float64 `json:"relevance"`
	Grammar   float64 `json:"grammar"`
	Structure float64 `json:"structure"`
	Depth     float64 `json:"depth"`
	Final     float64 `json:"final"`

	// Evaluated lists the criteria that ran, in order.
	Evaluated []Criterion `json:"evaluated"`

	// Path lists every stage visited, ending with StageDone.
	Path []Stage `json:"path"`

	// Diagnostics explains each criterion that fell back to DefaultScore.
	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`

	// Usage sums token usage over all calls that reported it. Cost prices
	// it when the Grader knows the model's rates.
	Usage    ai.Usage       `json:"usage"`
	Cost     *cost.Estimate `json:"cost,omitempty"`
	Duration time.Duration  `json:"duration_ns"`
}

// Scores returns the four criterion scores.
func (r Result) Scores() Scores {
	return Scores{Relevance: r.Relevance, Grammar: r.Grammar, Structure: r.Structure, Depth: r.Depth}
}

// ShortCircuited reports whether a gate skipped at least one criterion.
func (r Result) ShortCircuited() bool {
	return len(r.Evaluated) < len(Criteria())
}

// Grader runs the gated grading pipeline. It keeps no per-evaluation state,
// so one Grader may serve concurrent Evaluate calls if its Sender allows it.
type Grader struct {
	sender   Sender
	specs    [4]CriterionSpec
	observer observer
	newID    func() string
	price    cost.ModelCost
}

// Option configures a Grader.
type Option func(*Grader) error

// WithObserver sets the observability provider. By default the Grader uses
// the Sender's observer when it exposes one.
func WithObserver(provider observability.Provider) Option {
	return func(g *Grader) error {
		g.observer = observer{provider: provider}
		return nil
	}
}

// WithPromptTemplate replaces the prompt for one criterion. The template
// must contain SubjectPlaceholder. Weights cannot be changed.
func WithPromptTemplate(c Criterion, template string) Option {
	return func(g *Grader) error {
		i := c.index()
		if i < 0 {
			return fmt.Errorf("%w: %q", ErrUnknownCriterion, c)
		}
		spec := g.specs[i]
		spec.PromptTemplate = template
		if err := spec.Validate(); err != nil {
			return err
		}
		g.specs[i] = spec
		return nil
	}
}

// WithIDGenerator overrides how evaluation IDs are produced. The default is
// a random UUID.
func WithIDGenerator(newID func() string) Option {
	return func(g *Grader) error {
		if newID == nil {
			return errors.New("grader: id generator is nil")
		}
		g.newID = newID
		return nil
	}
}

// WithModelCost prices every Result's token usage. A zero ModelCost leaves
// Result.Cost nil.
func WithModelCost(price cost.ModelCost) Option {
	return func(g *Grader) error {
		if price.InputCostPerMillion < 0 || price.OutputCostPerMillion < 0 {
			return fmt.Errorf("grader: negative model cost %v", price)
		}
		g.price = price
		return nil
	}
}

// New builds a Grader around sender, usually a *client.Client.
func New(sender Sender, opts ...Option) (*Grader, error) {
	if sender == nil {
		return nil, ErrNilSender
	}

	g := &Grader{
		sender: sender,
		newID:  uuid.NewString,
	}
	copy(g.specs[:], DefaultCriteria())
	if withObserver, ok := sender.(interface {
		Observer() observability.Provider
	}); ok {
		g.observer = observer{provider: withObserver.Observer()}
	}

	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Criteria returns a copy of the criterion definitions in use.
func (g *Grader) Criteria() []CriterionSpec {
	return append([]CriterionSpec(nil), g.specs[:]...)
}

// Evaluate grades subject. Criterion failures are absorbed into the Result as
// diagnostics. An error is returned only when ctx is done or an internal
// invariant breaks, and then the Result is the zero value.
func (g *Grader) Evaluate(ctx context.Context, subject string) (Result, error) {
	id := g.newID()
	start := time.Now()

	ctx, span := g.observer.startEvaluation(ctx, id, subject)

	result, err := g.run(ctx, id, subject)
	if err != nil {
		g.observer.evaluationFailed(ctx, span, id, err)
		return Result{}, err
	}

	result.Duration = time.Since(start)
	g.observer.evaluationCompleted(ctx, span, result)
	return result, nil
}

func (g *Grader) run(ctx context.Context, id, subject string) (Result, error) {
	state := NewState(subject)
	result := Result{ID: id}

	stage := StageRelevance
	for stage != StageDone {
		result.Path = append(result.Path, stage)

		if stage == StageAggregate {
			final, err := state.Finalize()
			if err != nil {
				return Result{}, fmt.Errorf("evaluation %s: %w", id, err)
			}
			result.Final = final

			next, err := Next(stage, final)
			if err != nil {
				return Result{}, fmt.Errorf("evaluation %s: %w", id, err)
			}
			stage = next
			continue
		}

		c, ok := stage.Criterion()
		if !ok {
			return Result{}, fmt.Errorf("evaluation %s: %w: %v", id, ErrUnknownStage, stage)
		}
		if err := ctx.Err(); err != nil {
			return Result{}, fmt.Errorf("evaluation %s: %w", id, err)
		}

		ev, err := g.evaluate(ctx, id, c, subject)
		if err != nil {
			return Result{}, fmt.Errorf("evaluation %s: %s: %w", id, c, err)
		}
		if err := state.Record(c, ev.score); err != nil {
			return Result{}, fmt.Errorf("evaluation %s: %w", id, err)
		}
		if ev.diagnostic != nil {
			result.Diagnostics = append(result.Diagnostics, *ev.diagnostic)
		}
		if ev.usage != nil {
			result.Usage.PromptTokens += ev.usage.PromptTokens
			result.Usage.CompletionTokens += ev.usage.CompletionTokens
			result.Usage.TotalTokens += ev.usage.TotalTokens
		}

		next, err := Next(stage, ev.score)
		if err != nil {
			return Result{}, fmt.Errorf("evaluation %s: %w", id, err)
		}
		g.observer.gateDecision(ctx, id, stage, next, ev.score)
		stage = next
	}
	result.Path = append(result.Path, StageDone)

	scores := state.Scores()
	result.Relevance = scores.Relevance
	result.Grammar = scores.Grammar
	result.Structure = scores.Structure
	result.Depth = scores.Depth
	result.Evaluated = state.Recorded()
	if !g.price.IsZero() {
		estimate := g.price.Estimate(result.Usage)
		result.Cost = &estimate
	}
	return result, nil
}

func (g *Grader) evaluate(ctx context.Context, id string, c Criterion, subject string) (evaluation, error) {
	ctx, span := g.observer.startCriterion(ctx, id, c)
	start := time.Now()

	ev, err := evaluateCriterion(ctx, g.sender, g.specs[c.index()], subject)
	if err != nil {
		g.observer.criterionAborted(span, err)
		return evaluation{}, err
	}

	g.observer.criterionCompleted(ctx, span, id, c, ev, time.Since(start))
	return ev, nil
}
