package grader

import (
	"context"
	"time"

	"github.com/debsouryadatta/langgraph-agents/providers/observability"
)

// observer wraps an optional observability.Provider. Every method is a no-op
// when the provider is nil.
type observer struct {
	provider observability.Provider
}

func (o observer) startEvaluation(ctx context.Context, id string, subject string) (context.Context, observability.Span) {
	if o.provider == nil {
		return ctx, nil
	}

	ctx, span := o.provider.StartSpan(ctx, observability.SpanGraderEvaluate,
		observability.String(observability.AttrEvaluationID, id),
		observability.Int(observability.AttrGraderSubjectLength, len(subject)),
	)
	ctx = observability.ContextWithSpan(ctx, span)
	ctx = observability.ContextWithObserver(ctx, o.provider)

	o.provider.Info(ctx, "evaluation started",
		observability.String(observability.AttrEvaluationID, id),
		observability.Int(observability.AttrGraderSubjectLength, len(subject)),
	)
	return ctx, span
}

func (o observer) evaluationCompleted(ctx context.Context, span observability.Span, result Result) {
	if o.provider == nil {
		return
	}

	o.provider.Histogram(observability.MetricGraderFinalScore).Record(ctx, result.Final)
	o.provider.Info(ctx, "evaluation completed",
		observability.String(observability.AttrEvaluationID, result.ID),
		observability.Float64(observability.AttrGraderFinalScore, result.Final),
		observability.Int("grader.evaluated", len(result.Evaluated)),
		observability.Int("grader.diagnostics", len(result.Diagnostics)),
		observability.Duration(observability.AttrDuration, result.Duration),
	)

	span.SetAttributes(
		observability.Float64(observability.AttrGraderFinalScore, result.Final),
		observability.Int("grader.evaluated", len(result.Evaluated)),
	)
	span.SetStatus(observability.StatusOK, "evaluation completed")
	span.End()
}

func (o observer) evaluationFailed(ctx context.Context, span observability.Span, id string, err error) {
	if o.provider == nil {
		return
	}

	o.provider.Error(ctx, "evaluation failed",
		observability.String(observability.AttrEvaluationID, id),
		observability.Error(err),
	)
	span.RecordError(err)
	span.SetStatus(observability.StatusError, "evaluation failed")
	span.End()
}

func (o observer) startCriterion(ctx context.Context, id string, c Criterion) (context.Context, observability.Span) {
	if o.provider == nil {
		return ctx, nil
	}

	ctx, span := o.provider.StartSpan(ctx, observability.SpanGraderCriterion,
		observability.String(observability.AttrEvaluationID, id),
		observability.String(observability.AttrGraderCriterion, string(c)),
	)
	return observability.ContextWithSpan(ctx, span), span
}

func (o observer) criterionCompleted(ctx context.Context, span observability.Span, id string, c Criterion, ev evaluation, elapsed time.Duration) {
	if o.provider == nil {
		return
	}

	criterionAttr := observability.String(observability.AttrGraderCriterion, string(c))
	o.provider.Histogram(observability.MetricGraderCriterionDuration).Record(ctx, elapsed.Seconds(), criterionAttr)
	span.SetAttributes(observability.Float64(observability.AttrGraderScore, ev.score))

	if d := ev.diagnostic; d != nil {
		o.provider.Counter(observability.MetricGraderFallbackCount).Add(ctx, 1,
			criterionAttr,
			observability.String(observability.AttrGraderFallback, string(d.Kind)),
		)
		o.provider.Warn(ctx, "criterion fell back to default score",
			observability.String(observability.AttrEvaluationID, id),
			criterionAttr,
			observability.String(observability.AttrGraderFallback, string(d.Kind)),
			observability.Float64(observability.AttrGraderScore, ev.score),
			observability.Error(d.Err),
		)
		span.SetAttributes(observability.String(observability.AttrGraderFallback, string(d.Kind)))
		span.SetStatus(observability.StatusError, string(d.Kind))
	} else {
		o.provider.Debug(ctx, "criterion scored",
			observability.String(observability.AttrEvaluationID, id),
			criterionAttr,
			observability.Float64(observability.AttrGraderScore, ev.score),
			observability.Duration(observability.AttrDuration, elapsed),
		)
		span.SetStatus(observability.StatusOK, "scored")
	}
	span.End()
}

func (o observer) criterionAborted(span observability.Span, err error) {
	if o.provider == nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(observability.StatusError, "aborted")
	span.End()
}

func (o observer) gateDecision(ctx context.Context, id string, from, to Stage, score float64) {
	if o.provider == nil {
		return
	}

	msg := "gate passed"
	switch {
	case from == StageDepth:
		msg = "last criterion scored"
	case to == StageAggregate:
		msg = "gate closed, skipping remaining criteria"
	}
	o.provider.Info(ctx, msg,
		observability.String(observability.AttrEvaluationID, id),
		observability.String(observability.AttrGraderCriterion, from.String()),
		observability.Float64(observability.AttrGraderScore, score),
		observability.String(observability.AttrGraderStage, to.String()),
	)
}
