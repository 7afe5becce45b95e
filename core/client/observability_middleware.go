package client

import (
	"context"

	"github.com/debsouryadatta/langgraph-agents/internal/utils"
	"github.com/debsouryadatta/langgraph-agents/providers/ai"
	"github.com/debsouryadatta/langgraph-agents/providers/observability"
)

// responsePreviewLen bounds the reply excerpt attached to the completion log.
const responsePreviewLen = 100

// NewObservabilityMiddleware returns a Middleware that opens a span around
// each provider call and records request counts, durations and token usage.
//
// The span and observer are placed on the context before calling next so
// downstream code can reach them with [observability.SpanFromContext] and
// [observability.ObserverFromContext]. [New] installs it automatically as the
// outermost middleware when [WithObserver] is set. defaultModel labels
// requests that carry no model of their own.
func NewObservabilityMiddleware(observer observability.Provider, defaultModel string) Middleware {
	return func(next SendFunc) SendFunc {
		return func(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error) {
			model := effectiveModel(request.Model, defaultModel)
			modelAttr := observability.String(observability.AttrLLMModel, model)

			ctx, span := observer.StartSpan(ctx, observability.SpanClientSendMessage, modelAttr)
			defer span.End()
			ctx = observability.ContextWithSpan(ctx, span)
			ctx = observability.ContextWithObserver(ctx, observer)

			observer.Debug(ctx, "llm send",
				modelAttr,
				observability.Int(observability.AttrRequestMessagesCount, len(request.Messages)),
			)

			timer := utils.NewTimer()
			response, err := next(ctx, request)
			timer.Stop()

			if err != nil {
				span.RecordError(err)
				span.SetStatus(observability.StatusError, "llm send failed")

				// Warn rather than Error: the grader recovers from failed calls.
				observer.Warn(ctx, "llm send failed",
					observability.Error(err),
					observability.Duration(observability.AttrDuration, timer.GetDuration()),
					modelAttr,
				)
				observer.Counter(observability.MetricClientRequestCount).Add(ctx, 1,
					observability.String(observability.AttrStatus, "error"),
					modelAttr,
				)
				return nil, err
			}

			recordSuccess(ctx, span, observer, response, timer, modelAttr)
			return response, nil
		}
	}
}

func recordSuccess(
	ctx context.Context,
	span observability.Span,
	observer observability.Provider,
	response *ai.ChatResponse,
	timer *utils.Timer,
	modelAttr observability.Attribute,
) {
	elapsed := timer.GetDuration()

	observer.Histogram(observability.MetricClientRequestDuration).Record(ctx, elapsed.Seconds(), modelAttr)
	observer.Counter(observability.MetricClientRequestCount).Add(ctx, 1,
		observability.String(observability.AttrStatus, "success"),
		modelAttr,
	)

	logAttrs := []observability.Attribute{
		modelAttr,
		observability.Duration(observability.AttrDuration, elapsed),
	}
	if response == nil {
		observer.Debug(ctx, "llm send completed", logAttrs...)
		span.SetStatus(observability.StatusOK, "success")
		return
	}

	logAttrs = append(logAttrs, observability.String(observability.AttrLLMFinishReason, response.FinishReason))

	if usage := response.Usage; usage != nil {
		observer.Counter(observability.MetricClientTokensTotal).Add(ctx, int64(usage.TotalTokens), modelAttr)
		observer.Counter(observability.MetricClientTokensPrompt).Add(ctx, int64(usage.PromptTokens), modelAttr)
		observer.Counter(observability.MetricClientTokensCompletion).Add(ctx, int64(usage.CompletionTokens), modelAttr)

		tokenAttrs := []observability.Attribute{
			observability.Int(observability.AttrLLMTokensPrompt, usage.PromptTokens),
			observability.Int(observability.AttrLLMTokensCompletion, usage.CompletionTokens),
			observability.Int(observability.AttrLLMTokensTotal, usage.TotalTokens),
		}
		span.SetAttributes(tokenAttrs...)
		logAttrs = append(logAttrs, tokenAttrs...)
	}

	if response.Content != "" {
		logAttrs = append(logAttrs, observability.String("response", utils.TruncateString(response.Content, responsePreviewLen)))
	}

	observer.Debug(ctx, "llm send completed", logAttrs...)
	span.SetStatus(observability.StatusOK, "success")
}

// effectiveModel prefers the request's model over the client default. Both
// may be empty, in which case the provider chooses.
func effectiveModel(requestModel, defaultModel string) string {
	if requestModel != "" {
		return requestModel
	}
	return defaultModel
}
