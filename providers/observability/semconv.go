package observability

// Semantic conventions for observability attributes.
// These constants keep attribute names consistent across components.

// --- LLM Provider Attributes ---

const (
	// AttrLLMProvider is the name of the LLM provider (e.g., "openai")
	AttrLLMProvider = "llm.provider"

	// AttrLLMModel is the model identifier
	AttrLLMModel = "llm.model"

	// AttrLLMEndpoint is the API endpoint URL
	AttrLLMEndpoint = "llm.endpoint"

	// AttrLLMFinishReason is the reason the generation finished
	AttrLLMFinishReason = "llm.finish_reason"

	AttrLLMTokensPrompt     = "llm.tokens.prompt"     // #nosec G101 -- Not a credential, token refers to LLM tokens
	AttrLLMTokensCompletion = "llm.tokens.completion" // #nosec G101 -- Not a credential, token refers to LLM tokens
	AttrLLMTokensTotal      = "llm.tokens.total"      // #nosec G101 -- Not a credential, token refers to LLM tokens
)

// --- Request Attributes ---

const (
	// AttrRequestMessagesCount is the number of messages in the request
	AttrRequestMessagesCount = "request.messages_count"

	// AttrClientPrompt is the user prompt (truncated)
	AttrClientPrompt = "client.prompt"
)

// --- HTTP Attributes ---

const (
	AttrHTTPMethod           = "http.method"
	AttrHTTPStatusCode       = "http.status_code"
	AttrHTTPURL              = "http.url"
	AttrHTTPRequestBodySize  = "http.request.body.size"
	AttrHTTPResponseBodySize = "http.response.body.size"
)

// --- Grading Attributes ---

const (
	// AttrEvaluationID identifies a single Evaluate call across all its logs and spans.
	AttrEvaluationID = "evaluation.id"

	// AttrGraderCriterion is the criterion being scored (relevance, grammar, ...)
	AttrGraderCriterion = "grader.criterion"

	// AttrGraderScore is the score recorded for a criterion
	AttrGraderScore = "grader.score"

	// AttrGraderStage is the pipeline stage entered after a gate decision
	AttrGraderStage = "grader.stage"

	// AttrGraderFallback is the failure kind that forced a default score
	AttrGraderFallback = "grader.fallback"

	// AttrGraderFinalScore is the weighted composite score
	AttrGraderFinalScore = "grader.final_score"

	// AttrGraderSubjectLength is the subject length in bytes
	AttrGraderSubjectLength = "grader.subject.length"
)

// --- General Attributes ---

const (
	AttrError             = "error"
	AttrDuration          = "duration"
	AttrStatus            = "status"
	AttrStatusDescription = "status_description"
)

// --- Span Names ---

const (
	// SpanClientSendMessage is the span name for client message sending
	SpanClientSendMessage = "client.send_message"

	// SpanGraderEvaluate covers one full pipeline run
	SpanGraderEvaluate = "grader.evaluate"

	// SpanGraderCriterion covers one criterion evaluator
	SpanGraderCriterion = "grader.criterion"
)

// --- Metric Names ---

const (
	MetricClientRequestCount     = "grader.client.request.count"
	MetricClientRequestDuration  = "grader.client.request.duration"
	MetricClientTokensTotal      = "grader.client.tokens.total"
	MetricClientTokensPrompt     = "grader.client.tokens.prompt"
	MetricClientTokensCompletion = "grader.client.tokens.completion"

	// MetricGraderCriterionDuration is the histogram of per-criterion wall time
	MetricGraderCriterionDuration = "grader.criterion.duration"

	// MetricGraderFallbackCount counts criteria that fell back to the default score
	MetricGraderFallbackCount = "grader.criterion.fallback"

	// MetricGraderFinalScore is the histogram of final composite scores
	MetricGraderFinalScore = "grader.evaluation.final_score"
)
