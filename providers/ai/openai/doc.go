// Package openai implements the [ai.Provider] interface for APIs that speak the
// OpenAI chat completions protocol (OpenAI itself, Groq, OpenRouter, Ollama and
// most self-hosted gateways).
//
// The main entry point is [New], which reads OPENAI_API_KEY and
// OPENAI_API_BASE_URL from the environment. Use [OpenAIProvider.WithAPIKey],
// [OpenAIProvider.WithBaseURL] and [OpenAIProvider.WithModel] to override
// these values programmatically.
package openai
