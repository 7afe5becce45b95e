package client

import (
	"context"

	"github.com/debsouryadatta/langgraph-agents/providers/ai"
)

// SendFunc sends a chat request and returns the completed response. It is the
// unit threaded through the middleware chain.
type SendFunc func(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error)

// Middleware wraps the next SendFunc in the chain.
type Middleware func(next SendFunc) SendFunc

// buildSendChain wraps the provider call with middlewares. They are applied in
// reverse so that middlewares[0] is the outermost wrapper, the first to see a
// request and the last to see its response.
func buildSendChain(provider ai.Provider, middlewares []Middleware) SendFunc {
	var chain SendFunc = func(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error) {
		return provider.SendMessage(ctx, request)
	}

	for i := len(middlewares) - 1; i >= 0; i-- {
		chain = middlewares[i](chain)
	}

	return chain
}
