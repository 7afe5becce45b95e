package middleware

import (
	"context"
	"time"

	"github.com/debsouryadatta/langgraph-agents/core/client"
	"github.com/debsouryadatta/langgraph-agents/providers/ai"
)

// NewTimeoutMiddleware bounds each call with context.WithTimeout. A caller
// context with a shorter deadline still wins. A non-positive timeout disables
// the middleware.
func NewTimeoutMiddleware(timeout time.Duration) client.Middleware {
	return func(next client.SendFunc) client.SendFunc {
		if timeout <= 0 {
			return next
		}
		return func(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error) {
			ctx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()

			return next(ctx, request)
		}
	}
}
