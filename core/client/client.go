package client

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/debsouryadatta/langgraph-agents/providers/ai"
	"github.com/debsouryadatta/langgraph-agents/providers/observability"
)

var (
	// ErrNilProvider is returned by New when no provider is given.
	ErrNilProvider = errors.New("client: provider is nil")

	// ErrNilMiddleware is returned by New when WithMiddleware receives a nil entry.
	ErrNilMiddleware = errors.New("client: middleware is nil")

	// ErrEmptyPrompt is returned by SendMessage for a blank prompt.
	ErrEmptyPrompt = errors.New("client: prompt is empty")

	errNilResponse = errors.New("provider returned no response")
)

// Client sends single-turn prompts through a provider and middleware chain.
type Client struct {
	provider         ai.Provider
	observer         observability.Provider
	model            string
	systemPrompt     string
	generationConfig *ai.GenerationConfig
	middlewares      []Middleware
	send             SendFunc
}

// Option configures a Client.
type Option func(*Client)

// WithModel sets the model placed on every request.
func WithModel(model string) Option {
	return func(c *Client) {
		c.model = model
	}
}

// WithSystemPrompt sets an optional system prompt sent ahead of each user message.
func WithSystemPrompt(prompt string) Option {
	return func(c *Client) {
		c.systemPrompt = prompt
	}
}

// WithTemperature sets the sampling temperature. Zero is kept and sent.
func WithTemperature(temperature float32) Option {
	return func(c *Client) {
		if c.generationConfig == nil {
			c.generationConfig = &ai.GenerationConfig{}
		}
		c.generationConfig.Temperature = &temperature
	}
}

// WithGenerationConfig replaces the generation settings used on every request.
func WithGenerationConfig(config ai.GenerationConfig) Option {
	return func(c *Client) {
		c.generationConfig = &config
	}
}

// WithObserver enables tracing, metrics and logging. The observability
// middleware is placed outermost so it records the end result of retries and
// timeouts.
func WithObserver(observer observability.Provider) Option {
	return func(c *Client) {
		c.observer = observer
	}
}

// WithMiddleware appends middlewares to the chain. The first one given is the
// outermost.
func WithMiddleware(middlewares ...Middleware) Option {
	return func(c *Client) {
		c.middlewares = append(c.middlewares, middlewares...)
	}
}

// New builds a Client around provider.
func New(provider ai.Provider, opts ...Option) (*Client, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}

	c := &Client{provider: provider}
	for _, opt := range opts {
		opt(c)
	}

	for i, mw := range c.middlewares {
		if mw == nil {
			return nil, fmt.Errorf("%w at position %d", ErrNilMiddleware, i)
		}
	}

	chain := c.middlewares
	if c.observer != nil {
		chain = append([]Middleware{NewObservabilityMiddleware(c.observer, c.model)}, chain...)
	}
	c.send = buildSendChain(provider, chain)

	return c, nil
}

// Observer returns the configured observer, or nil.
func (c *Client) Observer() observability.Provider {
	return c.observer
}

// Model returns the model placed on requests.
func (c *Client) Model() string {
	return c.model
}

// SendMessage sends prompt as a single user message. No history is kept
// between calls.
func (c *Client) SendMessage(ctx context.Context, prompt string) (*ai.ChatResponse, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, ErrEmptyPrompt
	}

	request := ai.ChatRequest{
		Model:        c.model,
		SystemPrompt: c.systemPrompt,
		Messages: []ai.Message{
			{Role: ai.RoleUser, Content: prompt},
		},
	}
	if c.generationConfig != nil {
		config := *c.generationConfig
		request.GenerationConfig = &config
	}

	response, err := c.send(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("send message: %w", err)
	}
	if response == nil {
		return nil, fmt.Errorf("send message: %w", errNilResponse)
	}
	return response, nil
}
