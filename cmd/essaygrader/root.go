package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/debsouryadatta/langgraph-agents/core/client"
	"github.com/debsouryadatta/langgraph-agents/core/client/middleware"
	"github.com/debsouryadatta/langgraph-agents/core/cost"
	"github.com/debsouryadatta/langgraph-agents/internal/config"
	"github.com/debsouryadatta/langgraph-agents/patterns/grader"
	"github.com/debsouryadatta/langgraph-agents/providers/ai/openai"
	"github.com/debsouryadatta/langgraph-agents/providers/observability/slogobs"
)

// rootOptions holds the persistent flags.
type rootOptions struct {
	configPath string
	logLevel   string
	logFormat  string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "essaygrader",
		Short: "Grade essays with an LLM using score-gated criteria",
		Long: `essaygrader asks an OpenAI-compatible chat model to score an essay on
relevance, grammar, structure and depth, in that order. A criterion scoring
0.5 or less skips the ones after it. The final score is the weighted sum
relevance*0.3 + grammar*0.2 + structure*0.2 + depth*0.3.

Settings come from --config (YAML), then GRADER_* environment variables and
any .env file in the working directory.`,
		SilenceUsage: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "path to a YAML config file")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	flags.StringVar(&opts.logFormat, "log-format", "", "log format: compact, pretty, json")

	root.AddCommand(
		newGradeCmd(opts),
		newBatchCmd(opts),
		newGraphCmd(),
	)
	return root
}

// loadConfig reads the config and applies the logging flags on top.
func (o *rootOptions) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}

	changed := false
	if o.logLevel != "" {
		cfg.LogLevel = strings.ToUpper(strings.TrimSpace(o.logLevel))
		changed = true
	}
	if o.logFormat != "" {
		cfg.LogFormat = strings.ToLower(strings.TrimSpace(o.logFormat))
		changed = true
	}
	if changed {
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// newGrader wires provider, observer, client middlewares and grader. Log
// output goes to the command's stderr.
func (o *rootOptions) newGrader(cmd *cobra.Command) (*grader.Grader, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, err
	}

	observer := slogobs.New(
		slogobs.WithFormat(slogobs.ParseFormat(cfg.LogFormat)),
		slogobs.WithLevel(slogobs.ParseLevel(cfg.LogLevel)),
		slogobs.WithOutput(cmd.ErrOrStderr()),
	)

	provider := openai.New().
		WithAPIKey(cfg.APIKey).
		WithBaseURL(cfg.BaseURL)

	// Retry sits outside the timeout so every attempt gets a fresh deadline.
	var middlewares []client.Middleware
	if cfg.MaxRetries > 0 {
		middlewares = append(middlewares, middleware.NewRetryMiddleware(middleware.RetryConfig{
			MaxRetries: cfg.MaxRetries,
		}))
	}
	middlewares = append(middlewares, middleware.NewTimeoutMiddleware(cfg.CallTimeout))
	if cfg.LogRequests != "" {
		middlewares = append(middlewares,
			middleware.NewLoggingMiddleware(observer.Logger(), middleware.ParseLogLevel(cfg.LogRequests)))
	}

	c, err := client.New(provider,
		client.WithModel(cfg.Model),
		client.WithTemperature(cfg.Temperature),
		client.WithObserver(observer),
		client.WithMiddleware(middlewares...),
	)
	if err != nil {
		return nil, fmt.Errorf("build client: %w", err)
	}

	price := cost.ModelCost{
		InputCostPerMillion:  cfg.InputCostPerMillion,
		OutputCostPerMillion: cfg.OutputCostPerMillion,
	}
	if price.IsZero() {
		price, _ = cost.ForModel(cfg.Model)
	}

	return grader.New(c, grader.WithModelCost(price))
}
