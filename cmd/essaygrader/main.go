// Command essaygrader grades essays with an LLM on relevance, grammar,
// structure and depth, stopping early when a gated criterion scores 0.5 or
// less.
//
//	essaygrader grade essay.txt
//	essaygrader grade - --json < essay.md
//	essaygrader batch essays.json
//	essaygrader graph
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
