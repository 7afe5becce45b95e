// Package grader scores a text on four criteria (relevance, grammar,
// structure and depth) by asking an LLM for a "Score: <number>" verdict per
// criterion, and combines the scores into a weighted composite.
//
// Criteria run in a fixed order. After relevance, grammar and structure, the
// score must exceed [GateThreshold] for the next criterion to run; otherwise
// the pipeline jumps straight to aggregation and the skipped criteria keep a
// score of 0. Depth always proceeds to aggregation. [Next] is the pure
// transition function behind this and [Mermaid] renders it as a diagram.
//
// A malformed reply, a transport error or a per-call timeout never aborts an
// evaluation: the criterion scores 0 and a [Diagnostic] is attached to the
// [Result]. Only cancellation of the caller's context and broken internal
// invariants make [Grader.Evaluate] return an error.
//
//	c, _ := client.New(provider, client.WithModel("llama-3.3-70b-versatile"))
//	g, _ := grader.New(c)
//	result, err := g.Evaluate(ctx, essay)
//	fmt.Printf("Final Essay Score: %.2f\n", result.Final)
package grader
