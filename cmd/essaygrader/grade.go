package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/debsouryadatta/langgraph-agents/core/subject"
	"github.com/debsouryadatta/langgraph-agents/patterns/grader"
)

func newGradeCmd(root *rootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "grade [file|-|url]",
		Short: "Grade one essay",
		Long: `Grade one essay read from a file, from stdin ("-") or from an http(s) URL.
HTML input is converted to Markdown first. Without an argument the built-in
sample essay is graded.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := root.newGrader(cmd)
			if err != nil {
				return err
			}

			var text string
			if len(args) == 0 {
				text, err = subject.Normalize(sampleEssay)
			} else {
				loader := &subject.Loader{Stdin: cmd.InOrStdin()}
				text, err = loader.Load(cmd.Context(), args[0])
			}
			if err != nil {
				return err
			}

			result, err := g.Evaluate(cmd.Context(), text)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), result)
			}
			printResult(cmd.OutOrStdout(), result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full result as JSON")
	return cmd
}

func printResult(w io.Writer, r grader.Result) {
	fmt.Fprintf(w, "Final Essay Score: %.2f\n\n", r.Final)
	fmt.Fprintf(w, "Relevance Score: %.2f\n\n", r.Relevance)
	fmt.Fprintf(w, "Grammar Score: %.2f\n\n", r.Grammar)
	fmt.Fprintf(w, "Structure Score: %.2f\n\n", r.Structure)
	fmt.Fprintf(w, "Depth Score: %.2f\n", r.Depth)
	if r.Cost != nil {
		fmt.Fprintf(w, "\nEstimated cost: $%.6f (%d tokens)\n", r.Cost.Total, r.Usage.TotalTokens)
	}

	for _, d := range r.Diagnostics {
		fmt.Fprintf(w, "\nwarning: %s scored %.2f (%s): %s\n", d.Criterion, grader.DefaultScore, d.Kind, d.Message)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
