package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/debsouryadatta/langgraph-agents/core/subject"
	"github.com/debsouryadatta/langgraph-agents/patterns/grader"
)

// batchLine is the JSON shape of one batch entry.
type batchLine struct {
	ID     string         `json:"id"`
	Result *grader.Result `json:"result,omitempty"`
	Error  string         `json:"error,omitempty"`
}

func newBatchCmd(root *rootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "batch <manifest.json|->",
		Short: "Grade every essay in a JSON manifest, one after another",
		Long: `Grade every entry of a manifest shaped like
  [{"id": "alice", "essay": "..."}, {"id": "bob", "essay": "..."}]
Minor JSON mistakes such as trailing commas or single quotes are repaired.
Entries without an id are named item-1, item-2 and so on.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := readManifest(cmd.InOrStdin(), args[0])
			if err != nil {
				return fmt.Errorf("read manifest: %w", err)
			}
			items, err := grader.ParseManifest(string(content))
			if err != nil {
				return err
			}

			g, err := root.newGrader(cmd)
			if err != nil {
				return err
			}

			results, err := g.EvaluateBatch(cmd.Context(), items)
			failed := printBatch(cmd.OutOrStdout(), results, asJSON)
			if err != nil {
				return err
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d entries failed", failed, len(items))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print one JSON object per entry")
	return cmd
}

// readManifest reads the raw manifest. Essays are normalized one by one
// later, so the manifest itself is never treated as HTML.
func readManifest(stdin io.Reader, path string) ([]byte, error) {
	if path == subject.StdinSource {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path) // #nosec G304 -- path is chosen by the operator
}

// printBatch writes one line per result and returns how many failed.
func printBatch(w io.Writer, results []grader.BatchResult, asJSON bool) int {
	failed := 0
	enc := json.NewEncoder(w)
	for i := range results {
		r := &results[i]
		if r.Err != nil {
			failed++
		}

		if asJSON {
			line := batchLine{ID: r.ID}
			if r.Err != nil {
				line.Error = r.Err.Error()
			} else {
				line.Result = &r.Result
			}
			_ = enc.Encode(line)
			continue
		}

		if r.Err != nil {
			fmt.Fprintf(w, "%s\terror: %v\n", r.ID, r.Err)
			continue
		}
		fmt.Fprintf(w, "%s\tfinal=%.2f relevance=%.2f grammar=%.2f structure=%.2f depth=%.2f\n",
			r.ID, r.Result.Final, r.Result.Relevance, r.Result.Grammar, r.Result.Structure, r.Result.Depth)
	}
	return failed
}
