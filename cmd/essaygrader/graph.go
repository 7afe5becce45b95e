package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/debsouryadatta/langgraph-agents/patterns/grader"
)

func newGraphCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "graph",
		Short: "Print the grading pipeline as a Mermaid flowchart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprint(cmd.OutOrStdout(), grader.Mermaid())
			return err
		},
	}
}
