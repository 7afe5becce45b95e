package grader

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/debsouryadatta/langgraph-agents/core/parse"
	"github.com/debsouryadatta/langgraph-agents/core/subject"
)

var (
	// ErrEmptyManifest means a manifest held no entries.
	ErrEmptyManifest = errors.New("manifest has no entries")
	// ErrDuplicateID means two manifest entries share an ID.
	ErrDuplicateID = errors.New("duplicate manifest id")
)

// BatchItem is one entry of a batch manifest.
type BatchItem struct {
	ID    string `json:"id"`
	Essay string `json:"essay"`
}

// BatchResult pairs a manifest entry with its outcome. Exactly one of Result
// and Err is meaningful.
type BatchResult struct {
	ID     string
	Result Result
	Err    error
}

// ParseManifest decodes a JSON array of {"id", "essay"} objects. Malformed
// JSON such as trailing commas or single quotes is repaired first. Entries
// without an ID are numbered "item-N" by position, starting at 1.
func ParseManifest(content string) ([]BatchItem, error) {
	items, err := parse.ParseStringAs[[]BatchItem](content)
	if err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	if len(items) == 0 {
		return nil, ErrEmptyManifest
	}

	seen := make(map[string]struct{}, len(items))
	for i := range items {
		items[i].ID = strings.TrimSpace(items[i].ID)
		if items[i].ID == "" {
			items[i].ID = fmt.Sprintf("item-%d", i+1)
		}
		if _, dup := seen[items[i].ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, items[i].ID)
		}
		seen[items[i].ID] = struct{}{}
	}
	return items, nil
}

// EvaluateBatch grades items one after another. A bad essay only fails its
// own entry; once ctx is done the remaining entries are not attempted and the
// context error is returned along with the results gathered so far.
func (g *Grader) EvaluateBatch(ctx context.Context, items []BatchItem) ([]BatchResult, error) {
	results := make([]BatchResult, 0, len(items))
	for _, item := range items {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		text, err := subject.Normalize(item.Essay)
		if err != nil {
			results = append(results, BatchResult{ID: item.ID, Err: err})
			continue
		}

		result, err := g.Evaluate(ctx, text)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return results, ctxErr
			}
			results = append(results, BatchResult{ID: item.ID, Err: err})
			continue
		}
		results = append(results, BatchResult{ID: item.ID, Result: result})
	}
	return results, nil
}
