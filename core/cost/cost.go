package cost

import (
	"fmt"
	"strings"

	"github.com/debsouryadatta/langgraph-agents/providers/ai"
)

// Currency of every price in this package.
const Currency = "USD"

// ModelCost is the pricing of one model in USD per million tokens.
//
//	price := cost.ModelCost{InputCostPerMillion: 0.59, OutputCostPerMillion: 0.79}
//	estimate := price.Estimate(ai.Usage{PromptTokens: 1200, CompletionTokens: 300})
type ModelCost struct {
	InputCostPerMillion  float64 `json:"input_cost_per_million" yaml:"input_cost_per_million"`
	OutputCostPerMillion float64 `json:"output_cost_per_million" yaml:"output_cost_per_million"`
}

// IsZero reports whether no price is set.
func (mc ModelCost) IsZero() bool {
	return mc.InputCostPerMillion == 0 && mc.OutputCostPerMillion == 0
}

// InputCost is the price of tokens prompt tokens.
func (mc ModelCost) InputCost(tokens int) float64 {
	return float64(tokens) / 1_000_000.0 * mc.InputCostPerMillion
}

// OutputCost is the price of tokens completion tokens.
func (mc ModelCost) OutputCost(tokens int) float64 {
	return float64(tokens) / 1_000_000.0 * mc.OutputCostPerMillion
}

// Estimate prices usage.
func (mc ModelCost) Estimate(usage ai.Usage) Estimate {
	in := mc.InputCost(usage.PromptTokens)
	out := mc.OutputCost(usage.CompletionTokens)
	return Estimate{
		Input:    in,
		Output:   out,
		Total:    in + out,
		Currency: Currency,
	}
}

func (mc ModelCost) String() string {
	return fmt.Sprintf("Input: $%.6f/M, Output: $%.6f/M", mc.InputCostPerMillion, mc.OutputCostPerMillion)
}

// Estimate is the priced breakdown of some token usage.
type Estimate struct {
	Input    float64 `json:"input"`
	Output   float64 `json:"output"`
	Total    float64 `json:"total"`
	Currency string  `json:"currency"`
}

func (e Estimate) String() string {
	return fmt.Sprintf("%.6f %s", e.Total, e.Currency)
}

// Pricing holds published on-demand rates for Groq-hosted models.
// Source: https://groq.com/pricing
var Pricing = map[string]ModelCost{
	"llama-3.3-70b-versatile": {InputCostPerMillion: 0.59, OutputCostPerMillion: 0.79},
	"llama-3.1-8b-instant":    {InputCostPerMillion: 0.05, OutputCostPerMillion: 0.08},
	"gemma2-9b-it":            {InputCostPerMillion: 0.20, OutputCostPerMillion: 0.20},
}

// ForModel looks up model in Pricing, ignoring case and surrounding space.
func ForModel(model string) (ModelCost, bool) {
	mc, ok := Pricing[strings.ToLower(strings.TrimSpace(model))]
	return mc, ok
}
