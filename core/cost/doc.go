// Package cost estimates the monetary cost of LLM calls from their token
// usage. [ModelCost] holds per-million-token prices and [Pricing] lists the
// published rates of the models the grader is usually run against.
package cost
