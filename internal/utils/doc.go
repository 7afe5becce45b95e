// Package utils provides low-level helpers shared by the provider and client
// layers: a synchronous JSON POST helper with observability hooks, string
// truncation for log previews, and an elapsed-time timer.
package utils
