// Package ai defines the provider-agnostic request and response types used to
// talk to an LLM collaborator. A provider's conversion layer maps these types
// to its own wire format, keeping the grading pipeline decoupled from any one
// vendor.
//
// The central interface is [Provider]. Requests flow through [ChatRequest]
// and replies come back as [ChatResponse].
package ai
