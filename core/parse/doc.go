// Package parse turns raw LLM text into typed values.
//
// [ExtractScore] and [ExtractUnitScore] pull the numeric verdict out of a
// "Score: <number>" reply and report a typed [*ExtractionError] when the reply
// carries none. [ParseStringAs] converts a string into any Go type, falling
// back to github.com/kaptinlin/jsonrepair when JSON input is malformed.
package parse
