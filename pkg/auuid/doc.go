// Package auuid wraps github.com/google/uuid parsing for Result pipelines.
//
// Highlights:
// - Maybe: parse with an ok flag
// - Try: parse with a structured ParseFailure retaining the input
package auuid
