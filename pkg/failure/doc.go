// Package failure models errors as structured values. A Failure carries a
// human-readable description, an optional causing Failure (forming a chain to
// the root cause), and an optional captured error from whatever external
// library originally went wrong.
//
// Highlights:
// - New/WithCause/WithError/Wrap: construct a free-form Generic failure
// - Multi: an ordered aggregate of child failures with a synthesized,
//   reproducible description
// - Collector: an explicit fold (add, merge, finish) for gathering every
//   failure across a collection instead of stopping at the first
// - Join: combine a slice of failures into one
//
// Failures are values, never panics: APIs built on this package return them
// inside result.Result rather than raising them.
package failure
