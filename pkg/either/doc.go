// Package either provides a generic two-variant union type. An Either[L, R]
// holds a value of one of two types, a little like an optional but with both
// alternatives carrying data.
//
// Highlights:
// - Left/Right/Of/OfSupplier: construct an Either
// - MapBoth/MapLeft/MapRight: transform one or both sides
// - FlatMapBoth/FlatMapLeft/FlatMapRight: variant-changing composition
// - Fold/Consume: collapse to a single value or run side effects
// - Verify/BubbleErrorsUp/VerifyList: validate values and aggregate the
//   right-side outcomes across a collection
//
// Transforms whose type parameters change are package-level functions;
// predicates, accessors and consumers are methods. All values are immutable:
// every transform produces a new Either.
package either
