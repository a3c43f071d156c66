// Package result provides Result[E]: an either.Either whose alternate side is
// always a failure.Failure. It is the error-aware vocabulary the rest of the
// module speaks.
//
// Highlights:
// - Ok/Err/Of/OfSupplier/OfFailure: construct a Result
// - Map/Then: transform or compose, short-circuiting on the first failure
// - MapBoth/FlatMapBoth/Finally: handle both sides explicitly
// - Verify/BubbleErrorsUp/VerifyList/Collect: validate values and gather all
//   failures across a collection instead of stopping at the first
// - ToEither/FromEither: interop with the general union type
//
// Chains built from Then short-circuit on the first Err encountered; the
// aggregation helpers deliberately break that to report every failure at
// once.
package result
