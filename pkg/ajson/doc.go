// Package ajson provides an ergonomic JSON tree whose lookups speak
// result.Result instead of panicking or returning bare nils.
//
// Highlights:
// - Value: a closed set of variants (String/Number/Boolean/Null/Array/Object)
// - Parse/ParseReader: text to tree, failures as ParseFailure values
// - Render: tree to text, preserving object key order
// - Object.TryGet/Array.TryGet and the generic GetProperty/GetElement/As:
//   lookups whose failures name the missing key, the missing index, or the
//   expected and actual variant
// - FromAny/ToAny: interop with encoding/json-shaped any trees
// - Equal: structural comparison
//
// Objects store members as an ordered slice, so a parse/render round trip
// reproduces the input's key order.
package ajson
