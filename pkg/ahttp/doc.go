// Package ahttp contains helpers for working with net/http responses and URL
// strings in Result/Either pipelines.
//
// Highlights:
// - ExpectStatus/ExpectOK: verify a response's status code, producing a
//   StatusFailure carrying the expected code, actual code and full response
// - TryParseURL: wrap net/url parsing, retaining the offending input
package ahttp
