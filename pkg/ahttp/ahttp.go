package ahttp

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/ib-77/outcome/pkg/either"
	"github.com/ib-77/outcome/pkg/failure"
	"github.com/ib-77/outcome/pkg/result"
)

// StatusFailure is a failure arising from an unexpected HTTP response status.
type StatusFailure struct {
	description string
	expected    int
	actual      int
	response    *http.Response
}

func (f *StatusFailure) Description() string { return f.description }

func (f *StatusFailure) Cause() failure.Failure { return nil }

func (f *StatusFailure) Unwrap() error { return nil }

// Expected returns the status code the caller expected.
func (f *StatusFailure) Expected() int { return f.expected }

// Actual returns the status code the response carried.
func (f *StatusFailure) Actual() int { return f.actual }

// Response returns the full response the verification ran against.
func (f *StatusFailure) Response() *http.Response { return f.response }

// ExpectStatus verifies that a response has the expected status code. If it
// does not, a right Either holding a StatusFailure is returned.
func ExpectStatus(resp *http.Response, expectedCode int) either.Either[*http.Response, *StatusFailure] {
	if resp.StatusCode == expectedCode {
		return either.Left[*http.Response, *StatusFailure](resp)
	}
	return either.Right[*http.Response, *StatusFailure](&StatusFailure{
		description: fmt.Sprintf("Expected status %d from HTTP response, got status %d.", expectedCode, resp.StatusCode),
		expected:    expectedCode,
		actual:      resp.StatusCode,
		response:    resp,
	})
}

// ExpectOK is ExpectStatus with 200 OK as the expected status.
func ExpectOK(resp *http.Response) either.Either[*http.Response, *StatusFailure] {
	return ExpectStatus(resp, http.StatusOK)
}

// ExpectStatusResult is ExpectStatus with the failure widened to
// failure.Failure, for feeding straight into a Result chain.
func ExpectStatusResult(resp *http.Response, expectedCode int) result.Result[*http.Response] {
	return result.FromEither(either.MapRight(ExpectStatus(resp, expectedCode),
		func(f *StatusFailure) failure.Failure { return f }))
}

// URLParseFailure is a failure parsing a URL string.
type URLParseFailure struct {
	description string
	err         error
	input       string
}

func (f *URLParseFailure) Description() string { return f.description }

func (f *URLParseFailure) Cause() failure.Failure { return nil }

func (f *URLParseFailure) Unwrap() error { return f.err }

// Input returns the string that failed to parse.
func (f *URLParseFailure) Input() string { return f.input }

// TryParseURL parses a string as a URL, with failures represented
// as URLParseFailure values retaining the offending input.
func TryParseURL(str string) result.Result[*url.URL] {
	u, err := url.Parse(str)
	if err != nil {
		return result.Err[*url.URL](&URLParseFailure{
			description: fmt.Sprintf("Failure parsing URL %q: %s", str, err),
			err:         err,
			input:       str,
		})
	}
	return result.Ok(u)
}
