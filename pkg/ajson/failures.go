package ajson

import (
	"fmt"

	"github.com/ib-77/outcome/pkg/failure"
)

// GetFailure is a failure retrieving a value from a JSON tree. Every variant
// exposes the node the lookup ran against.
type GetFailure interface {
	failure.Failure
	JSON() Value
}

// NoPropertyFailure reports a missing object member.
type NoPropertyFailure struct {
	description string
	object      Object
	key         string
}

// NoProperty creates a failure for a key absent from an object.
func NoProperty(key string, o Object) *NoPropertyFailure {
	return &NoPropertyFailure{
		description: fmt.Sprintf("No such property %s on object", key),
		object:      o,
		key:         key,
	}
}

func (f *NoPropertyFailure) Description() string { return f.description }

func (f *NoPropertyFailure) Cause() failure.Failure { return nil }

func (f *NoPropertyFailure) Unwrap() error { return nil }

func (f *NoPropertyFailure) JSON() Value { return f.object }

// Key returns the key that was looked up.
func (f *NoPropertyFailure) Key() string { return f.key }

// NoElementFailure reports a missing array element.
type NoElementFailure struct {
	description string
	array       Array
	index       int
}

// NoElement creates a failure for an index out of an array's bounds.
func NoElement(index int, a Array) *NoElementFailure {
	return &NoElementFailure{
		description: fmt.Sprintf("No such element %d in array", index),
		array:       a,
		index:       index,
	}
}

func (f *NoElementFailure) Description() string { return f.description }

func (f *NoElementFailure) Cause() failure.Failure { return nil }

func (f *NoElementFailure) Unwrap() error { return nil }

func (f *NoElementFailure) JSON() Value { return f.array }

// Index returns the index that was looked up.
func (f *NoElementFailure) Index() int { return f.index }

// WrongTypeFailure reports a value of an unexpected JSON variant.
type WrongTypeFailure struct {
	description string
	value       Value
	expected    Kind
	actual      Kind
}

// WrongType creates a failure for a value whose variant does not match the
// expected one. The path names what was being read: an object key, an array
// index, or just "JSON".
func WrongType(path string, expected, actual Kind, v Value) *WrongTypeFailure {
	return &WrongTypeFailure{
		description: fmt.Sprintf("Expected %s to be a %s, but was a %s", path, expected, actual),
		value:       v,
		expected:    expected,
		actual:      actual,
	}
}

func (f *WrongTypeFailure) Description() string { return f.description }

func (f *WrongTypeFailure) Cause() failure.Failure { return nil }

func (f *WrongTypeFailure) Unwrap() error { return nil }

func (f *WrongTypeFailure) JSON() Value { return f.value }

// Expected returns the kind the caller asked for.
func (f *WrongTypeFailure) Expected() Kind { return f.expected }

// Actual returns the kind the value really had.
func (f *WrongTypeFailure) Actual() Kind { return f.actual }

// ParseFailure reports unparseable JSON text.
type ParseFailure struct {
	description string
	err         error
	input       string
	hasInput    bool
}

func parseFailure(err error, input string, hasInput bool) *ParseFailure {
	return &ParseFailure{
		description: err.Error(),
		err:         err,
		input:       input,
		hasInput:    hasInput,
	}
}

func (f *ParseFailure) Description() string { return f.description }

func (f *ParseFailure) Cause() failure.Failure { return nil }

func (f *ParseFailure) Unwrap() error { return f.err }

// Input returns the offending text and true, or "" and false when the source
// was a reader and the text was not retained.
func (f *ParseFailure) Input() (string, bool) {
	return f.input, f.hasInput
}
