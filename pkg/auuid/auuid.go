package auuid

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/ib-77/outcome/pkg/failure"
	"github.com/ib-77/outcome/pkg/result"
)

// ParseFailure is a failure parsing a UUID string.
type ParseFailure struct {
	description string
	err         error
	input       string
}

func (f *ParseFailure) Description() string { return f.description }

func (f *ParseFailure) Cause() failure.Failure { return nil }

func (f *ParseFailure) Unwrap() error { return f.err }

// Input returns the string that failed to parse.
func (f *ParseFailure) Input() string { return f.input }

// Maybe parses a string as a UUID, reporting failure as a false second
// return.
func Maybe(str string) (uuid.UUID, bool) {
	id, err := uuid.Parse(str)
	return id, err == nil
}

// Try parses a string as a UUID, with failures represented as ParseFailure
// values retaining the offending input and the parser's error.
func Try(str string) result.Result[uuid.UUID] {
	id, err := uuid.Parse(str)
	if err != nil {
		return result.Err[uuid.UUID](&ParseFailure{
			description: fmt.Sprintf("Failure parsing UUID String %q: %s", str, err),
			err:         err,
			input:       str,
		})
	}
	return result.Ok(id)
}
