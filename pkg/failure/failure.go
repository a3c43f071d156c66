package failure

// Failure is a structured, chainable error value. Unlike a plain error it
// separates the human-readable description, the failure that caused it, and
// any captured error from an external collaborator.
type Failure interface {
	// Description returns the human-readable description of this failure.
	Description() string
	// Cause returns the failure which caused this one, or nil.
	Cause() Failure
	// Unwrap returns an error associated with this failure, or nil. This is
	// where an underlying library error is retained for diagnostics.
	Unwrap() error
}

// Generic is a free-form failure with an optional cause and captured error.
type Generic struct {
	description string
	cause       Failure
	err         error
}

// New creates a failure with the given description.
func New(description string) *Generic {
	return &Generic{description: description}
}

// WithCause creates a failure caused by another failure.
func WithCause(description string, cause Failure) *Generic {
	return &Generic{description: description, cause: cause}
}

// WithError creates a failure that retains a captured error.
func WithError(description string, err error) *Generic {
	return &Generic{description: description, err: err}
}

// Wrap creates a failure with both a cause and a captured error.
func Wrap(description string, cause Failure, err error) *Generic {
	return &Generic{description: description, cause: cause, err: err}
}

func (g *Generic) Description() string {
	return g.description
}

func (g *Generic) Cause() Failure {
	return g.cause
}

func (g *Generic) Unwrap() error {
	return g.err
}
