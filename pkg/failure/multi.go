package failure

import "strings"

// Multi is a failure aggregating an ordered list of child failures. The order
// of the children is the order they were collected in, which keeps the
// synthesized description reproducible.
type Multi struct {
	description string
	causes      []Failure
}

// NewMulti creates a Multi from the given failures with the default
// description: each child's description on its own line, indented by one
// space, under a "Multiple failures:" heading.
func NewMulti(failures []Failure) *Multi {
	return NewMultiDescribed(DescribeAll(failures), failures)
}

// NewMultiDescribed creates a Multi with a caller-supplied description.
func NewMultiDescribed(description string, failures []Failure) *Multi {
	causes := make([]Failure, len(failures))
	copy(causes, failures)
	return &Multi{description: description, causes: causes}
}

// DescribeAll renders the default Multi description for a list of failures.
func DescribeAll(failures []Failure) string {
	var sb strings.Builder
	sb.WriteString("Multiple failures:")
	for _, f := range failures {
		sb.WriteString("\n ")
		sb.WriteString(f.Description())
	}
	return sb.String()
}

func (m *Multi) Description() string {
	return m.description
}

// Cause returns nil even though a Multi aggregates several causes.
// Perhaps this should return the first child? The children remain reachable
// through Causes.
func (m *Multi) Cause() Failure {
	return nil
}

func (m *Multi) Unwrap() error {
	return nil
}

// Causes returns the ordered child failures. The returned slice must not be
// modified.
func (m *Multi) Causes() []Failure {
	return m.causes
}
