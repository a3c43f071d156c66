package failure

// Collector accumulates failures in encounter order and finishes by building
// a Multi. It is an explicit fold: create one per reduction, Add each failure,
// Merge partial collectors in combination order, then Finish once.
type Collector struct {
	failures []Failure
	describe func([]Failure) string
}

// NewCollector creates a Collector that finishes with the default Multi
// description.
func NewCollector() *Collector {
	return &Collector{}
}

// NewCollectorDescribed creates a Collector that finishes with a description
// produced by the given function.
func NewCollectorDescribed(describe func([]Failure) string) *Collector {
	return &Collector{describe: describe}
}

// Add appends a failure to the collector.
func (c *Collector) Add(f Failure) {
	c.failures = append(c.failures, f)
}

// Merge appends all of other's failures to this collector, preserving their
// order. Merging partial collectors in a fixed order keeps the final Multi
// deterministic even when the partials were filled concurrently.
func (c *Collector) Merge(other *Collector) {
	c.failures = append(c.failures, other.failures...)
}

// Finish builds the Multi from the collected failures.
func (c *Collector) Finish() *Multi {
	if c.describe != nil {
		return NewMultiDescribed(c.describe(c.failures), c.failures)
	}
	return NewMulti(c.failures)
}

// Join combines failures into a single one: a lone failure is returned as-is,
// several become a Multi with the default description. Join of an empty list
// returns nil.
func Join(failures []Failure) Failure {
	switch len(failures) {
	case 0:
		return nil
	case 1:
		return failures[0]
	default:
		return NewMulti(failures)
	}
}
