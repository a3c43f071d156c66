// Package astreams holds small slice utilities used alongside the union
// types: pairwise iteration and reduction over two slices, bounded by the
// shorter one.
package astreams
