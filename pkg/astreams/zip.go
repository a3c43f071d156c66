package astreams

// ZipForEach calls fn with each pair of elements at matching indices. The
// shorter slice bounds the iteration.
func ZipForEach[A, B any](a []A, b []B, fn func(A, B)) {
	for i := 0; i < len(a) && i < len(b); i++ {
		fn(a[i], b[i])
	}
}

// ZipReduce folds fn over each pair of elements at matching indices, starting
// from initial. The shorter slice bounds the iteration.
func ZipReduce[A, B, C any](a []A, b []B, initial C, fn func(A, B, C) C) C {
	acc := initial
	for i := 0; i < len(a) && i < len(b); i++ {
		acc = fn(a[i], b[i], acc)
	}
	return acc
}
