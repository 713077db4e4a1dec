package mesh

// Linspace returns n evenly spaced values covering [start, stop],
// inclusive of both endpoints, so the result spans n-1 equal intervals.
//
// Edge cases:
//   - n <= 0 returns nil.
//   - n == 1 returns [start] alone.
//   - start may exceed stop; the sequence then descends.
//
// The final entry is pinned to stop exactly, so accumulated floating-point
// drift never leaks into the last abscissa.
func Linspace(start, stop float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{start}
	}

	step := (stop - start) / float64(n-1)
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = start + step*float64(i)
	}
	xs[n-1] = stop

	return xs
}
