package services

// zeroFilledCounts builds a count map containing every known key with a zero
// count, so dashboard widgets never need a default-fill.
func zeroFilledCounts[S ~string](known []S) map[string]int {
	counts := make(map[string]int, len(known))
	for _, k := range known {
		counts[string(k)] = 0
	}
	return counts
}
