package match

// Levenshtein returns the number of single-byte insertions, deletions or
// substitutions that turn a into b.
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	if len(a) > len(b) {
		a, b = b, a
	}

	if len(a) == 0 {
		return len(b)
	}

	// two rows of the edit matrix, sized by the shorter string
	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(b); j++ {
		curr[0] = j

		for i := 1; i <= len(a); i++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}

			curr[i] = min(prev[i]+1, curr[i-1]+1, prev[i-1]+cost)
		}

		prev, curr = curr, prev
	}

	return prev[len(a)]
}

// Similarity scores a against b between 0 (nothing in common) and 1
// (identical) after normalizing both.
func Similarity(a, b string) float64 {
	a, b = Normalize(a), Normalize(b)
	if a == "" && b == "" {
		return 1
	}

	return 1 - float64(Levenshtein(a, b))/float64(max(len(a), len(b)))
}
