package common

// IsEmpty reports whether s has no elements.
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// IsSingle reports whether s has exactly one element.
func IsSingle[S ~[]E, E any](s S) bool {
	return len(s) == 1
}

// First returns the first element of s, or false when s is empty.
func First[S ~[]E, E any](s S) (E, bool) {
	if len(s) == 0 {
		var zero E
		return zero, false
	}

	return s[0], true
}

// Dedup returns the elements of s in order, each kept at its first
// occurrence. The result never aliases s.
func Dedup[S ~[]E, E comparable](s S) S {
	seen := make(map[E]struct{}, len(s))
	result := make(S, 0, len(s))

	for _, v := range s {
		if _, ok := seen[v]; ok {
			continue
		}

		seen[v] = struct{}{}
		result = append(result, v)
	}

	return result
}
