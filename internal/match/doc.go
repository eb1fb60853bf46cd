// Package match finds the declared name closest to a misspelled one, for
// "did you mean" hints in declaration diagnostics.
//
// Names are compared after normalization (case folded, separators dropped)
// with a Levenshtein similarity score.
package match
