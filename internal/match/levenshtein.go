package match

// Levenshtein returns the edit distance between a and b counted in runes:
// the fewest single-rune insertions, deletions and substitutions turning
// one into the other.
func Levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}

	// row[i] is the distance between ra[:i] and the prefix of rb seen so far.
	row := make([]int, len(ra)+1)
	for i := range row {
		row[i] = i
	}

	for j, cb := range rb {
		diag := row[0]
		row[0] = j + 1

		for i, ca := range ra {
			cost := 1
			if ca == cb {
				cost = 0
			}

			up := row[i+1]
			row[i+1] = min(up+1, row[i]+1, diag+cost)
			diag = up
		}
	}

	return row[len(ra)]
}

// LevenshteinNormalized scales the distance between a and b into a
// similarity in [0, 1], 1 meaning equal.
func LevenshteinNormalized(a, b string) float64 {
	longest := max(len([]rune(a)), len([]rune(b)))
	if longest == 0 {
		return 1
	}

	return 1 - float64(Levenshtein(a, b))/float64(longest)
}

// NormalizedLevenshteinScore compares a and b after NormalizeIdent.
func NormalizedLevenshteinScore(a, b string) float64 {
	return LevenshteinNormalized(NormalizeIdent(a), NormalizeIdent(b))
}

// NormalizedLevenshteinScoreWithSuffixStrip compares a and b after
// NormalizeIdentWithSuffixStrip, so wall_idref scores against WallIDRef
// and against wall alike.
func NormalizedLevenshteinScoreWithSuffixStrip(a, b string) float64 {
	return LevenshteinNormalized(NormalizeIdentWithSuffixStrip(a), NormalizeIdentWithSuffixStrip(b))
}
