package match

import (
	"sort"
)

// Candidate is a declared name scored against an unknown one.
type Candidate struct {
	Name string

	// Score is the best normalized Levenshtein similarity (0-1).
	Score float64

	NormalizedName   string
	NormalizedTarget string
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// RankNames scores every declared name against target.
// Returns candidates sorted by score (descending).
func RankNames(target string, names []string) CandidateList {
	candidates := make(CandidateList, 0, len(names))

	targetNorm := NormalizeIdent(target)

	for _, name := range names {
		// Use max of regular and suffix-stripped similarity
		score := max(
			NormalizedLevenshteinScore(name, target),
			NormalizedLevenshteinScoreWithSuffixStrip(name, target),
		)

		candidates = append(candidates, Candidate{
			Name:             name,
			Score:            score,
			NormalizedName:   NormalizeIdent(name),
			NormalizedTarget: targetNorm,
		})
	}

	sort.Sort(candidates)

	return candidates
}

// Suggest returns up to limit declared names whose score against target
// reaches DefaultMinScore, best first.
func Suggest(target string, names []string, limit int) []string {
	var out []string

	for _, c := range RankNames(target, names).AboveThreshold(DefaultMinScore).Top(limit) {
		out = append(out, c.Name)
	}

	return out
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
// Sorts by score descending, then by name for determinism.
func (c CandidateList) Less(i, j int) bool {
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}

	return c[i].Name < c[j].Name
}

// Top returns the top n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n < 0 || n >= len(c) {
		return c
	}

	return c[:n]
}

// AboveThreshold returns candidates with score at or above the threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	var result CandidateList

	for _, cand := range c {
		if cand.Score >= threshold {
			result = append(result, cand)
		}
	}

	return result
}

// DefaultMinScore is the minimum score for a name to be suggested.
const DefaultMinScore = 0.6
