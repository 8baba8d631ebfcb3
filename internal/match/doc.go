// Package match provides name normalization, Levenshtein distance calculation
// and candidate ranking used to suggest the intended name when an unknown
// attribute, entity kind or enumeration is referenced.
//
// Key functions:
//   - NormalizeIdent: normalizes identifiers for fuzzy matching
//   - Levenshtein: computes edit distance between strings
//   - RankNames: ranks declared names against an unknown one
//   - Suggest: returns the close-enough declared names
package match
