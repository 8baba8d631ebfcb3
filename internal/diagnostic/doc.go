// Package diagnostic provides structured errors, warnings and notes for
// schema declarations and document loading.
//
// Key capabilities:
//   - Coded messages tied to an entity kind and identifier
//   - Source prefixes for callers ingesting several documents
//   - Closest-name suggestions for misspelled declarations
package diagnostic
