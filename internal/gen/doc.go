// Package gen renders the entity layer of package hpxml from a schema
// declaration file.
//
// Generation uses text/template, then golang.org/x/tools/imports for
// formatting, so output is deterministic for a given schema.
//
// For every entity kind it emits:
//   - a Kind constant
//   - a struct with one field and one is-defaulted companion per attribute
//   - a constructor allocating owned sub-entities and collections
//   - the attribute table driving reflection and document mapping
//   - typed resolvers for declared references
//
// It also emits the relation table and one scoped string type per enum.
package gen
