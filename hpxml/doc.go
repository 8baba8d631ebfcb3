// Package hpxml maps HPXML building-description documents to a typed object
// graph and back.
//
// Entity structs, enumerations, attribute tables and the relation table are
// generated from schema.yaml into the zz_generated_*.go files. Hand-written
// code in this package provides the runtime they plug into:
//
//   - attribute reflection with is-defaulted companions (Get, Set, Fields),
//   - owned collections with policy-driven delete (Collection),
//   - on-demand ID/IDREF resolution (Resolve, ResolveAll),
//   - recursive validation (Document.Check),
//   - materialization and serialization through internal/xmlpath,
//   - building selection, identifier rewriting and document merging,
//   - surface aggregation (Building.CollapseSurfaces).
//
// A round trip through Materialize and Serialize is byte-stable: serializing
// a graph read from serialized output reproduces that output exactly.
package hpxml

//go:generate go run ../cmd/hpxml-mapper gen --schema schema.yaml --out .
