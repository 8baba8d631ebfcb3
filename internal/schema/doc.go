// Package schema loads and validates the YAML declarations of entity kinds,
// enumerations and ID/IDREF relations that the code generator turns into
// the hpxml package's typed structs.
//
// A declaration file looks like:
//
//	version: "1"
//	package: hpxml
//	enums:
//	  - name: Location
//	    values:
//	      - {name: ConditionedSpace, value: conditioned space}
//	entities:
//	  - name: Wall
//	    attributes:
//	      - {name: id, type: id}
//	      - {name: exterior_adjacent_to, type: enum, enum: Location}
//	      - {name: area, type: float}
//	relations:
//	  - {from: Window, attr: wall_idref, to: Wall, on_delete: cascade, required: true}
//
// Omitted paths default to the camelized attribute name; identifiers default
// to SystemIdentifier. Every attribute receives a generated is-defaulted
// companion, so names ending in "_isdefaulted" are reserved.
package schema
