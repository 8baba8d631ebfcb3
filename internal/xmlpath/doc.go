// Package xmlpath is a minimal path-query facade over an XML element tree.
//
// It wraps github.com/beevik/etree with the handful of primitives the
// document mapping layer needs: typed reads at a relative path, attribute
// access, on-demand creation of intermediate elements, and enumeration of
// repeated children.
//
// # Path Syntax
//
// Paths are relative to a context element and use "/" as separator:
//   - Simple child: "Area"
//   - Nested child: "Insulation/AssemblyEffectiveRValue"
//   - Predicate on a child's text: "AnnualHeatingEfficiency[Units='AFUE']/Value"
//   - Several predicates: "Attic[Vented='true'][CapeCod='false']"
//   - Absolute (document) paths start with "/": "/HPXML/Building"
//
// CreateElementsAsNeeded understands predicates: a missing element named
// "Layer[InstallationType='continuous - interior']" is created together with
// its InstallationType child so that the same path finds it afterwards.
//
// # Defaulted Values
//
// Values assigned by software rather than supplied by the user are marked
// with a dataSource="software" attribute on the element that holds them.
package xmlpath
