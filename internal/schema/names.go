package schema

import (
	"strings"

	"github.com/go-openapi/inflect"
)

// initialisms keeps well-known abbreviations upper-cased in Go names.
var initialisms = map[string]string{
	"id":     "ID",
	"idref":  "IDRef",
	"idrefs": "IDRefs",
	"hvac":   "HVAC",
	"dhw":    "DHW",
	"afue":   "AFUE",
	"seer":   "SEER",
	"eer":    "EER",
	"hspf":   "HSPF",
	"shgc":   "SHGC",
	"sla":    "SLA",
	"sfa":    "SFA",
	"mf":     "MF",
	"xml":    "XML",
	"cfa":    "CFA",
	"dse":    "DSE",
}

// GoName converts a snake_case attribute name to an exported Go identifier.
func GoName(name string) string {
	var b strings.Builder

	for _, tok := range strings.Split(name, "_") {
		if tok == "" {
			continue
		}

		if v, ok := initialisms[tok]; ok {
			b.WriteString(v)
			continue
		}

		b.WriteString(inflect.Capitalize(tok))
	}

	return b.String()
}

// ElementName converts a snake_case attribute name to the default element name.
func ElementName(name string) string {
	return inflect.Camelize(name)
}

// FlagField returns the Go field name of the companion flag of field.
func FlagField(field string) string {
	return field + "IsDefaulted"
}

// CollectionField returns the default field name of a sub-collection of kind.
func CollectionField(kind string) string {
	return inflect.Pluralize(kind)
}

// AccessorName returns the name of the typed resolver of a reference
// attribute: wall_idref -> Wall, attached_to_wall_idrefs -> AttachedToWalls.
func AccessorName(attr string, t AttrType) string {
	switch t {
	case TypeIDRef:
		return GoName(strings.TrimSuffix(attr, "_idref"))
	case TypeIDRefs:
		return inflect.Pluralize(GoName(strings.TrimSuffix(attr, "_idrefs")))
	default:
		return GoName(attr)
	}
}
