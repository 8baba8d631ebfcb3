package rules

import (
	"context"

	"github.com/beevik/etree"

	"hpxml-mapper/internal/xmlpath"
)

// identifierPaths locate the identifier reported with a failed assertion.
var identifierPaths = []string{"SystemIdentifier", "BuildingID"}

// Validate reads the document at path and evaluates rs against it.
func (rs *RuleSet) Validate(ctx context.Context, path string) (errs, warnings []string, err error) {
	doc, err := xmlpath.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}

	return rs.Evaluate(ctx, doc)
}

// Evaluate checks every rule against doc. Failed assertions of error rules
// are returned in errs, those of warn rules in warnings.
func (rs *RuleSet) Evaluate(ctx context.Context, doc *etree.Document) (errs, warnings []string, err error) {
	for _, r := range rs.Rules {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		for _, el := range xmlpath.Elements(&doc.Element, r.Context) {
			id := identifier(el)

			for _, a := range r.Asserts {
				if a.holds(len(xmlpath.Elements(el, a.Test))) {
					continue
				}

				if r.Role == RoleWarn {
					warnings = append(warnings, a.message(r.Context, id))
				} else {
					errs = append(errs, a.message(r.Context, id))
				}
			}
		}
	}

	return errs, warnings, nil
}

func identifier(el *etree.Element) string {
	for _, p := range identifierPaths {
		if id, ok := xmlpath.AttrValue(xmlpath.Element(el, p), "id"); ok {
			return id
		}
	}

	return ""
}
