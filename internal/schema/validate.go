package schema

import (
	"fmt"
	"strings"

	"hpxml-mapper/internal/diagnostic"
	"hpxml-mapper/internal/match"
	"hpxml-mapper/internal/xmlpath"
)

const maxSuggestions = 1

// Validate checks a schema declaration for internal consistency: unique
// names, known types and enumerations, well-formed paths, relations between
// declared kinds and attributes, and acyclic cascade deletion.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("schema_is_nil", "schema file is nil", "", "")
		return res
	}

	validateEnums(res, f)

	kinds := make([]string, 0, len(f.Entities))
	seen := map[string]struct{}{}

	for i := range f.Entities {
		e := &f.Entities[i]
		if e.Name == "" {
			res.AddError("missing_entity_name", fmt.Sprintf("entity #%d has no name", i+1), "", "")
			continue
		}

		if _, ok := seen[e.Name]; ok {
			res.AddError("duplicate_entity", fmt.Sprintf("duplicate entity %q", e.Name), e.Name, "")
			continue
		}

		if _, ok := f.Enum(e.Name); ok {
			res.AddError("entity_enum_clash", fmt.Sprintf("entity %q has the same name as an enum", e.Name), e.Name, "")
		}

		seen[e.Name] = struct{}{}
		kinds = append(kinds, e.Name)
	}

	for i := range f.Entities {
		validateEntity(res, f, &f.Entities[i], kinds)
	}

	validateRelations(res, f, kinds)

	if !res.HasErrors() {
		if _, err := f.CascadeOrder(); err != nil {
			res.AddError("cascade_cycle", err.Error(), "", "")
		}
	}

	usedEnums := map[string]struct{}{}

	for _, e := range f.Entities {
		for _, a := range e.Attributes {
			if a.Enum != "" {
				usedEnums[a.Enum] = struct{}{}
			}
		}
	}

	for _, en := range f.Enums {
		if _, ok := usedEnums[en.Name]; !ok {
			res.AddWarning("unused_enum", "enum is never referenced", "", en.Name)
		}
	}

	res.AddInfo("declared", fmt.Sprintf("%d entities, %d enums, %d relations",
		len(f.Entities), len(f.Enums), len(f.Relations)), "", "")

	return res
}

func validateEnums(res *diagnostic.Diagnostics, f *File) {
	seen := map[string]struct{}{}

	for _, en := range f.Enums {
		if _, ok := seen[en.Name]; ok {
			res.AddError("duplicate_enum", fmt.Sprintf("duplicate enum %q", en.Name), "", en.Name)
			continue
		}

		seen[en.Name] = struct{}{}

		if len(en.Values) == 0 {
			res.AddError("empty_enum", "enum declares no values", "", en.Name)
		}

		names := map[string]struct{}{}
		values := map[string]struct{}{}

		for _, v := range en.Values {
			if _, ok := names[v.Name]; ok {
				res.AddError("duplicate_enum_name", fmt.Sprintf("duplicate constant %q", v.Name), "", en.Name)
			}

			if _, ok := values[v.Value]; ok {
				res.AddError("duplicate_enum_value", fmt.Sprintf("duplicate value %q", v.Value), "", en.Name)
			}

			names[v.Name] = struct{}{}
			values[v.Value] = struct{}{}
		}
	}
}

func validateEntity(res *diagnostic.Diagnostics, f *File, e *Entity, kinds []string) {
	names := map[string]struct{}{}
	ids := 0

	for i := range e.Attributes {
		a := &e.Attributes[i]
		if _, ok := names[a.Name]; ok {
			res.AddError("duplicate_attribute", fmt.Sprintf("duplicate attribute %q", a.Name), e.Name, a.Name)
			continue
		}

		names[a.Name] = struct{}{}

		if a.Type == TypeID {
			ids++
		}

		validateAttribute(res, f, e, a)
	}

	if ids > 1 {
		res.AddError("multiple_ids", fmt.Sprintf("%d identifier attributes declared", ids), e.Name, "")
	}

	children := map[string]struct{}{}

	for _, c := range e.Children {
		if _, ok := children[c.Name]; ok {
			res.AddError("duplicate_child", fmt.Sprintf("duplicate child %q", c.Name), e.Name, c.Name)
		}

		children[c.Name] = struct{}{}

		if _, ok := f.Entity(c.Kind); !ok {
			res.AddError("unknown_child_kind", fmt.Sprintf("unknown entity kind %q", c.Kind), e.Name, c.Name)
			res.Suggest(match.Suggest(c.Kind, kinds, maxSuggestions)...)
		}

		if c.Kind == e.Name {
			res.AddError("recursive_child", "entity cannot contain itself", e.Name, c.Name)
		}

		validatePath(res, e.Name, c.Name, c.Path)
	}
}

func validateAttribute(res *diagnostic.Diagnostics, f *File, e *Entity, a *Attribute) {
	if a.Name == "" {
		res.AddError("missing_attribute_name", "attribute has no name", e.Name, "")
		return
	}

	if strings.HasSuffix(a.Name, FlagSuffix) {
		res.AddError("reserved_attribute_name",
			fmt.Sprintf("names ending in %q are reserved for generated flags", FlagSuffix), e.Name, a.Name)
	}

	if !a.Type.IsValid() {
		types := make([]string, 0, len(AttrTypes))
		for _, t := range AttrTypes {
			types = append(types, string(t))
		}

		res.AddError("unknown_type", fmt.Sprintf("unknown attribute type %q", a.Type), e.Name, a.Name)
		res.Suggest(match.Suggest(string(a.Type), types, maxSuggestions)...)

		return
	}

	// Choices are located by their group, checked with the enum below.
	switch {
	case a.Type == TypeChoice:
	case a.Path == "":
		res.AddError("missing_path", fmt.Sprintf("%s attribute needs a path", a.Type), e.Name, a.Name)
	default:
		validatePath(res, e.Name, a.Name, a.Path)
	}

	if a.Min != nil && a.Max != nil && *a.Min > *a.Max {
		res.AddError("invalid_range", fmt.Sprintf("min %g is greater than max %g", *a.Min, *a.Max), e.Name, a.Name)
	}

	if (a.Min != nil || a.Max != nil) && a.Type != TypeInt && a.Type != TypeFloat {
		res.AddError("range_on_non_number", "min/max apply to numeric attributes only", e.Name, a.Name)
	}

	switch a.Type {
	case TypeEnum, TypeChoice:
		validateEnumRef(res, f, e, a)
	default:
		if a.Enum != "" {
			res.AddWarning("enum_ignored", fmt.Sprintf("enum %q is ignored for %s attributes", a.Enum, a.Type), e.Name, a.Name)
		}
	}
}

func validateEnumRef(res *diagnostic.Diagnostics, f *File, e *Entity, a *Attribute) {
	en, ok := f.Enum(a.Enum)
	if !ok {
		enums := make([]string, 0, len(f.Enums))
		for _, x := range f.Enums {
			enums = append(enums, x.Name)
		}

		res.AddError("unknown_enum", fmt.Sprintf("unknown enum %q", a.Enum), e.Name, a.Name)
		res.Suggest(match.Suggest(a.Enum, enums, maxSuggestions)...)

		return
	}

	if a.Type != TypeChoice {
		return
	}

	if a.Group == "" {
		res.AddError("missing_group", "choice attribute needs a group element", e.Name, a.Name)
	} else {
		validatePath(res, e.Name, a.Name, a.Group)
	}

	if len(a.Choices) == 0 {
		res.AddError("missing_choices", "choice attribute declares no choices", e.Name, a.Name)
	}

	for _, c := range a.Choices {
		if _, ok := en.Value(c.Value); !ok {
			res.AddError("unknown_choice_value", fmt.Sprintf("%q is not a constant of %s", c.Value, en.Name), e.Name, a.Name)
		}

		validatePath(res, e.Name, a.Name, c.Path)

		if a.Group != "" && !strings.HasPrefix(c.Path, a.Group+"/") {
			res.AddError("choice_outside_group", fmt.Sprintf("choice path %q is not inside group %q", c.Path, a.Group), e.Name, a.Name)
		}
	}
}

func validatePath(res *diagnostic.Diagnostics, kind, name, path string) {
	p, err := xmlpath.ParsePath(path)
	if err != nil {
		res.AddError("invalid_path", fmt.Sprintf("invalid path: %v", err), kind, name)
		return
	}

	if p.Absolute {
		res.AddError("absolute_path", fmt.Sprintf("path %q must be relative", path), kind, name)
	}
}

func validateRelations(res *diagnostic.Diagnostics, f *File, kinds []string) {
	seen := map[string]struct{}{}

	for _, r := range f.Relations {
		key := r.From + "." + r.Attr
		if _, ok := seen[key]; ok {
			res.AddError("duplicate_relation", "relation declared twice", r.From, r.Attr)
			continue
		}

		seen[key] = struct{}{}

		if !r.OnDelete.IsValid() {
			res.AddError("unknown_delete_policy", fmt.Sprintf("unknown delete policy %q", r.OnDelete), r.From, r.Attr)
		}

		from, ok := f.Entity(r.From)
		if !ok {
			res.AddError("unknown_relation_source", fmt.Sprintf("unknown entity kind %q", r.From), r.From, r.Attr)
			res.Suggest(match.Suggest(r.From, kinds, maxSuggestions)...)

			continue
		}

		validateRelationAttr(res, from, r)

		if r.To.IsEmpty() {
			res.AddError("missing_relation_target", "relation has no target kind", r.From, r.Attr)
		}

		for _, to := range r.To {
			target, ok := f.Entity(to)
			if !ok {
				res.AddError("unknown_relation_target", fmt.Sprintf("unknown entity kind %q", to), r.From, r.Attr)
				res.Suggest(match.Suggest(to, kinds, maxSuggestions)...)

				continue
			}

			if !target.HasID() {
				res.AddError("target_without_id", fmt.Sprintf("%s declares no identifier", to), r.From, r.Attr)
			}
		}
	}

	// Every reference attribute needs an explicit delete policy.
	for _, e := range f.Entities {
		for _, a := range e.Attributes {
			if !a.Type.IsRef() {
				continue
			}

			if _, ok := seen[e.Name+"."+a.Name]; !ok {
				res.AddError("unclassified_reference", "reference attribute has no relation", e.Name, a.Name)
			}
		}
	}
}

func validateRelationAttr(res *diagnostic.Diagnostics, from *Entity, r Relation) {
	a, ok := from.Attribute(r.Attr)
	if !ok {
		names := make([]string, 0, len(from.Attributes))
		for _, x := range from.Attributes {
			names = append(names, x.Name)
		}

		res.AddError("unknown_relation_attr", fmt.Sprintf("unknown attribute %q", r.Attr), r.From, r.Attr)
		res.Suggest(match.Suggest(r.Attr, names, maxSuggestions)...)

		return
	}

	if !a.Type.IsRef() {
		res.AddError("relation_attr_not_ref", fmt.Sprintf("attribute type %s is not a reference", a.Type), r.From, r.Attr)
		return
	}

	if a.Type == TypeIDRefs && r.OnDelete == Cascade {
		res.AddError("cascade_on_list", "reference lists cannot cascade", r.From, r.Attr)
	}

	if a.Type == TypeIDRefs && r.Required {
		res.AddWarning("required_list", "required is ignored for reference lists", r.From, r.Attr)
	}
}
