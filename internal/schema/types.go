package schema

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"hpxml-mapper/internal/common"
)

// File is the root of a schema declaration file.
type File struct {
	Version   string     `yaml:"version"`
	Package   string     `yaml:"package,omitempty"`
	Enums     []Enum     `yaml:"enums,omitempty"`
	Entities  []Entity   `yaml:"entities"`
	Relations []Relation `yaml:"relations,omitempty"`
}

// Enum declares a scoped enumerated string type.
type Enum struct {
	Name   string      `yaml:"name"`
	Doc    string      `yaml:"doc,omitempty"`
	Values []EnumValue `yaml:"values"`
}

// EnumValue is one constant of an Enum. Name is the Go suffix, Value the
// document text.
type EnumValue struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

// Entity declares one entity kind.
type Entity struct {
	Name string `yaml:"name"`
	Doc  string `yaml:"doc,omitempty"`

	// CustomCheck marks kinds whose Check method is written by hand.
	CustomCheck bool `yaml:"custom_check,omitempty"`

	Attributes []Attribute `yaml:"attributes"`
	Children   []Child     `yaml:"children,omitempty"`
}

// Attribute declares one named attribute of an entity.
type Attribute struct {
	Name  string   `yaml:"name"`
	Field string   `yaml:"field,omitempty"`
	Type  AttrType `yaml:"type"`
	Path  string   `yaml:"path,omitempty"`

	// Enum names the enumeration of enum and choice attributes.
	Enum string `yaml:"enum,omitempty"`

	// Group is the element whose child disambiguates a choice.
	Group   string   `yaml:"group,omitempty"`
	Choices []Choice `yaml:"choices,omitempty"`

	// Min and Max bound numeric values; violations are reported by Check.
	Min *float64 `yaml:"min,omitempty"`
	Max *float64 `yaml:"max,omitempty"`
}

// Choice maps one enum constant to the child element shape that encodes it.
type Choice struct {
	Value string `yaml:"value"`
	Path  string `yaml:"path"`
}

// Child declares a composed sub-entity (Many=false) or sub-collection.
type Child struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"`
	Path string `yaml:"path"`
	Many bool   `yaml:"many,omitempty"`
}

// Relation declares an ID/IDREF association and its delete policy.
type Relation struct {
	From     string        `yaml:"from"`
	Attr     string        `yaml:"attr"`
	To       StringOrArray `yaml:"to"`
	OnDelete DeletePolicy  `yaml:"on_delete"`
	Required bool          `yaml:"required,omitempty"`
}

// AttrType is the declared semantic type of an attribute.
type AttrType string

const (
	TypeID     AttrType = "id"
	TypeIDRef  AttrType = "idref"
	TypeIDRefs AttrType = "idrefs"
	TypeString AttrType = "string"
	TypeInt    AttrType = "int"
	TypeFloat  AttrType = "float"
	TypeBool   AttrType = "bool"
	TypeEnum   AttrType = "enum"
	TypeChoice AttrType = "choice"
)

// AttrTypes lists every valid attribute type.
var AttrTypes = []AttrType{
	TypeID, TypeIDRef, TypeIDRefs,
	TypeString, TypeInt, TypeFloat, TypeBool,
	TypeEnum, TypeChoice,
}

// IsValid reports whether t is a known attribute type.
func (t AttrType) IsValid() bool {
	for _, v := range AttrTypes {
		if t == v {
			return true
		}
	}

	return false
}

// IsRef reports whether t holds identifier references.
func (t AttrType) IsRef() bool {
	return t == TypeIDRef || t == TypeIDRefs
}

// DeletePolicy is applied to referencing entities when the referenced
// entity is deleted.
type DeletePolicy string

const (
	// Cascade deletes the referencing entity.
	Cascade DeletePolicy = "cascade"
	// Nullify clears the reference (or drops it from a reference list).
	Nullify DeletePolicy = "nullify"
)

// IsValid reports whether p is a known delete policy.
func (p DeletePolicy) IsValid() bool {
	return p == Cascade || p == Nullify
}

// FlagSuffix is appended to an attribute name to form its companion flag.
const FlagSuffix = "_isdefaulted"

// StringOrArray accepts either a single string or a list of strings in YAML.
type StringOrArray []string

// UnmarshalYAML implements custom YAML unmarshaling for StringOrArray.
func (s *StringOrArray) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string
		if err := node.Decode(&str); err != nil {
			return err
		}

		if str != "" {
			*s = StringOrArray{str}
		} else {
			*s = StringOrArray{}
		}

		return nil

	case yaml.SequenceNode:
		var arr []string
		if err := node.Decode(&arr); err != nil {
			return err
		}

		*s = arr

		return nil

	default:
		return fmt.Errorf("expected string or array, got %v", node.Kind)
	}
}

// MarshalYAML outputs a single string if length is 1, otherwise an array.
func (s StringOrArray) MarshalYAML() (any, error) {
	if common.IsSingle(s) {
		return s[0], nil
	}

	return []string(s), nil
}

// Entity returns the declared entity named name.
func (f *File) Entity(name string) (*Entity, bool) {
	for i := range f.Entities {
		if f.Entities[i].Name == name {
			return &f.Entities[i], true
		}
	}

	return nil, false
}

// Enum returns the declared enumeration named name.
func (f *File) Enum(name string) (*Enum, bool) {
	for i := range f.Enums {
		if f.Enums[i].Name == name {
			return &f.Enums[i], true
		}
	}

	return nil, false
}

// RelationsFrom returns the relations declared on kind, in declaration order.
func (f *File) RelationsFrom(kind string) []Relation {
	var out []Relation

	for _, r := range f.Relations {
		if r.From == kind {
			out = append(out, r)
		}
	}

	return out
}

// Attribute returns the attribute named name.
func (e *Entity) Attribute(name string) (*Attribute, bool) {
	for i := range e.Attributes {
		if e.Attributes[i].Name == name {
			return &e.Attributes[i], true
		}
	}

	return nil, false
}

// HasID reports whether the entity declares an identifier.
func (e *Entity) HasID() bool {
	for _, a := range e.Attributes {
		if a.Type == TypeID {
			return true
		}
	}

	return false
}

// Value returns the constant of e named name.
func (e *Enum) Value(name string) (EnumValue, bool) {
	for _, v := range e.Values {
		if v.Name == name {
			return v, true
		}
	}

	return EnumValue{}, false
}

// IsEmpty returns true if the array is empty.
func (s StringOrArray) IsEmpty() bool {
	return common.IsEmpty(s)
}
