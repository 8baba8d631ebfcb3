package hpxml

import (
	"fmt"
	"slices"
	"strings"

	"github.com/beevik/etree"

	"hpxml-mapper/internal/xmlpath"
)

const (
	idAttr    = "id"
	idrefAttr = "idref"
)

//go:generate go tool stringer -type=AttrType -linecomment -output=attrtype_string.go

// AttrType is the semantic type of an attribute.
type AttrType int

const (
	AttrID     AttrType = iota // id
	AttrRef                    // idref
	AttrRefs                   // idrefs
	AttrString                 // string
	AttrInt                    // int
	AttrFloat                  // float
	AttrBool                   // bool
	AttrEnum                   // enum
	AttrChoice                 // choice
)

// Attr describes one declared attribute of an entity kind: its name, the
// relative document path of its value and how the value is stored.
type Attr struct {
	Name string
	Path string
	Type AttrType

	lo, hi *float64
	codec  codec
}

// codec moves one attribute between an entity field and a document node.
type codec interface {
	get(e Entity) any
	set(e Entity, v any) error
	defaulted(e Entity) *bool
	decode(e Entity, el *etree.Element, path string) error
	encode(e Entity, el *etree.Element, path string) error
}

// validator is implemented by codecs whose stored value can be invalid.
type validator interface {
	invalid(e Entity) (string, bool)
}

func (a Attr) atLeast(lo float64) Attr {
	a.lo = &lo
	return a
}

func (a Attr) atMost(hi float64) Attr {
	a.hi = &hi
	return a
}

func (a Attr) between(lo, hi float64) Attr {
	return a.atLeast(lo).atMost(hi)
}

// outOfRange returns a message when the numeric value violates the bounds.
func (a Attr) outOfRange(e Entity) (string, bool) {
	if a.lo == nil && a.hi == nil {
		return "", false
	}

	var v float64

	switch x := a.codec.get(e).(type) {
	case float64:
		v = x
	case int:
		v = float64(x)
	default:
		return "", false
	}

	switch {
	case a.lo != nil && a.hi != nil && (v < *a.lo || v > *a.hi):
		return fmt.Sprintf("%s must be between %g and %g, got %g", a.Name, *a.lo, *a.hi, v), true
	case a.lo != nil && v < *a.lo:
		return fmt.Sprintf("%s must be at least %g, got %g", a.Name, *a.lo, v), true
	case a.hi != nil && v > *a.hi:
		return fmt.Sprintf("%s must be at most %g, got %g", a.Name, *a.hi, v), true
	}

	return "", false
}

// enumValue is implemented by every generated enumeration.
type enumValue interface {
	~string
	IsValid() bool
}

// choice maps one enumeration constant to the element shape encoding it.
type choice[T enumValue] struct {
	value T
	path  string
}

func identAttr[E Entity](name, path string, field func(E) (*string, *bool)) Attr {
	return Attr{Name: name, Path: path, Type: AttrID, codec: idCodec[E]{field: field, key: idAttr}}
}

func refAttr[E Entity](name, path string, field func(E) (*string, *bool)) Attr {
	return Attr{Name: name, Path: path, Type: AttrRef, codec: idCodec[E]{field: field, key: idrefAttr}}
}

func refsAttr[E Entity](name, path string, field func(E) (*[]string, *bool)) Attr {
	return Attr{Name: name, Path: path, Type: AttrRefs, codec: refsCodec[E]{field: field}}
}

func textAttr[E Entity](name, path string, field func(E) (**string, *bool)) Attr {
	return Attr{Name: name, Path: path, Type: AttrString, codec: scalarCodec[E, string]{field: field}}
}

func intAttr[E Entity](name, path string, field func(E) (**int, *bool)) Attr {
	return Attr{Name: name, Path: path, Type: AttrInt, codec: scalarCodec[E, int]{field: field}}
}

func floatAttr[E Entity](name, path string, field func(E) (**float64, *bool)) Attr {
	return Attr{Name: name, Path: path, Type: AttrFloat, codec: scalarCodec[E, float64]{field: field}}
}

func boolAttr[E Entity](name, path string, field func(E) (**bool, *bool)) Attr {
	return Attr{Name: name, Path: path, Type: AttrBool, codec: scalarCodec[E, bool]{field: field}}
}

func enumAttr[E Entity, T enumValue](name, path string, field func(E) (**T, *bool)) Attr {
	return Attr{Name: name, Path: path, Type: AttrEnum, codec: enumCodec[E, T]{field: field}}
}

// choiceAttr declares an enumerated attribute encoded by which of several
// mutually exclusive child elements of group is present.
func choiceAttr[E Entity, T enumValue](name, group string, field func(E) (**T, *bool), choices ...choice[T]) Attr {
	return Attr{Name: name, Path: group, Type: AttrChoice, codec: choiceCodec[E, T]{field: field, choices: choices}}
}

// scalarCodec stores optional scalar values as pointers.
type scalarCodec[E Entity, T xmlpath.Scalar] struct {
	field func(E) (**T, *bool)
}

func (c scalarCodec[E, T]) get(e Entity) any {
	p, _ := c.field(e.(E))
	if *p == nil {
		return nil
	}

	return **p
}

func (c scalarCodec[E, T]) set(e Entity, v any) error {
	p, _ := c.field(e.(E))

	switch x := v.(type) {
	case nil:
		*p = nil
		return nil
	case *T:
		if x == nil {
			*p = nil
			return nil
		}

		val := *x
		*p = &val

		return nil
	}

	val, err := convert[T](v)
	if err != nil {
		return err
	}

	*p = &val

	return nil
}

func (c scalarCodec[E, T]) defaulted(e Entity) *bool {
	_, f := c.field(e.(E))
	return f
}

func (c scalarCodec[E, T]) decode(e Entity, el *etree.Element, path string) error {
	p, f := c.field(e.(E))
	*p, *f = nil, false

	child := xmlpath.Element(el, path)
	if child == nil {
		return nil
	}

	val, err := xmlpath.ParseScalar[T](strings.TrimSpace(child.Text()))
	if err != nil {
		return err
	}

	*p, *f = &val, xmlpath.IsDefaulted(child)

	return nil
}

func (c scalarCodec[E, T]) encode(e Entity, el *etree.Element, path string) error {
	p, f := c.field(e.(E))
	if *p == nil {
		return nil
	}

	leaf, err := xmlpath.AppendElement(el, path)
	if err != nil {
		return err
	}

	leaf.SetText(xmlpath.FormatScalar(**p))

	if *f {
		xmlpath.MarkDefaulted(leaf)
	}

	return nil
}

// convert accepts a value of type T, or an int where a float is expected.
func convert[T xmlpath.Scalar](v any) (T, error) {
	var out T

	if x, ok := v.(T); ok {
		return x, nil
	}

	if f, ok := any(&out).(*float64); ok {
		if n, ok := v.(int); ok {
			*f = float64(n)
			return out, nil
		}
	}

	return out, fmt.Errorf("%w: cannot use %T as %T", ErrInvalidValue, v, out)
}

// enumCodec stores enumerated values as pointers to their scoped type.
type enumCodec[E Entity, T enumValue] struct {
	field func(E) (**T, *bool)
}

func (c enumCodec[E, T]) get(e Entity) any {
	p, _ := c.field(e.(E))
	if *p == nil {
		return nil
	}

	return **p
}

func (c enumCodec[E, T]) set(e Entity, v any) error {
	p, _ := c.field(e.(E))
	return setEnum(p, v)
}

func setEnum[T enumValue](p **T, v any) error {
	var val T

	switch x := v.(type) {
	case nil:
		*p = nil
		return nil
	case *T:
		if x == nil {
			*p = nil
			return nil
		}

		val = *x
	case T:
		val = x
	case string:
		val = T(x)
	default:
		return fmt.Errorf("%w: cannot use %T as %T", ErrInvalidValue, v, val)
	}

	*p = &val

	return nil
}

func (c enumCodec[E, T]) defaulted(e Entity) *bool {
	_, f := c.field(e.(E))
	return f
}

func (c enumCodec[E, T]) decode(e Entity, el *etree.Element, path string) error {
	p, f := c.field(e.(E))
	*p, *f = nil, false

	child := xmlpath.Element(el, path)
	if child == nil {
		return nil
	}

	val := T(strings.TrimSpace(child.Text()))
	*p, *f = &val, xmlpath.IsDefaulted(child)

	return nil
}

func (c enumCodec[E, T]) encode(e Entity, el *etree.Element, path string) error {
	p, f := c.field(e.(E))
	if *p == nil {
		return nil
	}

	leaf, err := xmlpath.AppendElement(el, path)
	if err != nil {
		return err
	}

	leaf.SetText(string(**p))

	if *f {
		xmlpath.MarkDefaulted(leaf)
	}

	return nil
}

func (c enumCodec[E, T]) invalid(e Entity) (string, bool) {
	p, _ := c.field(e.(E))
	if *p == nil || (**p).IsValid() {
		return "", false
	}

	return string(**p), true
}

// choiceCodec reads the first choice whose element shape is present.
type choiceCodec[E Entity, T enumValue] struct {
	field   func(E) (**T, *bool)
	choices []choice[T]
}

func (c choiceCodec[E, T]) get(e Entity) any {
	p, _ := c.field(e.(E))
	if *p == nil {
		return nil
	}

	return **p
}

func (c choiceCodec[E, T]) set(e Entity, v any) error {
	p, _ := c.field(e.(E))
	return setEnum(p, v)
}

func (c choiceCodec[E, T]) defaulted(e Entity) *bool {
	_, f := c.field(e.(E))
	return f
}

func (c choiceCodec[E, T]) decode(e Entity, el *etree.Element, group string) error {
	p, f := c.field(e.(E))
	*p, *f = nil, false

	for _, ch := range c.choices {
		if child := xmlpath.Element(el, ch.path); child != nil {
			val := ch.value
			*p, *f = &val, xmlpath.IsDefaulted(child)

			return nil
		}
	}

	if name := xmlpath.ChildName(el, group); name != "" {
		return fmt.Errorf("%w: unsupported %s %q", ErrInvalidValue, group, name)
	}

	return nil
}

func (c choiceCodec[E, T]) encode(e Entity, el *etree.Element, _ string) error {
	p, f := c.field(e.(E))
	if *p == nil {
		return nil
	}

	i := slices.IndexFunc(c.choices, func(ch choice[T]) bool { return ch.value == **p })
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrInvalidValue, string(**p))
	}

	leaf, err := xmlpath.CreateElementsAsNeeded(el, c.choices[i].path)
	if err != nil {
		return err
	}

	if *f {
		xmlpath.MarkDefaulted(leaf)
	}

	return nil
}

func (c choiceCodec[E, T]) invalid(e Entity) (string, bool) {
	p, _ := c.field(e.(E))
	if *p == nil {
		return "", false
	}

	for _, ch := range c.choices {
		if ch.value == **p {
			return "", false
		}
	}

	return string(**p), true
}

// idCodec stores identifiers and single references, which live in an XML
// attribute (key) of the element at the path. Empty means absent.
type idCodec[E Entity] struct {
	field func(E) (*string, *bool)
	key   string
}

func (c idCodec[E]) get(e Entity) any {
	p, _ := c.field(e.(E))
	if *p == "" {
		return nil
	}

	return *p
}

func (c idCodec[E]) set(e Entity, v any) error {
	p, _ := c.field(e.(E))

	switch x := v.(type) {
	case nil:
		*p = ""
	case string:
		*p = x
	default:
		return fmt.Errorf("%w: cannot use %T as identifier", ErrInvalidValue, v)
	}

	return nil
}

func (c idCodec[E]) defaulted(e Entity) *bool {
	_, f := c.field(e.(E))
	return f
}

func (c idCodec[E]) decode(e Entity, el *etree.Element, path string) error {
	p, f := c.field(e.(E))
	*p, *f = "", false

	child := xmlpath.Element(el, path)
	if child == nil {
		return nil
	}

	*p, _ = xmlpath.AttrValue(child, c.key)
	*f = xmlpath.IsDefaulted(child)

	return nil
}

func (c idCodec[E]) encode(e Entity, el *etree.Element, path string) error {
	p, f := c.field(e.(E))
	if *p == "" {
		return nil
	}

	leaf, err := xmlpath.AppendElement(el, path)
	if err != nil {
		return err
	}

	xmlpath.AddAttr(leaf, c.key, *p)

	if *f {
		xmlpath.MarkDefaulted(leaf)
	}

	return nil
}

// refsCodec stores a list of references, one element per reference.
type refsCodec[E Entity] struct {
	field func(E) (*[]string, *bool)
}

func (c refsCodec[E]) get(e Entity) any {
	p, _ := c.field(e.(E))
	if len(*p) == 0 {
		return nil
	}

	return slices.Clone(*p)
}

func (c refsCodec[E]) set(e Entity, v any) error {
	p, _ := c.field(e.(E))

	switch x := v.(type) {
	case nil:
		*p = nil
	case []string:
		*p = slices.Clone(x)
	default:
		return fmt.Errorf("%w: cannot use %T as identifier list", ErrInvalidValue, v)
	}

	return nil
}

func (c refsCodec[E]) defaulted(e Entity) *bool {
	_, f := c.field(e.(E))
	return f
}

func (c refsCodec[E]) decode(e Entity, el *etree.Element, path string) error {
	p, f := c.field(e.(E))
	*p, *f = nil, false

	for _, child := range xmlpath.Elements(el, path) {
		if ref, ok := xmlpath.AttrValue(child, idrefAttr); ok {
			*p = append(*p, ref)
			*f = *f || xmlpath.IsDefaulted(child)
		}
	}

	return nil
}

func (c refsCodec[E]) encode(e Entity, el *etree.Element, path string) error {
	p, f := c.field(e.(E))

	for _, ref := range *p {
		leaf, err := xmlpath.AppendElement(el, path)
		if err != nil {
			return err
		}

		xmlpath.AddAttr(leaf, idrefAttr, ref)

		if *f {
			xmlpath.MarkDefaulted(leaf)
		}
	}

	return nil
}
