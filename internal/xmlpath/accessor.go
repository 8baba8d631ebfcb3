package xmlpath

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/beevik/etree"
)

// DataSourceAttr and DataSourceSoftware mark a value as software-assigned.
const (
	DataSourceAttr     = "dataSource"
	DataSourceSoftware = "software"
)

// ExtensionElement is the element that holds vendor extensions.
const ExtensionElement = "extension"

// Scalar is the set of value types that can be read from and written to element text.
type Scalar interface {
	string | int | float64 | bool
}

var (
	compiledMu sync.Mutex
	compiled   = map[string]etree.Path{}
)

// compile validates the path against our grammar and compiles it for etree.
// Compiled paths are cached; the set of distinct paths is small and static.
func compile(path string) (etree.Path, error) {
	compiledMu.Lock()
	defer compiledMu.Unlock()

	if p, ok := compiled[path]; ok {
		return p, nil
	}

	parsed, err := ParsePath(path)
	if err != nil {
		return etree.Path{}, err
	}

	p, err := etree.CompilePath(parsed.String())
	if err != nil {
		return etree.Path{}, fmt.Errorf("compiling path %q: %w", path, err)
	}

	compiled[path] = p

	return p, nil
}

func mustCompile(path string) etree.Path {
	p, err := compile(path)
	if err != nil {
		panic(err)
	}

	return p
}

// Element returns the first element at path beneath el, or nil.
// An empty path returns el itself. It panics if path is malformed.
func Element(el *etree.Element, path string) *etree.Element {
	if el == nil {
		return nil
	}

	if path == "" {
		return el
	}

	return el.FindElementPath(mustCompile(path))
}

// Elements returns every element at path beneath el, in document order.
func Elements(el *etree.Element, path string) []*etree.Element {
	if el == nil {
		return nil
	}

	return el.FindElementsPath(mustCompile(path))
}

// Text returns the trimmed text of the first element at path.
func Text(el *etree.Element, path string) (string, bool) {
	child := Element(el, path)
	if child == nil {
		return "", false
	}

	return strings.TrimSpace(child.Text()), true
}

// Texts returns the trimmed text of every element at path.
func Texts(el *etree.Element, path string) []string {
	children := Elements(el, path)
	out := make([]string, 0, len(children))

	for _, c := range children {
		out = append(out, strings.TrimSpace(c.Text()))
	}

	return out
}

// Value reads the element text at path and parses it as T.
// The boolean reports whether the element exists.
func Value[T Scalar](el *etree.Element, path string) (T, bool, error) {
	var zero T

	text, ok := Text(el, path)
	if !ok {
		return zero, false, nil
	}

	v, err := ParseScalar[T](text)
	if err != nil {
		return zero, true, fmt.Errorf("%s: %w", path, err)
	}

	return v, true, nil
}

// Values reads and parses the text of every element at path.
func Values[T Scalar](el *etree.Element, path string) ([]T, error) {
	texts := Texts(el, path)
	out := make([]T, 0, len(texts))

	for _, text := range texts {
		v, err := ParseScalar[T](text)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}

		out = append(out, v)
	}

	return out, nil
}

// ParseScalar parses element text as T.
func ParseScalar[T Scalar](text string) (T, error) {
	var out T

	switch p := any(&out).(type) {
	case *string:
		*p = text
	case *int:
		n, err := strconv.Atoi(text)
		if err != nil {
			return out, fmt.Errorf("invalid integer %q", text)
		}

		*p = n
	case *float64:
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return out, fmt.Errorf("invalid number %q", text)
		}

		*p = f
	case *bool:
		switch text {
		case "true", "1":
			*p = true
		case "false", "0":
			*p = false
		default:
			return out, fmt.Errorf("invalid boolean %q", text)
		}
	}

	return out, nil
}

// FormatScalar renders v as element text.
func FormatScalar[T Scalar](v T) string {
	switch x := any(v).(type) {
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	default:
		return fmt.Sprint(v)
	}
}

// AttrValue returns the value of the attribute key on el.
func AttrValue(el *etree.Element, key string) (string, bool) {
	if el == nil {
		return "", false
	}

	a := el.SelectAttr(key)
	if a == nil {
		return "", false
	}

	return a.Value, true
}

// AddAttr sets the attribute key on el, replacing any previous value.
func AddAttr(el *etree.Element, key, value string) {
	el.CreateAttr(key, value)
}

// ChildName returns the tag of the first child element of the element at path.
// It disambiguates groups of mutually exclusive child elements.
func ChildName(el *etree.Element, path string) string {
	target := Element(el, path)
	if target == nil {
		return ""
	}

	children := target.ChildElements()
	if len(children) == 0 {
		return ""
	}

	return children[0].Tag
}

// IsDefaulted reports whether el carries the software data source marker.
func IsDefaulted(el *etree.Element) bool {
	v, _ := AttrValue(el, DataSourceAttr)
	return v == DataSourceSoftware
}

// MarkDefaulted adds the software data source marker to el.
func MarkDefaulted(el *etree.Element) {
	AddAttr(el, DataSourceAttr, DataSourceSoftware)
}

// AddElement appends a child element named name to parent.
// Empty values produce an empty element.
func AddElement(parent *etree.Element, name, value string, defaulted bool) *etree.Element {
	child := parent.CreateElement(name)
	if value != "" {
		child.SetText(value)
	}

	if defaulted {
		MarkDefaulted(child)
	}

	return child
}

// AddExtension appends a child element beneath parent's extension element,
// creating the extension element if needed.
func AddExtension(parent *etree.Element, name, value string, defaulted bool) *etree.Element {
	ext := findOrCreate(parent, Segment{Name: ExtensionElement})
	return AddElement(ext, name, value, defaulted)
}

// CreateElementsAsNeeded walks path beneath el, creating each missing element,
// and returns the element at the end of the path.
// Predicates are satisfied by creating the required child elements.
func CreateElementsAsNeeded(el *etree.Element, path string) (*etree.Element, error) {
	p, err := ParsePath(path)
	if err != nil {
		return nil, err
	}

	if err := checkCreatable(p); err != nil {
		return nil, err
	}

	cur := el
	for _, seg := range p.Segments {
		cur = findOrCreate(cur, seg)
	}

	return cur, nil
}

// AppendElement is like CreateElementsAsNeeded but always creates a new
// element for the last segment. It is used for repeated elements.
func AppendElement(el *etree.Element, path string) (*etree.Element, error) {
	p, err := ParsePath(path)
	if err != nil {
		return nil, err
	}

	if err := checkCreatable(p); err != nil {
		return nil, err
	}

	dir, last := p.Split()

	cur := el
	for _, seg := range dir.Segments {
		cur = findOrCreate(cur, seg)
	}

	return create(cur, last), nil
}

func checkCreatable(p Path) error {
	if p.Absolute {
		return errors.New("cannot create elements along an absolute path")
	}

	for _, seg := range p.Segments {
		if seg.Name == "*" {
			return fmt.Errorf("cannot create elements along wildcard path %q", p)
		}
	}

	return nil
}

func findOrCreate(parent *etree.Element, seg Segment) *etree.Element {
	if child := findChild(parent, seg); child != nil {
		return child
	}

	return create(parent, seg)
}

func create(parent *etree.Element, seg Segment) *etree.Element {
	child := parent.CreateElement(seg.Name)
	for _, pr := range seg.Predicates {
		child.CreateElement(pr.Child).SetText(pr.Value)
	}

	return child
}

func findChild(parent *etree.Element, seg Segment) *etree.Element {
	for _, child := range parent.ChildElements() {
		if child.Tag != seg.Name {
			continue
		}

		if matches(child, seg.Predicates) {
			return child
		}
	}

	return nil
}

func matches(el *etree.Element, preds []Predicate) bool {
	for _, pr := range preds {
		c := el.SelectElement(pr.Child)
		if c == nil || strings.TrimSpace(c.Text()) != pr.Value {
			return false
		}
	}

	return true
}
