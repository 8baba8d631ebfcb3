package hpxml

import (
	"fmt"
	"slices"
	"sort"
	"strings"
	"sync"

	"hpxml-mapper/internal/match"
)

// FlagSuffix forms the reflective name of an is-defaulted companion.
const FlagSuffix = "_isdefaulted"

// Kind names an entity type.
type Kind string

// Entity is implemented by every generated entity struct.
type Entity interface {
	Kind() Kind

	attrs() []Attr
	children() []part
	base() *element
}

// element is embedded in every entity.
type element struct {
	// bldg is the building the entity belongs to. It is a handle used for
	// sibling lookups, not ownership.
	bldg  *Building
	props Props
}

func (e *element) base() *element { return e }

// Owner returns the building the entity belongs to, or nil when detached.
func (e *element) Owner() *Building { return e.bldg }

// Props returns the entity's runtime annotations.
func (e *element) Props() Props {
	if e.props == nil {
		e.props = Props{}
	}

	return e.props
}

// Attrs is a set of attribute values keyed by reflective name.
type Attrs map[string]any

// kindInfo is the per-kind view of an attribute table.
type kindInfo struct {
	attrs []Attr
	names []string
	index map[string]int
	id    int
}

var kinds sync.Map // Kind -> *kindInfo

func infoOf(e Entity) *kindInfo {
	if v, ok := kinds.Load(e.Kind()); ok {
		return v.(*kindInfo)
	}

	attrs := e.attrs()
	info := &kindInfo{attrs: attrs, index: make(map[string]int, len(attrs)), id: -1}

	declared := make([]string, 0, len(attrs))
	for i, a := range attrs {
		declared = append(declared, a.Name)
		info.index[a.Name] = i

		if a.Type == AttrID && info.id < 0 {
			info.id = i
		}
	}

	info.names = withFlags(declared)

	v, _ := kinds.LoadOrStore(e.Kind(), info)

	return v.(*kindInfo)
}

// withFlags extends names with one companion flag per non-flag name.
// Extending an already extended list adds nothing.
func withFlags(names []string) []string {
	out := slices.Clone(names)

	seen := make(map[string]struct{}, 2*len(names))
	for _, n := range names {
		seen[n] = struct{}{}
	}

	for _, n := range names {
		if strings.HasSuffix(n, FlagSuffix) {
			continue
		}

		flag := n + FlagSuffix
		if _, ok := seen[flag]; ok {
			continue
		}

		seen[flag] = struct{}{}
		out = append(out, flag)
	}

	return out
}

// AttributeNames returns the declared attribute names of e followed by
// their is-defaulted companions.
func AttributeNames(e Entity) []string {
	return slices.Clone(infoOf(e).names)
}

// Attributes returns the attribute table of e's kind.
func Attributes(e Entity) []Attr {
	return slices.Clone(infoOf(e).attrs)
}

// lookup returns the attribute for name and whether name is its companion.
func (k *kindInfo) lookup(e Entity, name string) (Attr, bool, error) {
	if i, ok := k.index[name]; ok {
		return k.attrs[i], false, nil
	}

	if base, ok := strings.CutSuffix(name, FlagSuffix); ok {
		if i, ok := k.index[base]; ok {
			return k.attrs[i], true, nil
		}
	}

	return Attr{}, false, &UnknownAttributeError{
		Kind:        e.Kind(),
		Name:        name,
		Suggestions: match.Suggest(name, k.names, 1),
	}
}

// Get returns the value of the named attribute, nil when absent.
// Companion flags are returned as bool.
func Get(e Entity, name string) (any, error) {
	a, flag, err := infoOf(e).lookup(e, name)
	if err != nil {
		return nil, err
	}

	if flag {
		return *a.codec.defaulted(e), nil
	}

	return a.codec.get(e), nil
}

// Set assigns the named attribute. A nil value makes it absent.
func Set(e Entity, name string, v any) error {
	a, flag, err := infoOf(e).lookup(e, name)
	if err != nil {
		return err
	}

	if !flag {
		if err := a.codec.set(e, v); err != nil {
			return fmt.Errorf("%s.%s (%s): %w", e.Kind(), name, a.Type, err)
		}

		return nil
	}

	b, ok := v.(bool)
	if !ok {
		return fmt.Errorf("%s.%s: %w: cannot use %T as bool", e.Kind(), name, ErrInvalidValue, v)
	}

	*a.codec.defaulted(e) = b

	return nil
}

// Apply assigns every value of attrs. Unknown names are rejected before
// anything is assigned.
func Apply(e Entity, attrs Attrs) error {
	info := infoOf(e)

	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	for _, k := range keys {
		if _, _, err := info.lookup(e, k); err != nil {
			return err
		}
	}

	for _, k := range keys {
		if err := Set(e, k, attrs[k]); err != nil {
			return err
		}
	}

	return nil
}

// Fields returns every attribute and companion flag of e keyed by name.
// Absent attributes map to nil.
func Fields(e Entity) map[string]any {
	info := infoOf(e)
	out := make(map[string]any, len(info.names))

	for _, a := range info.attrs {
		out[a.Name] = a.codec.get(e)
		out[a.Name+FlagSuffix] = *a.codec.defaulted(e)
	}

	return out
}

// IsEmpty reports whether every declared attribute of e is absent.
func IsEmpty(e Entity) bool {
	for _, a := range infoOf(e).attrs {
		if a.codec.get(e) != nil {
			return false
		}
	}

	return true
}

// ID returns the identifier of e, or "" if its kind has none or it is unset.
func ID(e Entity) string {
	info := infoOf(e)
	if info.id < 0 {
		return ""
	}

	id, _ := info.attrs[info.id].codec.get(e).(string)

	return id
}

func label(e Entity) string {
	if id := ID(e); id != "" {
		return fmt.Sprintf("%s %q", e.Kind(), id)
	}

	return string(e.Kind())
}
