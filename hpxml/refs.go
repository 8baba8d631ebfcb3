package hpxml

import (
	"errors"
	"fmt"
	"slices"

	"hpxml-mapper/internal/common"
)

//go:generate go tool stringer -type=DeletePolicy -linecomment -output=deletepolicy_string.go

// DeletePolicy decides what happens to a referencing entity when the entity
// it references is deleted. Nullify clears the reference, or drops the
// identifier from a list. Cascade deletes the referencing entity.
type DeletePolicy int

const (
	Nullify DeletePolicy = iota // nullify
	Cascade                     // cascade
)

// Relation is one declared ID/IDREF association.
type Relation struct {
	From     Kind
	Attr     string
	To       []Kind
	OnDelete DeletePolicy
	// Required references are reported by Check when unset.
	Required bool
}

// Relations returns the declared relations.
func Relations() []Relation {
	return slices.Clone(relations)
}

func relationOf(k Kind, attr string) (Relation, bool) {
	for _, r := range relations {
		if r.From == k && r.Attr == attr {
			return r, true
		}
	}

	return Relation{}, false
}

func (r Relation) targets(k Kind) bool {
	return slices.Contains(r.To, k)
}

func isList(e Entity, attr string) bool {
	info := infoOf(e)
	i, ok := info.index[attr]

	return ok && info.attrs[i].Type == AttrRefs
}

func refOf(e Entity, attr string) string {
	v, _ := Get(e, attr)
	s, _ := v.(string)

	return s
}

func refsOf(e Entity, attr string) []string {
	v, _ := Get(e, attr)
	s, _ := v.([]string)

	return s
}

// Resolve returns the entity named by the reference attribute attr of e.
// An unset optional reference resolves to nil without error.
func Resolve(e Entity, attr string) (Entity, error) {
	r, ok := relationOf(e.Kind(), attr)
	if !ok {
		return nil, fmt.Errorf("%s.%s is not a reference: %w", e.Kind(), attr, ErrUnknownAttribute)
	}

	ref := refOf(e, attr)
	if ref == "" {
		if r.Required {
			return nil, resolutionError(e, r, "")
		}

		return nil, nil
	}

	if t := e.base().bldg.lookup(ref, r.To); t != nil {
		return t, nil
	}

	return nil, resolutionError(e, r, ref)
}

// ResolveAll returns the entities named by the reference list attr of e.
// Every identifier that does not resolve contributes one *ResolutionError.
func ResolveAll(e Entity, attr string) ([]Entity, error) {
	r, ok := relationOf(e.Kind(), attr)
	if !ok {
		return nil, fmt.Errorf("%s.%s is not a reference: %w", e.Kind(), attr, ErrUnknownAttribute)
	}

	var (
		out  []Entity
		errs []error
	)

	for _, ref := range refsOf(e, attr) {
		t := e.base().bldg.lookup(ref, r.To)
		if t == nil {
			errs = append(errs, resolutionError(e, r, ref))
			continue
		}

		out = append(out, t)
	}

	return out, errors.Join(errs...)
}

func resolveOne[T Entity](e Entity, attr string) (T, error) {
	var zero T

	t, err := Resolve(e, attr)
	if err != nil || t == nil {
		return zero, err
	}

	typed, ok := t.(T)
	if !ok {
		return zero, fmt.Errorf("%s: %w", label(t), ErrInvalidValue)
	}

	return typed, nil
}

func resolveAll[T Entity](e Entity, attr string) ([]T, error) {
	ts, err := ResolveAll(e, attr)

	out := make([]T, 0, len(ts))
	for _, t := range ts {
		if typed, ok := t.(T); ok {
			out = append(out, typed)
		}
	}

	return out, err
}

func resolutionError(e Entity, r Relation, ref string) *ResolutionError {
	return &ResolutionError{
		Kind:    e.Kind(),
		ID:      ID(e),
		Attr:    r.Attr,
		Ref:     ref,
		Targets: slices.Clone(r.To),
	}
}

// lookup finds the entity with identifier id among the given kinds.
// A detached entity (nil building) resolves nothing.
func (b *Building) lookup(id string, kinds []Kind) Entity {
	if b == nil {
		return nil
	}

	var found Entity

	walk(b, func(e Entity) {
		if found == nil && slices.Contains(kinds, e.Kind()) && ID(e) == id {
			found = e
		}
	})

	return found
}

// each calls fn for every entity of kind k in the building.
func (b *Building) each(k Kind, fn func(Entity)) {
	var matched []Entity

	walk(b, func(e Entity) {
		if e.Kind() == k {
			matched = append(matched, e)
		}
	})

	for _, e := range matched {
		fn(e)
	}
}

// delete removes e and what it owns. Entities whose references cascade from
// e are deleted first; other references to e are cleared.
func (b *Building) delete(e Entity) bool {
	var (
		owned   []Entity
		cascade []Entity
	)

	walk(e, func(x Entity) { owned = append(owned, x) })

	for _, x := range owned {
		id := ID(x)
		if id == "" {
			continue
		}

		for _, r := range relations {
			if !r.targets(x.Kind()) {
				continue
			}

			b.each(r.From, func(ref Entity) {
				if slices.Contains(owned, ref) {
					return
				}

				if isList(ref, r.Attr) {
					if ids, ok := common.Remove(refsOf(ref, r.Attr), id); ok {
						_ = Set(ref, r.Attr, ids)
					}

					return
				}

				if refOf(ref, r.Attr) != id {
					return
				}

				if r.OnDelete == Cascade {
					cascade = append(cascade, ref)
					return
				}

				_ = Set(ref, r.Attr, nil)
				_ = Set(ref, r.Attr+FlagSuffix, false)
			})
		}
	}

	for _, x := range cascade {
		b.delete(x)
	}

	return b.remove(e)
}

// remove detaches e from the part that owns it.
func (b *Building) remove(e Entity) bool {
	removed := false

	walk(b, func(x Entity) {
		if removed {
			return
		}

		for _, p := range x.children() {
			if p.remove(e) {
				removed = true
				return
			}
		}
	})

	if removed {
		setOwner(e, nil)
	}

	return removed
}

// repoint makes every reference to the entity of kind k with identifier old
// name repl instead.
func (b *Building) repoint(k Kind, old, repl string) {
	for _, r := range relations {
		if !r.targets(k) {
			continue
		}

		b.each(r.From, func(ref Entity) {
			if isList(ref, r.Attr) {
				if ids := refsOf(ref, r.Attr); slices.Contains(ids, old) {
					_ = Set(ref, r.Attr, common.Replace(ids, old, repl))
				}

				return
			}

			if refOf(ref, r.Attr) == old {
				_ = Set(ref, r.Attr, repl)
			}
		})
	}
}
