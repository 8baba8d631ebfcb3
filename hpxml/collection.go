package hpxml

import (
	"slices"

	"github.com/beevik/etree"

	"hpxml-mapper/internal/xmlpath"
)

// part is an owned child of an entity: a single sub-entity or a collection.
type part interface {
	materialize(el *etree.Element) error
	serialize(el *etree.Element) error
	check() []string
	setOwner(b *Building)
	members() []Entity
	remove(e Entity) bool
}

type checker interface {
	Check() []string
}

// kinded is the member constraint of Collection. It must not reach Building,
// which embeds collections.
type kinded interface {
	Kind() Kind
}

// ent returns item as an Entity. Every generated member implements it.
func ent[T kinded](item T) Entity {
	return any(item).(Entity)
}

// Collection is an ordered sequence of entities of one kind, owned by its
// parent entity. Order is preserved through serialization.
type Collection[T kinded] struct {
	path    string
	newItem func() T
	owner   *Building
	items   []T
}

func newCollection[T kinded](path string, newItem func() T) Collection[T] {
	return Collection[T]{path: path, newItem: newItem}
}

// Add constructs a member from attrs and appends it. Unknown attribute
// names are rejected and nothing is appended.
func (c *Collection[T]) Add(attrs Attrs) (T, error) {
	item := c.newItem()
	c.adopt(item)

	if err := Apply(ent(item), attrs); err != nil {
		var zero T
		return zero, err
	}

	c.items = append(c.items, item)

	return item, nil
}

// Append appends item and returns it.
func (c *Collection[T]) Append(item T) T {
	c.adopt(item)
	c.items = append(c.items, item)

	return item
}

// Len returns the number of members.
func (c *Collection[T]) Len() int { return len(c.items) }

// Items returns the members in order.
func (c *Collection[T]) Items() []T { return slices.Clone(c.items) }

// At returns the i-th member.
func (c *Collection[T]) At(i int) T { return c.items[i] }

// Find returns the member with identifier id.
func (c *Collection[T]) Find(id string) (T, bool) {
	for _, item := range c.items {
		if ID(ent(item)) == id {
			return item, true
		}
	}

	var zero T

	return zero, false
}

// Delete removes item, applying the delete policy of every relation that
// targets it. It reports whether item was a member.
func (c *Collection[T]) Delete(item T) bool {
	e := ent(item)
	if !slices.ContainsFunc(c.items, func(x T) bool { return ent(x) == e }) {
		return false
	}

	if c.owner == nil {
		return c.remove(e)
	}

	return c.owner.delete(e)
}

// Check returns the violations of every member in order. It panics with a
// *StructuralError if a member kind has no Check method.
func (c *Collection[T]) Check() []string {
	var errs []string

	for _, item := range c.items {
		ck, ok := any(item).(checker)
		if !ok {
			panic(&StructuralError{Kind: item.Kind(), Path: c.path})
		}

		errs = append(errs, ck.Check()...)
	}

	return errs
}

func (c *Collection[T]) adopt(item T) {
	setOwner(ent(item), c.owner)
}

func (c *Collection[T]) materialize(el *etree.Element) error {
	c.items = nil

	for _, child := range xmlpath.Elements(el, c.path) {
		item := c.newItem()
		c.adopt(item)

		if err := Materialize(ent(item), child); err != nil {
			return err
		}

		c.items = append(c.items, item)
	}

	return nil
}

func (c *Collection[T]) serialize(el *etree.Element) error {
	for _, item := range c.items {
		child, err := xmlpath.AppendElement(el, c.path)
		if err != nil {
			return err
		}

		if err := Serialize(ent(item), child); err != nil {
			return err
		}
	}

	return nil
}

func (c *Collection[T]) check() []string { return c.Check() }

func (c *Collection[T]) setOwner(b *Building) {
	c.owner = b
	for _, item := range c.items {
		setOwner(ent(item), b)
	}
}

func (c *Collection[T]) members() []Entity {
	out := make([]Entity, 0, len(c.items))
	for _, item := range c.items {
		out = append(out, ent(item))
	}

	return out
}

func (c *Collection[T]) remove(e Entity) bool {
	i := slices.IndexFunc(c.items, func(x T) bool { return ent(x) == e })
	if i < 0 {
		return false
	}

	c.items = slices.Delete(c.items, i, i+1)

	return true
}

// single is an owned sub-entity written only when it holds data.
type single struct {
	path string
	e    Entity
}

func (s single) materialize(el *etree.Element) error {
	return Materialize(s.e, xmlpath.Element(el, s.path))
}

func (s single) serialize(el *etree.Element) error {
	if isBlank(s.e) {
		return nil
	}

	child, err := xmlpath.CreateElementsAsNeeded(el, s.path)
	if err != nil {
		return err
	}

	return Serialize(s.e, child)
}

func (s single) check() []string {
	ck, ok := s.e.(checker)
	if !ok {
		panic(&StructuralError{Kind: s.e.Kind(), Path: s.path})
	}

	return ck.Check()
}

func (s single) setOwner(b *Building) { setOwner(s.e, b) }

func (s single) members() []Entity { return []Entity{s.e} }

func (s single) remove(Entity) bool { return false }

// setOwner points e and everything it owns at b. A building always owns
// itself.
func setOwner(e Entity, b *Building) {
	if bb, ok := e.(*Building); ok {
		b = bb
	}

	e.base().bldg = b

	for _, p := range e.children() {
		p.setOwner(b)
	}
}

// isBlank reports whether e and all of its parts hold no data.
func isBlank(e Entity) bool {
	if !IsEmpty(e) {
		return false
	}

	for _, p := range e.children() {
		for _, m := range p.members() {
			if !isBlank(m) {
				return false
			}
		}
	}

	return true
}

// walk calls fn for e and every entity it transitively owns, parents first.
func walk(e Entity, fn func(Entity)) {
	fn(e)

	for _, p := range e.children() {
		for _, m := range p.members() {
			walk(m, fn)
		}
	}
}
