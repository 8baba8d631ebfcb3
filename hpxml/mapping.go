package hpxml

import (
	"fmt"

	"github.com/beevik/etree"
)

// Materialize reads every attribute and owned part of e from el.
// Attributes whose element is missing become absent; a nil el clears e.
func Materialize(e Entity, el *etree.Element) error {
	for _, a := range e.attrs() {
		if err := a.codec.decode(e, el, a.Path); err != nil {
			return fmt.Errorf("%s: %s: %w", label(e), a.Name, err)
		}
	}

	for _, p := range e.children() {
		if err := p.materialize(el); err != nil {
			return err
		}
	}

	return nil
}

// Serialize writes every present attribute of e beneath el in declaration
// order, followed by its owned parts. Is-defaulted values carry the
// software data source marker.
func Serialize(e Entity, el *etree.Element) error {
	for _, a := range e.attrs() {
		if err := a.codec.encode(e, el, a.Path); err != nil {
			return fmt.Errorf("%s: %s: %w", label(e), a.Name, err)
		}
	}

	for _, p := range e.children() {
		if err := p.serialize(el); err != nil {
			return err
		}
	}

	return nil
}
