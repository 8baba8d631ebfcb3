package hpxml

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/beevik/etree"

	"hpxml-mapper/internal/xmlpath"
)

const buildingIDPath = "BuildingID"

var (
	// ErrMultipleBuildings is returned by SelectBuilding when no identifier
	// is given, the container holds several buildings and multi-unit
	// simulation is off.
	ErrMultipleBuildings = errors.New("multiple Building elements defined; provide a building ID or enable whole-building simulation")
	// ErrNoBuildings is returned when a container holds no building.
	ErrNoBuildings = errors.New("no Building elements defined")
)

// BuildingIDs returns the identifiers of the buildings of root in order.
func BuildingIDs(root *etree.Element) []string {
	var ids []string

	for _, b := range xmlpath.Elements(root, buildingPath) {
		id, _ := xmlpath.AttrValue(xmlpath.Element(b, buildingIDPath), idAttr)
		ids = append(ids, id)
	}

	return ids
}

// SelectBuilding removes every building of root except the one whose
// BuildingID is id and returns how many were removed. With an empty id
// all buildings are kept, and more than one is an error unless multiUnit.
func SelectBuilding(root *etree.Element, id string, multiUnit bool) (int, error) {
	buildings := xmlpath.Elements(root, buildingPath)
	if len(buildings) == 0 {
		return 0, ErrNoBuildings
	}

	if id == "" {
		if len(buildings) > 1 && !multiUnit {
			return 0, ErrMultipleBuildings
		}

		return 0, nil
	}

	var keep *etree.Element

	for _, b := range buildings {
		if v, _ := xmlpath.AttrValue(xmlpath.Element(b, buildingIDPath), idAttr); v == id {
			keep = b
			break
		}
	}

	if keep == nil {
		return 0, fmt.Errorf("building %q: %w", id, ErrNotFound)
	}

	removed := 0

	for _, b := range buildings {
		if b != keep {
			root.RemoveChild(b)
			removed++
		}
	}

	return removed, nil
}

// RewriteIdentifiers appends _<i+1> to every id and idref attribute in the
// subtree rooted at el, whatever element carries it.
func RewriteIdentifiers(el *etree.Element, i int) {
	suffix := "_" + strconv.Itoa(i+1)

	for j := range el.Attr {
		if a := &el.Attr[j]; a.Space == "" && (a.Key == idAttr || a.Key == idrefAttr) {
			a.Value += suffix
		}
	}

	for _, child := range el.ChildElements() {
		RewriteIdentifiers(child, i)
	}
}

// MergeDocuments combines the buildings of several container documents
// into one. The root attributes and header come from the first document.
// The identifiers of the n-th building overall are rewritten with suffix
// _<n+1>, so no two buildings share an identifier.
func MergeDocuments(docs ...*etree.Document) (*etree.Document, error) {
	if len(docs) == 0 {
		return nil, ErrNoBuildings
	}

	out, root := xmlpath.NewDocument(RootElement)

	n := 0

	for i, doc := range docs {
		src := doc.Root()
		if src == nil || src.Tag != RootElement {
			return nil, fmt.Errorf("document %d: %w: root element must be %s", i+1, ErrInvalidValue, RootElement)
		}

		for _, child := range src.ChildElements() {
			if child.Tag != buildingPath {
				if i == 0 {
					root.AddChild(child.Copy())
				}

				continue
			}

			b := child.Copy()
			RewriteIdentifiers(b, n)
			root.AddChild(b)
			n++
		}

		if i == 0 {
			root.Attr = append(root.Attr, src.Attr...)
		}
	}

	if n == 0 {
		return nil, ErrNoBuildings
	}

	return out, nil
}
