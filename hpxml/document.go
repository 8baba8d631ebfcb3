package hpxml

import (
	"fmt"
	"slices"

	"github.com/beevik/etree"

	"hpxml-mapper/internal/xmlpath"
)

// RootElement is the tag of a document's root element.
const RootElement = "HPXML"

const buildingPath = "Building"

var defaultRootAttrs = []etree.Attr{
	{Key: "xmlns", Value: "http://hpxmlonline.com/2023/09"},
	{Key: "schemaVersion", Value: "4.0"},
}

// Document is the root of the object graph: one header and the ordered
// buildings of a container document.
type Document struct {
	Header    *Header
	Buildings Collection[*Building]

	rootAttrs []etree.Attr
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{
		Header:    newHeader(),
		Buildings: newCollection(buildingPath, newBuilding),
		rootAttrs: slices.Clone(defaultRootAttrs),
	}
}

// NewBuilding returns an empty, detached building.
func NewBuilding() *Building {
	b := newBuilding()
	setOwner(b, b)

	return b
}

// FromElement materializes a document from its root element.
func FromElement(root *etree.Element) (*Document, error) {
	if root == nil || root.Tag != RootElement {
		return nil, fmt.Errorf("%w: root element must be %s", ErrInvalidValue, RootElement)
	}

	d := NewDocument()
	d.rootAttrs = slices.Clone(root.Attr)

	if err := Materialize(d.Header, root); err != nil {
		return nil, err
	}

	if err := d.Buildings.materialize(root); err != nil {
		return nil, err
	}

	return d, nil
}

// Parse materializes a document from XML.
func Parse(data []byte) (*Document, error) {
	doc, err := xmlpath.Parse(data)
	if err != nil {
		return nil, err
	}

	return FromElement(doc.Root())
}

// Read materializes the document stored at path.
func Read(path string) (*Document, error) {
	doc, err := xmlpath.ReadFile(path)
	if err != nil {
		return nil, err
	}

	d, err := FromElement(doc.Root())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return d, nil
}

// ToXML serializes the document into a new XML tree.
func (d *Document) ToXML() (*etree.Document, error) {
	doc, root := xmlpath.NewDocument(RootElement)
	root.Attr = slices.Clone(d.rootAttrs)

	if err := Serialize(d.Header, root); err != nil {
		return nil, err
	}

	if err := d.Buildings.serialize(root); err != nil {
		return nil, err
	}

	return doc, nil
}

// Bytes serializes the document. Serializing a graph materialized from the
// output yields identical bytes.
func (d *Document) Bytes() ([]byte, error) {
	doc, err := d.ToXML()
	if err != nil {
		return nil, err
	}

	return xmlpath.Bytes(doc)
}

// Write serializes the document to path.
func (d *Document) Write(path string) error {
	doc, err := d.ToXML()
	if err != nil {
		return err
	}

	return xmlpath.WriteFile(doc, path)
}

// Building returns the building with identifier id.
func (d *Document) Building(id string) (*Building, bool) {
	return d.Buildings.Find(id)
}

// Check validates the whole graph and returns every data violation.
// A kind without a Check method is reported as an error instead.
func (d *Document) Check() ([]string, error) {
	return recoverStructural(func() []string {
		violations := d.Header.Check()
		return append(violations, d.Buildings.Check()...)
	})
}

// recoverStructural runs check, converting a *StructuralError panic into an
// error. Any other panic is propagated.
func recoverStructural(check func() []string) (violations []string, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		se, ok := r.(*StructuralError)
		if !ok {
			panic(r)
		}

		violations, err = nil, se
	}()

	return check(), nil
}
