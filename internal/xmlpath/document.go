package xmlpath

import (
	"errors"
	"fmt"
	"os"

	"github.com/beevik/etree"
)

const (
	indent   = 2
	filePerm = 0o644
)

// ErrNoRoot is returned when a document has no root element.
var ErrNoRoot = errors.New("document has no root element")

// NewDocument creates a document with an XML declaration and a root element.
func NewDocument(root string) (*etree.Document, *etree.Element) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	return doc, doc.CreateElement(root)
}

// Parse parses an XML document.
func Parse(data []byte) (*etree.Document, error) {
	doc := etree.NewDocument()

	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}

	if doc.Root() == nil {
		return nil, ErrNoRoot
	}

	return doc, nil
}

// ReadFile loads and parses the XML document at path.
func ReadFile(path string) (*etree.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading document %s: %w", path, err)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}

// Bytes serializes doc with canonical two-space indentation.
// Serializing the same tree twice yields identical bytes.
func Bytes(doc *etree.Document) ([]byte, error) {
	doc.Indent(indent)

	data, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("serializing document: %w", err)
	}

	return data, nil
}

// WriteFile serializes doc to path.
func WriteFile(doc *etree.Document, path string) error {
	data, err := Bytes(doc)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("writing document %s: %w", path, err)
	}

	return nil
}
