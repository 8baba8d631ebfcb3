package schema

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	defaultVersion  = "1"
	defaultPackage  = "hpxml"
	defaultIDPath   = "SystemIdentifier"
	filePermissions = 0o644
)

// LoadFile loads and parses a YAML schema file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse schema YAML: %w", err)
	}

	applyDefaults(&f)

	return &f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = defaultVersion
	}

	if f.Package == "" {
		f.Package = defaultPackage
	}

	for i := range f.Entities {
		e := &f.Entities[i]

		for j := range e.Attributes {
			a := &e.Attributes[j]
			if a.Field == "" {
				a.Field = GoName(a.Name)
			}

			if a.Path == "" {
				switch a.Type {
				case TypeID:
					a.Path = defaultIDPath
				case TypeString, TypeInt, TypeFloat, TypeBool, TypeEnum:
					a.Path = ElementName(a.Name)
				}
			}
		}

		for j := range e.Children {
			c := &e.Children[j]
			if c.Name == "" {
				if c.Many {
					c.Name = CollectionField(c.Kind)
				} else {
					c.Name = c.Kind
				}
			}
		}
	}

	for i := range f.Relations {
		if f.Relations[i].OnDelete == "" {
			f.Relations[i].OnDelete = Nullify
		}
	}
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// WriteFile writes a File to the given path.
func WriteFile(f *File, path string) error {
	data, err := Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal schema: %w", err)
	}

	if err := os.WriteFile(path, data, filePermissions); err != nil {
		return fmt.Errorf("failed to write schema file %s: %w", path, err)
	}

	return nil
}
