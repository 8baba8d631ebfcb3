package hpxml

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is matched by reference resolution failures.
	ErrNotFound = errors.New("not found")
	// ErrPropertyNotSet is returned when reading a property that was never set.
	ErrPropertyNotSet = errors.New("property not set")
	// ErrInvalidValue is returned when a value does not fit an attribute.
	ErrInvalidValue = errors.New("invalid value")
	// ErrUnknownAttribute is matched by UnknownAttributeError.
	ErrUnknownAttribute = errors.New("unknown attribute")
)

// UnknownAttributeError is returned when an attribute name is not declared
// on an entity kind.
type UnknownAttributeError struct {
	Kind        Kind
	Name        string
	Suggestions []string
}

func (e *UnknownAttributeError) Error() string {
	msg := fmt.Sprintf("%s has no attribute %q", e.Kind, e.Name)
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean %q?)", e.Suggestions[0])
	}

	return msg
}

// Is reports whether target is ErrUnknownAttribute.
func (e *UnknownAttributeError) Is(target error) bool {
	return target == ErrUnknownAttribute
}

// ResolutionError is returned when a reference does not name an entity of
// the expected kind in the owning building.
type ResolutionError struct {
	// Kind and ID identify the referencing entity.
	Kind Kind
	ID   string
	// Attr is the reference attribute and Ref its value (empty when unset).
	Attr    string
	Ref     string
	Targets []Kind
}

func (e *ResolutionError) Error() string {
	who := string(e.Kind)
	if e.ID != "" {
		who = fmt.Sprintf("%s %q", e.Kind, e.ID)
	}

	if e.Ref == "" {
		return fmt.Sprintf("%s: %s is not set", who, e.Attr)
	}

	targets := make([]string, 0, len(e.Targets))
	for _, k := range e.Targets {
		targets = append(targets, string(k))
	}

	return fmt.Sprintf("%s: %s references unknown %s %q", who, e.Attr, strings.Join(targets, " or "), e.Ref)
}

// Is reports whether target is ErrNotFound.
func (e *ResolutionError) Is(target error) bool {
	return target == ErrNotFound
}

// StructuralError reports an entity kind that cannot take part in
// validation. It indicates a defect in the declarations, not in the data.
type StructuralError struct {
	Kind Kind
	Path string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("internal error: %s at %s has no Check method", e.Kind, e.Path)
}
