package xmlpath

import (
	"errors"
	"fmt"
	"strings"
)

// Path is a parsed element path.
type Path struct {
	// Absolute paths are evaluated from the document instead of a context element.
	Absolute bool
	Segments []Segment
}

// Segment is one step of a path: an element name plus optional predicates.
type Segment struct {
	Name       string
	Predicates []Predicate
}

// Predicate requires a child element with the given text.
type Predicate struct {
	Child string
	Value string
}

// ParsePath parses a path string into a Path.
// Supports: "A", "A/B", "A[C='x']/B", "/Root/A".
func ParsePath(path string) (Path, error) {
	if path == "" {
		return Path{}, errors.New("empty path")
	}

	var p Path

	if strings.HasPrefix(path, "/") {
		p.Absolute = true
		path = path[1:]
	}

	parts, err := splitSegments(path)
	if err != nil {
		return Path{}, fmt.Errorf("invalid path %q: %w", path, err)
	}

	for _, part := range parts {
		if part == "" {
			return Path{}, fmt.Errorf("invalid path %q: empty segment", path)
		}

		seg, err := parseSegment(part)
		if err != nil {
			return Path{}, fmt.Errorf("invalid path %q: %w", path, err)
		}

		p.Segments = append(p.Segments, seg)
	}

	return p, nil
}

// MustParsePath is like ParsePath but panics on error.
// It is intended for paths declared as constants.
func MustParsePath(path string) Path {
	p, err := ParsePath(path)
	if err != nil {
		panic(err)
	}

	return p
}

// String renders the path back to its textual form.
func (p Path) String() string {
	var sb strings.Builder

	if p.Absolute {
		sb.WriteByte('/')
	}

	for i, seg := range p.Segments {
		if i > 0 {
			sb.WriteByte('/')
		}

		sb.WriteString(seg.String())
	}

	return sb.String()
}

// Split returns the path without its last segment, and the last segment.
func (p Path) Split() (Path, Segment) {
	if len(p.Segments) == 0 {
		return p, Segment{}
	}

	n := len(p.Segments) - 1

	return Path{Absolute: p.Absolute, Segments: p.Segments[:n]}, p.Segments[n]
}

// String renders the segment back to its textual form.
func (s Segment) String() string {
	var sb strings.Builder

	sb.WriteString(s.Name)

	for _, pr := range s.Predicates {
		sb.WriteString("[")
		sb.WriteString(pr.Child)
		sb.WriteString("='")
		sb.WriteString(pr.Value)
		sb.WriteString("']")
	}

	return sb.String()
}

// splitSegments splits on "/" outside of brackets and quotes.
func splitSegments(path string) ([]string, error) {
	var (
		parts []string
		start int
		depth int
		quote byte
	)

	for i := 0; i < len(path); i++ {
		c := path[i]

		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '\'' || c == '"':
			quote = c
		case c == '[':
			depth++
		case c == ']':
			depth--
			if depth < 0 {
				return nil, errors.New("unbalanced ']'")
			}
		case c == '/' && depth == 0:
			parts = append(parts, path[start:i])
			start = i + 1
		}
	}

	if quote != 0 {
		return nil, errors.New("unterminated quote")
	}

	if depth != 0 {
		return nil, errors.New("unbalanced '['")
	}

	return append(parts, path[start:]), nil
}

func parseSegment(part string) (Segment, error) {
	name, rest, _ := strings.Cut(part, "[")
	if !isValidName(name) {
		return Segment{}, fmt.Errorf("invalid element name %q", name)
	}

	seg := Segment{Name: name}

	if rest == "" {
		return seg, nil
	}

	// rest looks like "C='x']" or "C='x'][D='y']"
	for _, raw := range strings.Split("["+rest, "[")[1:] {
		body, ok := strings.CutSuffix(raw, "]")
		if !ok {
			return Segment{}, fmt.Errorf("predicate %q is not closed", raw)
		}

		child, lit, ok := strings.Cut(body, "=")
		if !ok {
			return Segment{}, fmt.Errorf("predicate %q has no '='", body)
		}

		if !isValidName(child) {
			return Segment{}, fmt.Errorf("invalid predicate element name %q", child)
		}

		value, err := unquote(lit)
		if err != nil {
			return Segment{}, err
		}

		seg.Predicates = append(seg.Predicates, Predicate{Child: child, Value: value})
	}

	return seg, nil
}

func unquote(lit string) (string, error) {
	if len(lit) >= 2 && (lit[0] == '\'' || lit[0] == '"') && lit[len(lit)-1] == lit[0] {
		return lit[1 : len(lit)-1], nil
	}

	return "", fmt.Errorf("predicate literal %s must be quoted", lit)
}

// isValidName checks if a string is a valid (unprefixed) XML element name, or "*".
func isValidName(s string) bool {
	if s == "*" {
		return true
	}

	if s == "" {
		return false
	}

	for i, r := range s {
		if i == 0 {
			if !isLetter(r) && r != '_' {
				return false
			}
		} else if !isLetter(r) && !isDigit(r) && r != '_' && r != '-' && r != '.' {
			return false
		}
	}

	return true
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
