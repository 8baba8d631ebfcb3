package rules

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"hpxml-mapper/internal/diagnostic"
	"hpxml-mapper/internal/xmlpath"
)

// Role is the severity of a rule's failed assertions.
type Role string

const (
	RoleError Role = "error"
	RoleWarn  Role = "warn"
)

// RuleSet is a named list of rules.
type RuleSet struct {
	Name  string `yaml:"name"`
	Rules []Rule `yaml:"rules"`
}

// Rule asserts over every element matching Context.
type Rule struct {
	// Context is a path evaluated from the document node, e.g.
	// /HPXML/Building.
	Context string   `yaml:"context"`
	Role    Role     `yaml:"role,omitempty"`
	Asserts []Assert `yaml:"asserts"`
}

// Assert bounds the number of elements at Test beneath a context element.
// Min defaults to 1 and a nil Max is unbounded.
type Assert struct {
	Test    string `yaml:"test"`
	Min     *int   `yaml:"min,omitempty"`
	Max     *int   `yaml:"max,omitempty"`
	Message string `yaml:"message,omitempty"`
}

//go:embed base.yaml
var baseYAML []byte

// Default returns the built-in rule set covering the document skeleton.
func Default() *RuleSet {
	rs, err := Parse(baseYAML)
	if err != nil {
		panic(fmt.Sprintf("rules: built-in rule set: %v", err))
	}

	return rs
}

// LoadFile loads and parses a YAML rule set from the given path.
func LoadFile(path string) (*RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rule set %s: %w", path, err)
	}

	rs, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if rs.Name == "" {
		rs.Name = path
	}

	return rs, nil
}

// Parse parses and checks a YAML rule set.
func Parse(data []byte) (*RuleSet, error) {
	var rs RuleSet

	if err := yaml.Unmarshal(data, &rs); err != nil {
		return nil, fmt.Errorf("failed to parse rule set YAML: %w", err)
	}

	applyDefaults(&rs)

	if err := check(&rs).Error(); err != nil {
		return nil, fmt.Errorf("invalid rule set: %w", err)
	}

	return &rs, nil
}

func applyDefaults(rs *RuleSet) {
	for i := range rs.Rules {
		r := &rs.Rules[i]
		if r.Role == "" {
			r.Role = RoleError
		}

		for j := range r.Asserts {
			if r.Asserts[j].Min == nil {
				one := 1
				r.Asserts[j].Min = &one
			}
		}
	}
}

// check reports malformed paths, unknown roles and bad bounds.
func check(rs *RuleSet) *diagnostic.Diagnostics {
	diags := &diagnostic.Diagnostics{}

	for i, r := range rs.Rules {
		diags.Merge(checkRule(fmt.Sprintf("rules[%d]", i), r))
	}

	return diags
}

func checkRule(id string, r Rule) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	if _, err := xmlpath.ParsePath(r.Context); err != nil {
		diags.AddError("invalid_context", err.Error(), "rule", id)
	}

	switch r.Role {
	case RoleError, RoleWarn:
	default:
		diags.AddError("invalid_role", fmt.Sprintf("unknown role %q", r.Role), "rule", id)
		diags.Suggest(string(RoleError), string(RoleWarn))
	}

	if len(r.Asserts) == 0 {
		diags.AddError("no_asserts", "rule declares no assertions", "rule", id)
	}

	for j, a := range r.Asserts {
		aid := fmt.Sprintf("%s.asserts[%d]", id, j)

		if _, err := xmlpath.ParsePath(a.Test); err != nil {
			diags.AddError("invalid_test", err.Error(), "assert", aid)
		}

		if *a.Min < 0 {
			diags.AddError("invalid_bounds", fmt.Sprintf("min %d is negative", *a.Min), "assert", aid)
		}

		if a.Max != nil && *a.Max < *a.Min {
			diags.AddError("invalid_bounds", fmt.Sprintf("max %d is below min %d", *a.Max, *a.Min), "assert", aid)
		}
	}

	return diags
}

// expectation renders the bounds of a, e.g. "1", "0 or 1", "1 or more".
func (a Assert) expectation() string {
	lo := *a.Min

	switch {
	case a.Max == nil:
		return fmt.Sprintf("%d or more", lo)
	case *a.Max == lo:
		return fmt.Sprintf("%d", lo)
	case *a.Max == lo+1:
		return fmt.Sprintf("%d or %d", lo, *a.Max)
	default:
		return fmt.Sprintf("%d to %d", lo, *a.Max)
	}
}

func (a Assert) holds(n int) bool {
	return n >= *a.Min && (a.Max == nil || n <= *a.Max)
}

func (a Assert) message(context, id string) string {
	msg := a.Message
	if msg == "" {
		msg = fmt.Sprintf("Expected %s element(s) for xpath: %s", a.expectation(), a.Test)
	}

	var where strings.Builder

	fmt.Fprintf(&where, "context: %s", context)

	if id != "" {
		fmt.Fprintf(&where, ", id: %q", id)
	}

	return fmt.Sprintf("%s [%s]", msg, where.String())
}
