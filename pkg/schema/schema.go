package schema

import (
	"fmt"
	"math"
	"sort"
)

// Type names the value type a property declares.
type Type string

const (
	TypeString  Type = "string"
	TypeNumber  Type = "number"
	TypeInteger Type = "integer"
	TypeBoolean Type = "boolean"
)

// Valid reports whether t is one of the supported type names.
func (t Type) Valid() bool {
	switch t {
	case TypeString, TypeNumber, TypeInteger, TypeBoolean:
		return true
	}
	return false
}

// Property declares the expectations for a single environment variable.
//
// Constraint fields are only meaningful for their corresponding type
// (Pattern applies to strings, Minimum to numbers) but an inapplicable
// constraint is silently not applied rather than rejected.
type Property struct {
	Type        Type     `json:"type" yaml:"type" mapstructure:"type"`
	Default     any      `json:"default,omitempty" yaml:"default,omitempty" mapstructure:"default"`
	Enum        []any    `json:"enum,omitempty" yaml:"enum,omitempty" mapstructure:"enum"`
	Pattern     string   `json:"pattern,omitempty" yaml:"pattern,omitempty" mapstructure:"pattern"`
	Minimum     *float64 `json:"minimum,omitempty" yaml:"minimum,omitempty" mapstructure:"minimum"`
	Maximum     *float64 `json:"maximum,omitempty" yaml:"maximum,omitempty" mapstructure:"maximum"`
	MinLength   *int     `json:"minLength,omitempty" yaml:"minLength,omitempty" mapstructure:"minLength"`
	MaxLength   *int     `json:"maxLength,omitempty" yaml:"maxLength,omitempty" mapstructure:"maxLength"`
	Format      string   `json:"format,omitempty" yaml:"format,omitempty" mapstructure:"format"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty" mapstructure:"description"`
	Sensitive   bool     `json:"sensitive,omitempty" yaml:"sensitive,omitempty" mapstructure:"sensitive"`
}

// HasDefault reports whether the property declares a fallback value.
func (p *Property) HasDefault() bool {
	return p.Default != nil
}

// normalize aligns the declared default with the property's type, so that a
// default read from YAML (where 3000 decodes as int) and one read from JSON
// (where it decodes as float64) adopt identically. An omitted type means
// string.
func (p *Property) normalize() {
	if p.Type == "" {
		p.Type = TypeString
	}
	if p.Default == nil {
		return
	}
	switch p.Type {
	case TypeNumber:
		if f, ok := widenNumber(p.Default); ok {
			p.Default = f
		}
	case TypeInteger:
		if f, ok := widenNumber(p.Default); ok {
			p.Default = int64(math.Trunc(f))
		}
	}
}

// widenNumber converts any numeric kind to float64.
func widenNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

// Schema is an object schema mapping environment variable names to declared
// properties. Declaration order is preserved and drives the order in which
// the engine visits properties.
type Schema struct {
	Properties map[string]*Property
	Required   []string

	names []string
}

// New returns an empty schema ready for Declare calls.
func New() *Schema {
	return &Schema{Properties: make(map[string]*Property)}
}

// Declare adds a property under name. The first declaration fixes the name's
// position in Names; redeclaring replaces the property in place.
func (s *Schema) Declare(name string, prop *Property) {
	if s.Properties == nil {
		s.Properties = make(map[string]*Property)
	}
	if _, seen := s.Properties[name]; !seen {
		s.names = append(s.names, name)
	}
	s.Properties[name] = prop
}

// Names returns the declared property names in declaration order. For a
// schema assembled as a struct literal (which carries no order), names come
// back sorted.
func (s *Schema) Names() []string {
	if len(s.names) == 0 && len(s.Properties) > 0 {
		names := make([]string, 0, len(s.Properties))
		for name := range s.Properties {
			names = append(names, name)
		}
		sort.Strings(names)
		return names
	}
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Property returns the declared property for name.
func (s *Schema) Property(name string) (*Property, bool) {
	p, ok := s.Properties[name]
	return p, ok
}

// IsRequired reports whether name appears in the required list.
func (s *Schema) IsRequired(name string) bool {
	for _, r := range s.Required {
		if r == name {
			return true
		}
	}
	return false
}

// Len returns the number of declared properties.
func (s *Schema) Len() int {
	return len(s.Properties)
}

// Finalize fills implied fields (an omitted property type means string,
// defaults are aligned with their type) and checks for defects that must
// abort engine construction. A required name without a declared property is
// tolerated; it will simply always report missing unless the environment
// carries a value for it.
func (s *Schema) Finalize() error {
	for _, name := range s.Names() {
		p := s.Properties[name]
		if p == nil {
			return fmt.Errorf("property %q has no definition", name)
		}
		p.normalize()
		if !p.Type.Valid() {
			return fmt.Errorf("property %q: %w %q", name, ErrUnknownType, p.Type)
		}
	}
	return nil
}
