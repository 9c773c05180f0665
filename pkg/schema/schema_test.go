package schema

import (
	"errors"
	"reflect"
	"testing"
)

func TestDeclareKeepsOrder(t *testing.T) {
	s := New()
	s.Declare("PORT", &Property{Type: TypeInteger})
	s.Declare("HOST", &Property{Type: TypeString})
	s.Declare("DEBUG", &Property{Type: TypeBoolean})

	want := []string{"PORT", "HOST", "DEBUG"}
	if got := s.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

func TestRedeclareReplacesInPlace(t *testing.T) {
	s := New()
	s.Declare("PORT", &Property{Type: TypeInteger})
	s.Declare("HOST", &Property{Type: TypeString})
	s.Declare("PORT", &Property{Type: TypeString})

	if got := s.Names(); !reflect.DeepEqual(got, []string{"PORT", "HOST"}) {
		t.Errorf("Names() = %v", got)
	}
	p, _ := s.Property("PORT")
	if p.Type != TypeString {
		t.Errorf("redeclared type = %q, want string", p.Type)
	}
}

func TestNamesFallbackForLiteralSchema(t *testing.T) {
	s := &Schema{Properties: map[string]*Property{
		"ZED":   {Type: TypeString},
		"ALPHA": {Type: TypeString},
	}}
	if got := s.Names(); !reflect.DeepEqual(got, []string{"ALPHA", "ZED"}) {
		t.Errorf("Names() = %v, want sorted fallback", got)
	}
}

func TestIsRequired(t *testing.T) {
	s := New()
	s.Required = []string{"API_KEY"}
	if !s.IsRequired("API_KEY") {
		t.Error("IsRequired(API_KEY) = false")
	}
	if s.IsRequired("PORT") {
		t.Error("IsRequired(PORT) = true")
	}
}

func TestFinalizeRejectsUnknownType(t *testing.T) {
	s := New()
	s.Declare("PORT", &Property{Type: "decimal"})
	err := s.Finalize()
	if !errors.Is(err, ErrUnknownType) {
		t.Errorf("Finalize() = %v, want ErrUnknownType", err)
	}
}

func TestFinalizeDefaultsOmittedTypeToString(t *testing.T) {
	s := New()
	s.Declare("NAME", &Property{})
	if err := s.Finalize(); err != nil {
		t.Fatalf("Finalize() = %v", err)
	}
	p, _ := s.Property("NAME")
	if p.Type != TypeString {
		t.Errorf("Type = %q, want string", p.Type)
	}
}

func TestFinalizeNormalizesDefaults(t *testing.T) {
	tests := []struct {
		name    string
		typ     Type
		in      any
		want    any
	}{
		{"int default for number", TypeNumber, 3000, float64(3000)},
		{"float default for number", TypeNumber, 1.5, 1.5},
		{"int default for integer", TypeInteger, 3000, int64(3000)},
		{"float default for integer truncates", TypeInteger, 30.7, int64(30)},
		{"string default untouched", TypeString, "dev", "dev"},
		{"bool default untouched", TypeBoolean, true, true},
	}

	for _, tt := range tests {
		s := New()
		s.Declare("X", &Property{Type: tt.typ, Default: tt.in})
		if err := s.Finalize(); err != nil {
			t.Fatalf("%s: Finalize() = %v", tt.name, err)
		}
		p, _ := s.Property("X")
		if !reflect.DeepEqual(p.Default, tt.want) {
			t.Errorf("%s: Default = %#v, want %#v", tt.name, p.Default, tt.want)
		}
	}
}

func TestTypeValid(t *testing.T) {
	for _, typ := range []Type{TypeString, TypeNumber, TypeInteger, TypeBoolean} {
		if !typ.Valid() {
			t.Errorf("%q should be valid", typ)
		}
	}
	for _, typ := range []Type{"", "decimal", "object", "array"} {
		if typ.Valid() {
			t.Errorf("%q should not be valid", typ)
		}
	}
}
