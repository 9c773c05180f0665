package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Load reads and parses a schema document from path. Both JSON and YAML
// documents are accepted.
func Load(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("schema %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a schema document. A document opening with "{" is parsed as
// JSON, anything else as YAML; a failed JSON parse falls back to YAML since
// YAML flow mappings share the brace syntax.
func Parse(data []byte) (*Schema, error) {
	if bytes.HasPrefix(bytes.TrimLeft(data, " \t\r\n"), []byte("{")) {
		s, err := parseJSON(data)
		if err == nil {
			return s, nil
		}
		if s2, yerr := parseYAML(data); yerr == nil {
			return s2, nil
		}
		return nil, err
	}
	return parseYAML(data)
}

func parseJSON(data []byte) (*Schema, error) {
	var doc struct {
		Type       string                    `json:"type"`
		Properties map[string]map[string]any `json:"properties"`
		Required   []string                  `json:"required"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}
	if doc.Type != "" && doc.Type != "object" {
		return nil, fmt.Errorf("%w, got %q", ErrNotObject, doc.Type)
	}
	if doc.Properties == nil {
		return nil, ErrMissingProperties
	}

	order, err := jsonPropertyOrder(data)
	if err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}

	s := New()
	s.Required = doc.Required
	for _, name := range order {
		raw, ok := doc.Properties[name]
		if !ok {
			continue
		}
		prop, err := decodeProperty(raw)
		if err != nil {
			return nil, fmt.Errorf("property %q: %w", name, err)
		}
		s.Declare(name, prop)
	}
	if err := s.Finalize(); err != nil {
		return nil, err
	}
	return s, nil
}

// jsonPropertyOrder extracts the declaration order of the keys inside the
// top-level "properties" object. encoding/json unmarshals objects into maps,
// which lose order, so the document is token-scanned once just for the key
// sequence.
func jsonPropertyOrder(data []byte) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, ErrNotObject
	}

	var order []string
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, _ := keyTok.(string)
		if key == "properties" {
			err = scanValue(dec, &order)
		} else {
			err = scanValue(dec, nil)
		}
		if err != nil {
			return nil, err
		}
	}
	return order, nil
}

// scanValue consumes one JSON value from dec. When keys is non-nil and the
// value is an object, its top-level keys are appended in document order.
func scanValue(dec *json.Decoder, keys *[]string) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	delim, ok := tok.(json.Delim)
	if !ok {
		return nil // scalar
	}
	switch delim {
	case '{':
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return err
			}
			if keys != nil {
				if key, ok := keyTok.(string); ok {
					*keys = append(*keys, key)
				}
			}
			if err := scanValue(dec, nil); err != nil {
				return err
			}
		}
	case '[':
		for dec.More() {
			if err := scanValue(dec, nil); err != nil {
				return err
			}
		}
	}
	_, err = dec.Token() // closing delimiter
	return err
}

func parseYAML(data []byte) (*Schema, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}
	if len(doc.Content) == 0 {
		return nil, ErrMissingProperties
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, ErrNotObject
	}

	s := New()
	sawProperties := false
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		switch key.Value {
		case "type":
			if value.Value != "object" {
				return nil, fmt.Errorf("%w, got %q", ErrNotObject, value.Value)
			}
		case "required":
			if err := value.Decode(&s.Required); err != nil {
				return nil, fmt.Errorf("parse required list: %w", err)
			}
		case "properties":
			if value.Kind != yaml.MappingNode {
				if value.Tag == "!!null" {
					continue
				}
				return nil, fmt.Errorf("%w: properties is not a mapping", ErrMissingProperties)
			}
			sawProperties = true
			for j := 0; j+1 < len(value.Content); j += 2 {
				name := value.Content[j].Value
				var prop Property
				if err := value.Content[j+1].Decode(&prop); err != nil {
					return nil, fmt.Errorf("property %q: %w", name, err)
				}
				s.Declare(name, &prop)
			}
		}
	}
	if !sawProperties {
		return nil, ErrMissingProperties
	}
	if err := s.Finalize(); err != nil {
		return nil, err
	}
	return s, nil
}

// FromMap builds a Schema from an already-decoded generic document, such as
// a JSON request body or an MCP tool argument. Plain maps carry no
// declaration order, so properties are declared in sorted-name order.
func FromMap(doc map[string]any) (*Schema, error) {
	if doc == nil {
		return nil, ErrMissingProperties
	}
	if t, ok := doc["type"].(string); ok && t != "object" {
		return nil, fmt.Errorf("%w, got %q", ErrNotObject, t)
	}
	rawProps, ok := doc["properties"].(map[string]any)
	if !ok {
		return nil, ErrMissingProperties
	}

	s := New()
	names := make([]string, 0, len(rawProps))
	for name := range rawProps {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		prop, err := decodeProperty(rawProps[name])
		if err != nil {
			return nil, fmt.Errorf("property %q: %w", name, err)
		}
		s.Declare(name, prop)
	}
	if req, ok := doc["required"]; ok {
		if err := decodeInto(req, &s.Required); err != nil {
			return nil, fmt.Errorf("parse required list: %w", err)
		}
	}
	if err := s.Finalize(); err != nil {
		return nil, err
	}
	return s, nil
}

// decodeProperty maps one generic property definition onto the typed struct.
// Decoding is weakly typed so that numeric fields accept both int and
// float64 inputs, which differ between YAML, JSON and hand-built maps. A
// null definition declares a plain string property.
func decodeProperty(raw any) (*Property, error) {
	var prop Property
	if raw == nil {
		return &prop, nil
	}
	if err := decodeInto(raw, &prop); err != nil {
		return nil, err
	}
	return &prop, nil
}

func decodeInto(raw, target any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(raw)
}

// MarshalJSON serializes the schema as a JSON-schema style document with
// properties emitted in declaration order.
func (s *Schema) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"type":"object","properties":{`)
	for i, name := range s.Names() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(s.Properties[name])
		if err != nil {
			return nil, fmt.Errorf("property %q: %w", name, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	if len(s.Required) > 0 {
		req, err := json.Marshal(s.Required)
		if err != nil {
			return nil, err
		}
		buf.WriteString(`,"required":`)
		buf.Write(req)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON deserializes a schema document, preserving property order.
func (s *Schema) UnmarshalJSON(data []byte) error {
	if s == nil {
		return fmt.Errorf("schema: UnmarshalJSON on nil pointer")
	}
	if strings.TrimSpace(string(data)) == "null" {
		return nil
	}
	parsed, err := Parse(data)
	if err != nil {
		return err
	}
	*s = *parsed
	return nil
}
