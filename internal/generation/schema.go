package generation

import (
	"encoding/json"
	"fmt"
	"strings"
)

// SchemaKind is the top-level shape a structured response must have.
type SchemaKind string

const (
	KindArrayOfStrings SchemaKind = "array"
	KindObject         SchemaKind = "object"
)

// Field is one named string property of an object schema.
type Field struct {
	Name        string
	Description string
}

// Schema is the response-shape contract attached to structured generation
// calls. Providers render it natively when they can, otherwise they embed
// Contract in the prompt.
type Schema struct {
	Kind     SchemaKind
	Fields   []Field  // object only, in output order
	Required []string // object only
}

// ArrayOfStrings returns a schema for a JSON array of strings.
func ArrayOfStrings() *Schema {
	return &Schema{Kind: KindArrayOfStrings}
}

// Object returns a schema for a JSON object whose fields are all strings.
// Every field is required.
func Object(fields ...Field) *Schema {
	required := make([]string, len(fields))
	for i, f := range fields {
		required[i] = f.Name
	}
	return &Schema{Kind: KindObject, Fields: fields, Required: required}
}

// Contract renders the schema as a JSON template for prompt embedding.
func (s *Schema) Contract() string {
	if s.Kind == KindArrayOfStrings {
		return `["<string>", "<string>", ...]`
	}

	var b strings.Builder
	b.WriteString("{\n")
	for i, f := range s.Fields {
		desc, _ := json.Marshal("<" + f.Description + ">")
		fmt.Fprintf(&b, "  %q: %s", f.Name, desc)
		if i < len(s.Fields)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString("}")
	return b.String()
}

// decodeStrings parses a non-empty JSON array of strings.
func decodeStrings(raw string) ([]string, error) {
	var items []string
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("decode string array: %w", err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("decode string array: empty array")
	}
	return items, nil
}

// decodeObject parses a JSON object and checks that every required field is
// a non-empty string. Unknown fields are ignored.
func (s *Schema) decodeObject(raw string) (map[string]string, error) {
	var obj map[string]any
	if err := json.Unmarshal([]byte(raw), &obj); err != nil {
		return nil, fmt.Errorf("decode object: %w", err)
	}
	if obj == nil {
		return nil, fmt.Errorf("decode object: null")
	}

	out := make(map[string]string, len(s.Fields))
	for _, name := range s.Required {
		v, ok := obj[name]
		if !ok {
			return nil, fmt.Errorf("decode object: missing field %q", name)
		}
		str, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("decode object: field %q is %T, want string", name, v)
		}
		if strings.TrimSpace(str) == "" {
			return nil, fmt.Errorf("decode object: field %q is empty", name)
		}
		out[name] = str
	}
	return out, nil
}
