package validation

import (
	"encoding/json"
	"fmt"
)

// FieldType is the JSON type a schema field must hold.
type FieldType uint8

const (
	TypeString FieldType = iota + 1
	TypeNumber
)

func (t FieldType) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeNumber:
		return "number"
	default:
		return "unknown"
	}
}

// Field describes one checked attribute of a request body.
type Field struct {
	Name     string
	Type     FieldType
	Required bool
}

// Options controls how a Schema reports failures.
type Options struct {
	// AbortEarly stops at the first failing field instead of collecting
	// every failure.
	AbortEarly bool
}

// Schema validates untyped request bodies. Attributes not listed in the
// schema are allowed and left untouched.
type Schema struct {
	fields []Field
}

// NewSchema builds a Schema that checks fields in the given order.
func NewSchema(fields ...Field) *Schema {
	return &Schema{fields: fields}
}

// ProductSchema requires a string name and a numeric price.
var ProductSchema = NewSchema(
	Field{Name: "name", Type: TypeString, Required: true},
	Field{Name: "price", Type: TypeNumber, Required: true},
)

// Validate checks body against the schema.
//
// It returns nil or a non-empty CustomValidationErrors.
func (s *Schema) Validate(body map[string]any, opts Options) error {
	var failures CustomValidationErrors

	for _, f := range s.fields {
		msg, ok := s.check(f, body)
		if ok {
			continue
		}

		failures = append(failures, CustomValidationError{Field: f.Name, Message: msg})
		if opts.AbortEarly {
			break
		}
	}

	if len(failures) == 0 {
		return nil
	}
	return failures
}

func (s *Schema) check(f Field, body map[string]any) (string, bool) {
	value, present := body[f.Name]

	// JSON null counts as absent.
	if !present || value == nil {
		if f.Required {
			return requiredMessage(f.Name), false
		}
		return "", true
	}

	switch f.Type {
	case TypeString:
		str, ok := value.(string)
		if !ok {
			return typeMessage(f, value), false
		}
		if f.Required && str == "" {
			return requiredMessage(f.Name), false
		}

	case TypeNumber:
		if !isNumber(value) {
			return typeMessage(f, value), false
		}
	}

	return "", true
}

func isNumber(v any) bool {
	switch v.(type) {
	case json.Number, float64, float32, int, int32, int64, uint, uint32, uint64:
		return true
	default:
		return false
	}
}

func requiredMessage(field string) string {
	return field + " is a required field"
}

func typeMessage(f Field, value any) string {
	final, err := json.Marshal(value)
	if err != nil {
		final = []byte(fmt.Sprint(value))
	}
	return fmt.Sprintf("%s must be a `%s` type, but the final value was: `%s`.", f.Name, f.Type, final)
}
