package schema

import (
	"fmt"
	"strings"
)

// FieldKind is the closed enum of input kinds a document field can declare.
type FieldKind string

const (
	KindText     FieldKind = "text"
	KindLongText FieldKind = "textarea"
	KindDate     FieldKind = "date"
	KindNumber   FieldKind = "number"
	KindSelect   FieldKind = "select"
)

// Valid reports whether the kind is one of the supported variants.
func (k FieldKind) Valid() bool {
	switch k {
	case KindText, KindLongText, KindDate, KindNumber, KindSelect:
		return true
	default:
		return false
	}
}

// Field describes a single document parameter. ID is the key used for
// lookups during validation and rendering and must be unique within a schema.
type Field struct {
	ID       string    `json:"id" yaml:"id"`
	Label    string    `json:"label" yaml:"label"`
	Kind     FieldKind `json:"kind" yaml:"kind"`
	Required bool      `json:"required" yaml:"required"`
	Default  any       `json:"default,omitempty" yaml:"default,omitempty"`
	Options  []string  `json:"options,omitempty" yaml:"options,omitempty"`
	Help     string    `json:"help,omitempty" yaml:"help,omitempty"`
}

// Section groups fields for form layout and validation reporting.
type Section struct {
	Title  string  `json:"title" yaml:"title"`
	Fields []Field `json:"fields" yaml:"fields"`
}

// Schema is the declarative field definition for one document type. Schemas
// are built at package init time and never mutated afterwards, so they are
// safe to share between concurrent callers.
type Schema struct {
	TypeID      string    `json:"typeId" yaml:"type_id"`
	DisplayName string    `json:"displayName" yaml:"display_name"`
	Sections    []Section `json:"sections" yaml:"sections"`
}

// Fields returns every field in declaration order across all sections.
func (s Schema) Fields() []Field {
	var out []Field
	for _, section := range s.Sections {
		out = append(out, section.Fields...)
	}
	return out
}

// FieldByID looks up a field by its id.
func (s Schema) FieldByID(id string) (Field, bool) {
	for _, section := range s.Sections {
		for _, field := range section.Fields {
			if field.ID == id {
				return field, true
			}
		}
	}
	return Field{}, false
}

// RequiredFields returns the required fields in declaration order.
func (s Schema) RequiredFields() []Field {
	var out []Field
	for _, field := range s.Fields() {
		if field.Required {
			out = append(out, field)
		}
	}
	return out
}

// Validate enforces the structural invariants every registered schema must
// hold: a non-empty type id, unique field ids, a valid kind per field,
// non-empty options exactly for select fields, and defaults that are legal
// values for their kind.
func (s Schema) Validate() error {
	if strings.TrimSpace(s.TypeID) == "" {
		return fmt.Errorf("schema: type id is required")
	}
	seen := make(map[string]struct{})
	for _, section := range s.Sections {
		for _, field := range section.Fields {
			if strings.TrimSpace(field.ID) == "" {
				return fmt.Errorf("schema %s: field in section %q has empty id", s.TypeID, section.Title)
			}
			if _, dup := seen[field.ID]; dup {
				return fmt.Errorf("schema %s: duplicate field id %q", s.TypeID, field.ID)
			}
			seen[field.ID] = struct{}{}

			if !field.Kind.Valid() {
				return fmt.Errorf("schema %s: field %q has unknown kind %q", s.TypeID, field.ID, field.Kind)
			}
			if field.Kind == KindSelect && len(field.Options) == 0 {
				return fmt.Errorf("schema %s: select field %q has no options", s.TypeID, field.ID)
			}
			if field.Kind != KindSelect && len(field.Options) > 0 {
				return fmt.Errorf("schema %s: field %q declares options but is not a select", s.TypeID, field.ID)
			}
			if err := validateDefault(field); err != nil {
				return fmt.Errorf("schema %s: %w", s.TypeID, err)
			}
		}
	}
	return nil
}

func validateDefault(field Field) error {
	if field.Default == nil {
		return nil
	}
	switch field.Kind {
	case KindText, KindLongText, KindDate:
		if _, ok := field.Default.(string); !ok {
			return fmt.Errorf("field %q: default must be a string for kind %s", field.ID, field.Kind)
		}
	case KindNumber:
		switch field.Default.(type) {
		case int, int64, float32, float64:
		default:
			return fmt.Errorf("field %q: default must be numeric", field.ID)
		}
	case KindSelect:
		value, ok := field.Default.(string)
		if !ok {
			return fmt.Errorf("field %q: select default must be a string", field.ID)
		}
		for _, option := range field.Options {
			if option == value {
				return nil
			}
		}
		return fmt.Errorf("field %q: default %q is not one of the declared options", field.ID, value)
	}
	return nil
}
