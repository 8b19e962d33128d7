package params

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/radhagarine/docgenius/pkg/schema"
)

// Validate checks raw caller input against a document schema and returns the
// coerced parameter mapping. It is a pure function of its inputs: no
// defaults are injected (defaults are a form-prefill concern) and optional
// fields absent from raw stay absent from the result.
func Validate(s schema.Schema, raw map[string]any) (Values, error) {
	var missing []string
	for _, field := range s.RequiredFields() {
		value, ok := raw[field.ID]
		if !ok || isEmpty(value) {
			missing = append(missing, field.Label)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingFieldsError{Labels: missing}
	}

	out := make(Values, len(raw))
	for _, field := range s.Fields() {
		value, ok := raw[field.ID]
		if !ok {
			continue
		}
		coerced, err := coerce(field, value)
		if err != nil {
			return nil, err
		}
		out[field.ID] = coerced
	}
	return out, nil
}

func coerce(field schema.Field, value any) (any, error) {
	switch field.Kind {
	case schema.KindNumber:
		return coerceNumber(field.ID, value)
	case schema.KindDate:
		return coerceDate(field.ID, value)
	case schema.KindSelect:
		return coerceSelect(field, value)
	default:
		// text and textarea pass through unchanged
		return value, nil
	}
}

func coerceNumber(fieldID string, value any) (float64, error) {
	switch n := value.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, &InvalidValueError{FieldID: fieldID, Reason: fmt.Sprintf("%q is not a number", n)}
		}
		return parsed, nil
	default:
		return 0, &InvalidValueError{FieldID: fieldID, Reason: fmt.Sprintf("unsupported numeric type %T", value)}
	}
}

// coerceDate accepts an already-typed time.Time or a string. Strings pass
// through uninterpreted; parsing belongs to the caller's date widget.
func coerceDate(fieldID string, value any) (any, error) {
	switch value.(type) {
	case time.Time, string:
		return value, nil
	default:
		return nil, &InvalidValueError{FieldID: fieldID, Reason: fmt.Sprintf("unsupported date type %T", value)}
	}
}

func coerceSelect(field schema.Field, value any) (string, error) {
	s, ok := value.(string)
	if !ok {
		s = fmt.Sprint(value)
	}
	for _, option := range field.Options {
		if option == s {
			return s, nil
		}
	}
	return "", &InvalidValueError{FieldID: field.ID, Reason: fmt.Sprintf("%q is not one of the allowed options", s)}
}

// isEmpty mirrors the truthiness test the form layer historically applied to
// required fields: nil, blank strings, numeric zero, false, and empty
// collections all count as unset.
func isEmpty(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	case bool:
		return !v
	case int:
		return v == 0
	case int64:
		return v == 0
	case float32:
		return v == 0
	case float64:
		return v == 0
	case time.Time:
		return v.IsZero()
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() == 0
	}
	return false
}
