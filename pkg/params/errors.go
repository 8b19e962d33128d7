package params

import (
	"fmt"
	"strings"
)

// MissingFieldsError reports required fields that were absent or empty in the
// raw input. Labels are human readable and follow field declaration order.
type MissingFieldsError struct {
	Labels []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("params: missing required fields: %s", strings.Join(e.Labels, ", "))
}

// InvalidValueError reports a raw value that could not be coerced to its
// field's declared kind, or a select value outside the allowed options.
type InvalidValueError struct {
	FieldID string
	Reason  string
}

func (e *InvalidValueError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("params: invalid value for field %q", e.FieldID)
	}
	return fmt.Sprintf("params: invalid value for field %q: %s", e.FieldID, e.Reason)
}
