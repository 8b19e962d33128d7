package params

import (
	"fmt"
	"strings"
	"time"
)

// Values holds validated parameters keyed by field id. Values are coerced to
// the semantic type implied by the field kind: numbers as float64, dates as
// time.Time (or an uninterpreted string when the caller supplied one), text
// fields as strings. Renderers consume Values read-only.
type Values map[string]any

// String returns the value for id rendered as a string, or fallback when the
// key is absent or empty.
func (v Values) String(id, fallback string) string {
	raw, ok := v[id]
	if !ok || raw == nil {
		return fallback
	}
	s := fmt.Sprint(raw)
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

// Number returns the float64 value for id, or fallback when absent or not a
// number.
func (v Values) Number(id string, fallback float64) float64 {
	raw, ok := v[id]
	if !ok {
		return fallback
	}
	n, ok := raw.(float64)
	if !ok {
		return fallback
	}
	return n
}

// Has reports whether id carries a non-empty value.
func (v Values) Has(id string) bool {
	raw, ok := v[id]
	if !ok {
		return false
	}
	return !isEmpty(raw)
}

// longDateLayout is the "Month Day, Year" style used in generated documents.
const longDateLayout = "January 2, 2006"

// Date returns the value for id formatted long-form when it is a time.Time,
// passed through unchanged when it is a string, and "" otherwise.
func (v Values) Date(id string) string {
	switch value := v[id].(type) {
	case time.Time:
		if value.IsZero() {
			return ""
		}
		return value.Format(longDateLayout)
	case string:
		return value
	default:
		return ""
	}
}

// FormatDate renders a date value the way document bodies expect.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(longDateLayout)
}
