package api

import (
	"html"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicyOnce sync.Once
	strictPolicy     *bluemonday.Policy
)

// sanitizeText strips any markup from caller-supplied text. Parameters are
// data, not HTML; templates do their own escaping on output, so entities are
// unescaped back to plain text after the policy pass.
func sanitizeText(s string) string {
	strictPolicyOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()
	})
	return html.UnescapeString(strictPolicy.Sanitize(s))
}

// sanitizeParams returns a copy of raw with every string value stripped of
// markup. Non-string values pass through untouched.
func sanitizeParams(raw map[string]any) map[string]any {
	out := make(map[string]any, len(raw))
	for key, value := range raw {
		if s, ok := value.(string); ok {
			out[key] = sanitizeText(s)
			continue
		}
		out[key] = value
	}
	return out
}
