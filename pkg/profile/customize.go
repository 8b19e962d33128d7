package profile

import (
	"fmt"
	"strings"
)

// placeholderTerm is the generic word in document bodies that industry
// terminology replaces, one occurrence per term.
const placeholderTerm = "implementation"

// Customize rewrites rendered HTML for the user's industry. The
// transformation is additive-safe: terminology already present is not
// substituted again, focus points already mentioned are not appended, so
// customizing already-customized content is a no-op. A nil profile or an
// unknown industry returns the content unchanged. Brand color rewriting is
// the branding package's job.
func Customize(content string, p *IndustryProfile) string {
	if p == nil {
		return content
	}

	traits, ok := traitsFor(p.Industry)
	if !ok {
		return content
	}
	for _, term := range traits.terms {
		if strings.Contains(content, term) {
			continue
		}
		content = strings.Replace(content, placeholderTerm, term, 1)
	}
	for _, point := range traits.focusPoints {
		if strings.Contains(content, point) {
			continue
		}
		content += fmt.Sprintf("\n<p><strong>Industry note:</strong> This document should be reviewed with particular attention to %s.</p>", point)
	}
	return content
}
