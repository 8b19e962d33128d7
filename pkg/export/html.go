// Package export renders generated HTML documents to PDF and DOCX. Both
// sinks consume final HTML; neither feeds anything back into generation.
package export

import (
	"html"
	"regexp"
	"strings"
)

var (
	blockCloseRe = regexp.MustCompile(`(?i)</(p|div|h[1-6]|tr|li|table)>`)
	brRe         = regexp.MustCompile(`(?i)<br\s*/?>`)
	headingRe    = regexp.MustCompile(`(?i)<h[1-6][^>]*>(.*?)</h[1-6]>`)
	tagRe        = regexp.MustCompile(`<[^>]*>`)
	blankRe      = regexp.MustCompile(`\n{3,}`)
)

// block is one logical paragraph of a document, extracted from HTML.
type block struct {
	text    string
	heading bool
}

// blocks flattens document HTML into styled paragraphs. Inline markup is
// dropped; headings keep a flag so sinks can emphasize them.
func blocks(htmlContent string) []block {
	marked := headingRe.ReplaceAllString(htmlContent, "\n\x01$1\n")
	marked = brRe.ReplaceAllString(marked, "\n")
	marked = blockCloseRe.ReplaceAllString(marked, "$0\n")
	plain := tagRe.ReplaceAllString(marked, "")
	plain = html.UnescapeString(plain)
	plain = blankRe.ReplaceAllString(plain, "\n\n")

	var out []block
	for _, line := range strings.Split(plain, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "\x01") {
			out = append(out, block{text: strings.TrimSpace(strings.TrimPrefix(line, "\x01")), heading: true})
			continue
		}
		out = append(out, block{text: line})
	}
	return out
}
