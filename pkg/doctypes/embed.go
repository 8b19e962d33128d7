package doctypes

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.html
var embeddedTemplates embed.FS

// TemplatesFS exposes the built-in document template bundle so callers can
// reuse or extend it.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
