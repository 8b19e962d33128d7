package render

import "io"

// TemplateRenderer is the engine seam document templates render through. It
// keeps the document packages independent from the concrete template engine
// so tests can substitute a stub.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	GlobalContext(data any) error
}
