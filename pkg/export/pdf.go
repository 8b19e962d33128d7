package export

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
)

// WritePDF renders document HTML to a PDF stream. Layout is intentionally
// plain: headings bold, body text in a readable serif-free face. The PDF
// sink consumes final HTML and never alters generation output.
func WritePDF(w io.Writer, htmlContent string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	// core fonts are cp1252; translate so currency symbols survive
	translate := pdf.UnicodeTranslatorFromDescriptor("")

	for _, b := range blocks(htmlContent) {
		if b.heading {
			pdf.SetFont("Arial", "B", 14)
			pdf.MultiCell(0, 8, translate(b.text), "", "L", false)
			pdf.Ln(2)
			continue
		}
		pdf.SetFont("Arial", "", 11)
		pdf.MultiCell(0, 6, translate(b.text), "", "L", false)
		pdf.Ln(1)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("export: write pdf: %w", err)
	}
	return nil
}
