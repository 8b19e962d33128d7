package export

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// Minimal OOXML package: content types, package relationships, and the
// document part. That is all Word needs to open a flat document.
const docxContentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Default Extension="xml" ContentType="application/xml"/>
  <Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const docxRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

// WriteDOCX renders document HTML into a Word package. Each HTML block
// becomes one paragraph; headings map to bold runs.
func WriteDOCX(w io.Writer, htmlContent string) error {
	archive := zip.NewWriter(w)

	parts := []struct {
		name, content string
	}{
		{"[Content_Types].xml", docxContentTypes},
		{"_rels/.rels", docxRels},
		{"word/document.xml", documentXML(htmlContent)},
	}
	for _, part := range parts {
		f, err := archive.Create(part.name)
		if err != nil {
			return fmt.Errorf("export: create docx part %s: %w", part.name, err)
		}
		if _, err := f.Write([]byte(part.content)); err != nil {
			return fmt.Errorf("export: write docx part %s: %w", part.name, err)
		}
	}

	if err := archive.Close(); err != nil {
		return fmt.Errorf("export: finalize docx: %w", err)
	}
	return nil
}

func documentXML(htmlContent string) string {
	var body strings.Builder
	for _, b := range blocks(htmlContent) {
		body.WriteString(paragraphXML(b))
	}

	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n" +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
		`<w:body>` + body.String() + `</w:body></w:document>`
}

func paragraphXML(b block) string {
	var buf strings.Builder
	buf.WriteString("<w:p>")
	if b.heading {
		buf.WriteString(`<w:pPr><w:rPr><w:b/></w:rPr></w:pPr><w:r><w:rPr><w:b/></w:rPr>`)
	} else {
		buf.WriteString("<w:r>")
	}
	buf.WriteString(`<w:t xml:space="preserve">`)
	_ = xml.EscapeText(&buf, []byte(b.text))
	buf.WriteString("</w:t></w:r></w:p>")
	return buf.String()
}
