// Package testutil builds small in-memory documents for tests.
package testutil

import (
	"archive/zip"
	"bytes"
	"fmt"
	"html"
	"strings"
	"testing"

	"github.com/go-pdf/fpdf"
	"github.com/stretchr/testify/require"
)

// PDF returns a document with one page per entry; empty entries produce
// pages without any text.
func PDF(t testing.TB, pages ...string) []byte {
	t.Helper()

	doc := fpdf.New("P", "pt", "A4", "")
	doc.SetFont("Helvetica", "", 12)
	for _, p := range pages {
		doc.AddPage()
		if p != "" {
			doc.Text(72, 72, p)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, doc.Output(&buf))
	return buf.Bytes()
}

// Shape is one child of a slide's shape tree.
type Shape struct {
	// Picture emits a p:pic, which has no text frame.
	Picture bool
	// Paragraphs of the text frame; nil emits a p:sp without txBody.
	Paragraphs []string
}

// Text is a text box shape with the given paragraphs.
func Text(paragraphs ...string) Shape { return Shape{Paragraphs: paragraphs} }

// Picture is a shape without text.
func Picture() Shape { return Shape{Picture: true} }

const (
	nsA = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsR = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsP = "http://schemas.openxmlformats.org/presentationml/2006/main"
	nsW = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
)

// PPTX returns a deck whose slides appear in the given order. order lists the
// 1-based slide file numbers in presentation order; nil means file order.
func PPTX(t testing.TB, order []int, slides ...[]Shape) []byte {
	t.Helper()

	if order == nil {
		for i := range slides {
			order = append(order, i+1)
		}
	}

	files := map[string]string{}

	var ids, rels strings.Builder
	for i, n := range order {
		fmt.Fprintf(&ids, `<p:sldId id="%d" r:id="rId%d"/>`, 256+i, n+1)
	}
	for i := range slides {
		fmt.Fprintf(&rels, `<Relationship Id="rId%d" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide" Target="slides/slide%d.xml"/>`, i+2, i+1)
	}
	files["ppt/presentation.xml"] = fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:presentation xmlns:a="%s" xmlns:r="%s" xmlns:p="%s"><p:sldIdLst>%s</p:sldIdLst></p:presentation>`, nsA, nsR, nsP, ids.String())
	files["ppt/_rels/presentation.xml.rels"] = fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster" Target="slideMasters/slideMaster1.xml"/>%s</Relationships>`, rels.String())

	for i, shapes := range slides {
		var tree strings.Builder
		tree.WriteString(`<p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr><p:grpSpPr/>`)
		for j, s := range shapes {
			switch {
			case s.Picture:
				fmt.Fprintf(&tree, `<p:pic><p:nvPicPr><p:cNvPr id="%d" name="Picture"/></p:nvPicPr></p:pic>`, j+2)
			case s.Paragraphs == nil:
				fmt.Fprintf(&tree, `<p:sp><p:nvSpPr><p:cNvPr id="%d" name="Shape"/></p:nvSpPr><p:spPr/></p:sp>`, j+2)
			default:
				fmt.Fprintf(&tree, `<p:sp><p:nvSpPr><p:cNvPr id="%d" name="TextBox"/></p:nvSpPr><p:spPr/><p:txBody><a:bodyPr/><a:lstStyle/>`, j+2)
				for _, para := range s.Paragraphs {
					tree.WriteString(`<a:p><a:pPr/>`)
					for k, line := range strings.Split(para, "\n") {
						if k > 0 {
							tree.WriteString(`<a:br/>`)
						}
						fmt.Fprintf(&tree, `<a:r><a:rPr lang="en-US"/><a:t>%s</a:t></a:r>`, html.EscapeString(line))
					}
					tree.WriteString(`<a:endParaRPr lang="en-US"/></a:p>`)
				}
				tree.WriteString(`</p:txBody></p:sp>`)
			}
		}
		files[fmt.Sprintf("ppt/slides/slide%d.xml", i+1)] = fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:sld xmlns:a="%s" xmlns:r="%s" xmlns:p="%s"><p:cSld><p:spTree>%s</p:spTree></p:cSld></p:sld>`, nsA, nsR, nsP, tree.String())
	}

	return zipFiles(t, files)
}

// DOCX returns a Word document with one paragraph per entry.
func DOCX(t testing.TB, paragraphs ...string) []byte {
	t.Helper()

	var body strings.Builder
	for _, p := range paragraphs {
		fmt.Fprintf(&body, `<w:p><w:r><w:t xml:space="preserve">%s</w:t></w:r></w:p>`, html.EscapeString(p))
	}
	files := map[string]string{
		"[Content_Types].xml": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"><Default Extension="xml" ContentType="application/xml"/><Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/></Types>`,
		"word/document.xml": fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="%s"><w:body>%s</w:body></w:document>`, nsW, body.String()),
		"word/_rels/document.xml.rels": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`,
	}
	return zipFiles(t, files)
}

func zipFiles(t testing.TB, files map[string]string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}
