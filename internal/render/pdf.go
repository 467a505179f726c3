// Package render regenerates a downloadable PDF from a transcript.
package render

import (
	"bytes"
	"fmt"
	"strings"
	"unicode"

	"github.com/go-pdf/fpdf"

	"github.com/crieya/projecteval/internal/models"
)

// MaxChars is how much of the transcript is drawn.
const MaxChars = 1000

const (
	fontFamily = "Helvetica"
	fontSize   = 11
	lineHeight = 14
	margin     = 72
)

// Truncate returns the first MaxChars characters of text.
func Truncate(text string) string {
	n := 0
	for i := range text {
		if n == MaxChars {
			return text[:i]
		}
		n++
	}
	return text
}

// Filename derives the download name from the project title: spaces become
// underscores and characters unsafe in a header or path are dropped.
func Filename(title string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(title) {
		switch {
		case r == ' ':
			b.WriteRune('_')
		case r == '/', r == '\\', r == '"', r == ':', r == '*', r == '?', r == '<', r == '>', r == '|':
		case unicode.IsControl(r):
		default:
			b.WriteRune(r)
		}
	}
	name := strings.Trim(b.String(), ".")
	if name == "" {
		name = "project"
	}
	return name + ".pdf"
}

// PDF draws the truncated transcript on A4 pages and returns the file bytes.
// Nothing is written to disk.
func PDF(sub models.Submission, transcript models.Transcript) ([]byte, error) {
	doc := fpdf.New("P", "pt", "A4", "")
	doc.SetTitle(sub.Title, true)
	doc.SetSubject(fmt.Sprintf("%s | TRL %d | funding request %d INR", sub.Domain, sub.TRL, sub.FundingRequest), true)
	doc.SetCreator("CRIEYA project evaluation", true)
	doc.SetMargins(margin, margin, margin)
	doc.SetAutoPageBreak(true, margin)
	doc.AddPage()
	doc.SetFont(fontFamily, "", fontSize)

	tr := doc.UnicodeTranslatorFromDescriptor("")
	w, _ := doc.GetPageSize()
	doc.MultiCell(w-2*margin, lineHeight, tr(Truncate(transcript.String())), "", "L", false)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
