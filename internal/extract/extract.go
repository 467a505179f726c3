// Package extract turns uploaded documents into plain-text transcripts.
package extract

import (
	"fmt"

	"github.com/crieya/projecteval/internal/models"
	"github.com/crieya/projecteval/internal/utils"
)

// Extract returns the text of doc. A document without readable text yields
// the kind's sentinel transcript, not an error; only unreadable or
// unsupported documents fail.
func Extract(doc models.Document) (models.Transcript, error) {
	const op = "extract.Extract"

	var (
		text string
		err  error
	)
	switch doc.Kind {
	case models.KindPDF:
		text, err = pdfText(doc.Data)
	case models.KindPPTX:
		text, err = slideText(doc.Data)
	case models.KindDOCX:
		text, err = docxText(doc.Data)
	default:
		return "", utils.E(utils.CodeUnsupportedMedia, op, fmt.Sprintf("unsupported file type %q (use PDF, PPTX or DOCX)", doc.Kind), nil)
	}
	if err != nil {
		return "", utils.E(utils.CodeInvalidArgument, op, fmt.Sprintf("could not read the uploaded %s file", doc.Kind), err)
	}

	if models.Blank(text) {
		return models.EmptyTranscript(doc.Kind), nil
	}
	return models.Transcript(text), nil
}
