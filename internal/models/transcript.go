package models

import "strings"

// Transcript is the plain text extracted from a Document.
type Transcript string

const (
	EmptyPDFTranscript  Transcript = "No text extracted from PDF."
	EmptyPPTXTranscript Transcript = "No extracted text from PPT."
	EmptyDOCXTranscript Transcript = "No text extracted from DOCX."
)

// EmptyTranscript returns the sentinel used when a document of the given
// kind carries no readable text.
func EmptyTranscript(kind MediaKind) Transcript {
	switch kind {
	case KindPPTX:
		return EmptyPPTXTranscript
	case KindDOCX:
		return EmptyDOCXTranscript
	default:
		return EmptyPDFTranscript
	}
}

// IsSentinel reports whether t is one of the "no text" placeholders.
func (t Transcript) IsSentinel() bool {
	switch t {
	case EmptyPDFTranscript, EmptyPPTXTranscript, EmptyDOCXTranscript:
		return true
	}
	return false
}

func (t Transcript) String() string { return string(t) }

// Blank reports whether s has no non-whitespace characters.
func Blank(s string) bool { return strings.TrimSpace(s) == "" }
