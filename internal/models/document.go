package models

import (
	"path/filepath"
	"strings"
)

type MediaKind string

const (
	KindPDF  MediaKind = "pdf"
	KindPPTX MediaKind = "pptx"
	KindDOCX MediaKind = "docx"
)

const (
	MimePDF  = "application/pdf"
	MimePPTX = "application/vnd.openxmlformats-officedocument.presentationml.presentation"
	MimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// ParseMediaKind resolves the kind from the declared MIME/type string and
// falls back to the file extension when the declared type says nothing useful.
func ParseMediaKind(declared, filename string) (MediaKind, bool) {
	t := strings.ToLower(strings.TrimSpace(declared))
	switch {
	case strings.Contains(t, "pdf"):
		return KindPDF, true
	case strings.Contains(t, "presentationml"),
		strings.Contains(t, "powerpoint"),
		strings.Contains(t, "ppt"):
		return KindPPTX, true
	case strings.Contains(t, "wordprocessingml"):
		return KindDOCX, true
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return KindPDF, true
	case ".pptx":
		return KindPPTX, true
	case ".docx":
		return KindDOCX, true
	}
	return "", false
}

// Document is an uploaded file. It lives for one request only.
type Document struct {
	Name string
	Kind MediaKind
	Data []byte
}
