package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"

	"github.com/crieya/projecteval/internal/models"
	"github.com/crieya/projecteval/internal/utils"
)

// readDocument loads the multipart field "file" into memory and resolves
// its media kind from the declared type, the extension, or its content.
func readDocument(c *gin.Context, maxBytes int64, missingMsg string) (models.Document, error) {
	const op = "handlers.readDocument"

	fh, err := c.FormFile("file")
	if err != nil {
		if tooLarge(err) {
			return models.Document{}, utils.E(utils.CodeTooLarge, op, fmt.Sprintf("file too large (max %d MB)", maxBytes>>20), err)
		}
		return models.Document{}, utils.E(utils.CodeInvalidArgument, op, missingMsg, err)
	}
	if fh.Size <= 0 {
		return models.Document{}, utils.E(utils.CodeInvalidArgument, op, missingMsg, nil)
	}
	if fh.Size > maxBytes {
		return models.Document{}, utils.E(utils.CodeTooLarge, op, fmt.Sprintf("file too large (max %d MB)", maxBytes>>20), nil)
	}

	f, err := fh.Open()
	if err != nil {
		return models.Document{}, utils.E(utils.CodeInternal, op, "failed to open upload", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxBytes+1))
	if err != nil {
		return models.Document{}, utils.E(utils.CodeInternal, op, "failed to read upload", err)
	}

	kind, ok := models.ParseMediaKind(fh.Header.Get("Content-Type"), fh.Filename)
	if !ok {
		kind, ok = models.ParseMediaKind(mimetype.Detect(data).String(), "")
	}
	if !ok {
		return models.Document{}, utils.E(utils.CodeUnsupportedMedia, op, "only PDF, PPTX and DOCX files are supported", nil)
	}

	return models.Document{Name: fh.Filename, Kind: kind, Data: data}, nil
}

func tooLarge(err error) bool {
	var mbe *http.MaxBytesError
	return errors.As(err, &mbe)
}
