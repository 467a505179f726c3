package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/crieya/projecteval/internal/models"
	"github.com/crieya/projecteval/internal/services"
	"github.com/crieya/projecteval/internal/utils"
)

type SubmissionHandler struct {
	svc       services.SubmissionService
	maxUpload int64
}

func NewSubmissionHandler(svc services.SubmissionService, maxUpload int64) *SubmissionHandler {
	return &SubmissionHandler{svc: svc, maxUpload: maxUpload}
}

// Create answers with the regenerated PDF as an attachment.
func (h *SubmissionHandler) Create(c *gin.Context) {
	dl, err := h.submit(c)
	if err != nil {
		writeError(c, err)
		return
	}
	writeDownload(c, dl)
}

func (h *SubmissionHandler) submit(c *gin.Context) (*models.Download, error) {
	var sub models.Submission
	if err := c.ShouldBind(&sub); err != nil {
		if tooLarge(err) {
			return nil, utils.E(utils.CodeTooLarge, "SubmissionHandler.Create", "upload too large", err)
		}
		return nil, utils.E(utils.CodeInvalidArgument, "SubmissionHandler.Create", "invalid form fields", err)
	}
	if err := services.ValidateSubmission(sub); err != nil {
		return nil, err
	}

	doc, err := readDocument(c, h.maxUpload, services.MissingDetailsMessage)
	if err != nil {
		return nil, err
	}
	return h.svc.Submit(c.Request.Context(), sub, doc)
}
