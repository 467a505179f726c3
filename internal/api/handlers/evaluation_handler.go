package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/crieya/projecteval/internal/models"
	"github.com/crieya/projecteval/internal/services"
	"github.com/crieya/projecteval/internal/utils"
)

const missingEvaluationFile = "please upload a project file for evaluation"

type EvaluationHandler struct {
	svc       services.EvaluationService
	maxUpload int64
}

func NewEvaluationHandler(svc services.EvaluationService, maxUpload int64) *EvaluationHandler {
	return &EvaluationHandler{svc: svc, maxUpload: maxUpload}
}

// Create runs one evaluation and returns the report as JSON.
func (h *EvaluationHandler) Create(c *gin.Context) {
	action := models.Action(c.PostForm("action"))
	doc, err := readDocument(c, h.maxUpload, missingEvaluationFile)
	if err != nil {
		writeError(c, err)
		return
	}

	rep, err := h.svc.Evaluate(c.Request.Context(), action, doc)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, rep)
}

// Stream runs one evaluation and relays the answer as server-sent events:
// "chunk" per text piece, then "done" or "error".
func (h *EvaluationHandler) Stream(c *gin.Context) {
	action := models.Action(c.PostForm("action"))
	doc, err := readDocument(c, h.maxUpload, missingEvaluationFile)
	if err != nil {
		writeError(c, err)
		return
	}

	ctx := c.Request.Context()
	chunks, errs, err := h.svc.Stream(ctx, action, doc)
	if err != nil {
		writeError(c, err)
		return
	}

	c.Header("Cache-Control", "no-store")
	c.Stream(func(w io.Writer) bool {
		select {
		case chunk, ok := <-chunks:
			if ok {
				c.SSEvent("chunk", chunk)
				return true
			}
			if err := <-errs; err != nil {
				_ = c.Error(err)
				c.SSEvent("error", APIError{Code: utils.CodeExternalService, Message: utils.Message(err)})
				return false
			}
			c.SSEvent("done", gin.H{"action": action})
			return false
		case <-ctx.Done():
			return false
		}
	})
}
