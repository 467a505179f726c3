package handlers

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/crieya/projecteval/internal/models"
	"github.com/crieya/projecteval/internal/utils"
	"github.com/crieya/projecteval/internal/web"
)

const (
	tabSubmit   = "submit"
	tabEvaluate = "evaluate"
)

// PageHandler serves the two-tab HTML form. Errors are shown inline.
type PageHandler struct {
	evals    *EvaluationHandler
	subs     *SubmissionHandler
	driveURL string
}

func NewPageHandler(evals *EvaluationHandler, subs *SubmissionHandler, driveURL string) *PageHandler {
	return &PageHandler{evals: evals, subs: subs, driveURL: driveURL}
}

type pageData struct {
	Tab            string
	Error          string
	Form           models.Submission
	TRL            int
	Domains        []string
	DriveFolderURL string
	MaxFunding     int
	FundingStep    int
	MinTRL         int
	MaxTRL         int
	MaxUploadMB    int64
	Action         models.Action
	Report         template.HTML
}

func (h *PageHandler) data(tab string) pageData {
	return pageData{
		Tab:            tab,
		Form:           models.Submission{Domain: models.Domains[0]},
		TRL:            models.MinTRL,
		Domains:        models.Domains,
		DriveFolderURL: h.driveURL,
		MaxFunding:     models.MaxFundingRequest,
		FundingStep:    models.FundingStep,
		MinTRL:         models.MinTRL,
		MaxTRL:         models.MaxTRL,
		MaxUploadMB:    h.subs.maxUpload >> 20,
	}
}

func (h *PageHandler) Index(c *gin.Context) {
	tab := tabSubmit
	if c.Query("tab") == tabEvaluate {
		tab = tabEvaluate
	}
	c.HTML(http.StatusOK, "index.tmpl", h.data(tab))
}

func (h *PageHandler) Submit(c *gin.Context) {
	dl, err := h.subs.submit(c)
	if err == nil {
		writeDownload(c, dl)
		return
	}

	_ = c.Error(err)
	d := h.data(tabSubmit)
	d.Error = utils.Message(err)
	_ = c.ShouldBind(&d.Form)
	if d.Form.TRL >= models.MinTRL && d.Form.TRL <= models.MaxTRL {
		d.TRL = d.Form.TRL
	}
	c.HTML(utils.HTTPStatus(err), "index.tmpl", d)
}

func (h *PageHandler) Evaluate(c *gin.Context) {
	d := h.data(tabEvaluate)
	d.Action = models.Action(c.PostForm("action"))

	doc, err := readDocument(c, h.evals.maxUpload, missingEvaluationFile)
	if err != nil {
		h.evaluateError(c, d, err)
		return
	}
	rep, err := h.evals.svc.Evaluate(c.Request.Context(), d.Action, doc)
	if err != nil {
		h.evaluateError(c, d, err)
		return
	}

	html, err := web.Markdown(rep.Text)
	if err != nil {
		html = template.HTML("<pre>" + template.HTMLEscapeString(rep.Text) + "</pre>")
	}
	d.Report = html
	c.HTML(http.StatusOK, "index.tmpl", d)
}

func (h *PageHandler) evaluateError(c *gin.Context, d pageData, err error) {
	_ = c.Error(err)
	d.Error = utils.Message(err)
	c.HTML(utils.HTTPStatus(err), "index.tmpl", d)
}
