package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crieya/projecteval/internal/api/handlers"
	"github.com/crieya/projecteval/internal/logger"
	"github.com/crieya/projecteval/internal/models"
	"github.com/crieya/projecteval/internal/prompts"
	"github.com/crieya/projecteval/internal/services"
	"github.com/crieya/projecteval/internal/testutil"
	"github.com/crieya/projecteval/internal/utils"
)

func init() { gin.SetMode(gin.TestMode) }

type fakeProvider struct {
	answer   string
	err      error
	segments []string
}

func (f *fakeProvider) Generate(_ context.Context, segments []string) (string, error) {
	f.segments = segments
	return f.answer, f.err
}

func (f *fakeProvider) StreamAnswer(_ context.Context, segments []string) (<-chan string, <-chan error) {
	f.segments = segments
	out := make(chan string, 2)
	errs := make(chan error, 1)
	if f.answer != "" {
		half := len(f.answer) / 2
		out <- f.answer[:half]
		out <- f.answer[half:]
	}
	if f.err != nil {
		errs <- f.err
	}
	close(out)
	close(errs)
	return out, errs
}

func (f *fakeProvider) Model() string { return "fake-model" }
func (f *fakeProvider) Close() error  { return nil }

func newRouter(p *fakeProvider, maxUpload int64) *gin.Engine {
	l := logger.NewWithOutput(io.Discard, "error")
	evalSvc := services.NewEvaluationService(services.NewReportService(p, l), l)
	subSvc := services.NewSubmissionService(l)

	evals := handlers.NewEvaluationHandler(evalSvc, maxUpload)
	subs := handlers.NewSubmissionHandler(subSvc, maxUpload)

	r := gin.New()
	r.Use(gin.Recovery())
	RegisterRoutes(r, Deps{
		Pages:       handlers.NewPageHandler(evals, subs, "https://drive.example/folder"),
		Evaluations: evals,
		Submissions: subs,
		MaxUpload:   maxUpload,
	})
	return r
}

type upload struct {
	filename    string
	contentType string
	data        []byte
}

func multipartRequest(t *testing.T, path string, fields map[string]string, file *upload) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if file != nil {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, file.filename))
		h.Set("Content-Type", file.contentType)
		part, err := mw.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(file.data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func deck(t *testing.T) *upload {
	return &upload{
		filename:    "pitch.pptx",
		contentType: models.MimePPTX,
		data:        testutil.PPTX(t, nil, []testutil.Shape{testutil.Text("Low-cost prosthetic hand")}),
	}
}

type closeNotifyingRecorder struct {
	*httptest.ResponseRecorder
	closed chan bool
}

func (r *closeNotifyingRecorder) CloseNotify() <-chan bool { return r.closed }

func TestIndexTabs(t *testing.T) {
	r := newRouter(&fakeProvider{}, 1<<20)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Submit Your Project for Evaluation")
	assert.Contains(t, w.Body.String(), "https://drive.example/folder")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/?tab=evaluate", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Evaluate a Project")
}

func TestAPIEvaluation(t *testing.T) {
	p := &fakeProvider{answer: "Overall rating: 7/10"}
	r := newRouter(p, 1<<20)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, multipartRequest(t, "/api/v1/evaluations", map[string]string{"action": "score"}, deck(t)))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var rep models.Report
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rep))
	assert.Equal(t, "Overall rating: 7/10", rep.Text)
	assert.Equal(t, models.ActionScore, rep.Action)
	assert.Equal(t, []string{prompts.EvaluationPersona, prompts.ScoringTask, "Low-cost prosthetic hand"}, p.segments)
}

func TestAPIEvaluationExternalFailure(t *testing.T) {
	r := newRouter(&fakeProvider{err: errors.New("API key not valid")}, 1<<20)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, multipartRequest(t, "/api/v1/evaluations", map[string]string{"action": "improve"}, deck(t)))
	require.Equal(t, http.StatusBadGateway, w.Code)

	var apiErr handlers.APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apiErr))
	assert.Equal(t, utils.CodeExternalService, apiErr.Code)
	assert.Contains(t, apiErr.Message, "API key not valid")
}

func TestAPIEvaluationInputErrors(t *testing.T) {
	r := newRouter(&fakeProvider{answer: "x"}, 4<<10)

	tests := []struct {
		name   string
		file   *upload
		status int
	}{
		{"missing file", nil, http.StatusBadRequest},
		{"unsupported type", &upload{"notes.txt", "text/plain", []byte("hello")}, http.StatusUnsupportedMediaType},
		{"too large", &upload{"big.pdf", models.MimePDF, bytes.Repeat([]byte("a"), 5<<10)}, http.StatusRequestEntityTooLarge},
		{"corrupt pdf", &upload{"bad.pdf", models.MimePDF, []byte("%PDF-1.7 broken")}, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, multipartRequest(t, "/api/v1/evaluations", map[string]string{"action": "score"}, tt.file))
			assert.Equal(t, tt.status, w.Code, w.Body.String())
		})
	}
}

func TestAPIEvaluationSniffsGenericType(t *testing.T) {
	p := &fakeProvider{answer: "ok"}
	r := newRouter(p, 1<<20)

	file := &upload{"upload", "application/octet-stream", testutil.PDF(t, "Sniffed")}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, multipartRequest(t, "/api/v1/evaluations", map[string]string{"action": "score"}, file))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.Len(t, p.segments, 3)
	assert.Contains(t, p.segments[2], "Sniffed")
}

func TestAPIEvaluationStream(t *testing.T) {
	r := newRouter(&fakeProvider{answer: "Streamed report"}, 1<<20)

	w := &closeNotifyingRecorder{httptest.NewRecorder(), make(chan bool, 1)}
	r.ServeHTTP(w, multipartRequest(t, "/api/v1/evaluations/stream", map[string]string{"action": "score"}, deck(t)))

	body := w.Body.String()
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, body, "event:chunk")
	assert.Contains(t, body, "event:done")
	assert.NotContains(t, body, "event:error")
}

func TestAPIEvaluationStreamFailure(t *testing.T) {
	r := newRouter(&fakeProvider{err: errors.New("quota exceeded")}, 1<<20)

	w := &closeNotifyingRecorder{httptest.NewRecorder(), make(chan bool, 1)}
	r.ServeHTTP(w, multipartRequest(t, "/api/v1/evaluations/stream", map[string]string{"action": "score"}, deck(t)))

	assert.Contains(t, w.Body.String(), "event:error")
	assert.Contains(t, w.Body.String(), "quota exceeded")
}

func TestAPISubmission(t *testing.T) {
	r := newRouter(&fakeProvider{}, 1<<20)

	fields := map[string]string{"title": "Solar Cold Storage", "domain": "Energy", "funding_request": "300000", "trl": "5"}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, multipartRequest(t, "/api/v1/submissions", fields, deck(t)))

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, models.MimePDF, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "Solar_Cold_Storage.pdf")
	assert.True(t, strings.HasPrefix(w.Body.String(), "%PDF-"))
}

func TestAPISubmissionMissingInput(t *testing.T) {
	r := newRouter(&fakeProvider{}, 1<<20)

	fields := map[string]string{"domain": "Energy", "trl": "2"}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, multipartRequest(t, "/api/v1/submissions", fields, deck(t)))
	require.Equal(t, http.StatusBadRequest, w.Code)

	var apiErr handlers.APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apiErr))
	assert.Equal(t, services.MissingDetailsMessage, apiErr.Message)

	fields = map[string]string{"title": "T", "domain": "Energy", "trl": "2"}
	w = httptest.NewRecorder()
	r.ServeHTTP(w, multipartRequest(t, "/api/v1/submissions", fields, nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFormSubmitShowsInlineError(t *testing.T) {
	r := newRouter(&fakeProvider{}, 1<<20)

	fields := map[string]string{"title": "Drone Mapper", "domain": "Other", "funding_request": "900000", "trl": "4"}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, multipartRequest(t, "/submit", fields, deck(t)))

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "funding request must be between 0 and 500000")
	assert.Contains(t, w.Body.String(), `value="Drone Mapper"`)
}

func TestFormSubmitDownloads(t *testing.T) {
	r := newRouter(&fakeProvider{}, 1<<20)

	fields := map[string]string{"title": "Drone Mapper", "domain": "Other", "funding_request": "5000", "trl": "4"}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, multipartRequest(t, "/submit", fields, deck(t)))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
}

func TestFormEvaluateRendersReport(t *testing.T) {
	r := newRouter(&fakeProvider{answer: "## Strengths\n\n- **Clear** roadmap"}, 1<<20)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, multipartRequest(t, "/evaluate", map[string]string{"action": "improve"}, deck(t)))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Improvement Suggestions")
	assert.Contains(t, body, "<h2>Strengths</h2>")
	assert.Contains(t, body, "<strong>Clear</strong>")
}

func TestFormEvaluateExternalFailure(t *testing.T) {
	r := newRouter(&fakeProvider{err: errors.New("deadline exceeded")}, 1<<20)

	w := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		r.ServeHTTP(w, multipartRequest(t, "/evaluate", map[string]string{"action": "score"}, deck(t)))
	})
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "deadline exceeded")
}

func TestFormEvaluateWithoutFile(t *testing.T) {
	r := newRouter(&fakeProvider{answer: "x"}, 1<<20)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, multipartRequest(t, "/evaluate", map[string]string{"action": "score"}, nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "please upload a project file for evaluation")
}
