package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/crieya/projecteval/internal/api/handlers"
	"github.com/crieya/projecteval/internal/api/middleware"
	"github.com/crieya/projecteval/internal/web"
)

type Deps struct {
	Pages       *handlers.PageHandler
	Evaluations *handlers.EvaluationHandler
	Submissions *handlers.SubmissionHandler
	// MaxUpload is the largest accepted file in bytes.
	MaxUpload int64
}

// multipartSlack covers form fields and part headers around the file.
const multipartSlack = 1 << 20

func RegisterRoutes(r *gin.Engine, d Deps) {
	r.SetHTMLTemplate(web.Templates())
	// keep uploads in memory; the multipart parser spills larger bodies to temp files
	r.MaxMultipartMemory = d.MaxUpload + multipartSlack

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	r.GET("/", d.Pages.Index)

	upload := r.Group("/")
	upload.Use(middleware.BodyLimit(d.MaxUpload + multipartSlack))

	upload.POST("/submit", d.Pages.Submit)
	upload.POST("/evaluate", d.Pages.Evaluate)

	api := upload.Group("/api/v1")
	api.POST("/submissions", d.Submissions.Create)
	api.POST("/evaluations", d.Evaluations.Create)
	api.POST("/evaluations/stream", d.Evaluations.Stream)
}
