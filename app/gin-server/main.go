package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/crieya/projecteval/config"
	"github.com/crieya/projecteval/internal/api/handlers"
	"github.com/crieya/projecteval/internal/api/middleware"
	"github.com/crieya/projecteval/internal/api/routes"
	"github.com/crieya/projecteval/internal/logger"
	"github.com/crieya/projecteval/internal/providers/llm"
	"github.com/crieya/projecteval/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	l := logger.New(cfg.LogLevel)
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// LLM provider
	provider, err := llm.New(ctx, cfg.LLMOptions())
	if err != nil {
		l.WithError(err).Fatal("llm provider init failed")
	}
	defer provider.Close()
	l.WithFields(logrus.Fields{
		"provider": cfg.LLMProvider,
		"model":    provider.Model(),
	}).Info("llm provider ready")

	// Services
	reportSvc := services.NewReportService(provider, l)
	evalSvc := services.NewEvaluationService(reportSvc, l)
	subSvc := services.NewSubmissionService(l)

	// Handlers
	maxUpload := cfg.MaxUploadBytes()
	evals := handlers.NewEvaluationHandler(evalSvc, maxUpload)
	subs := handlers.NewSubmissionHandler(subSvc, maxUpload)
	pages := handlers.NewPageHandler(evals, subs, cfg.DriveFolderURL)

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(l))
	routes.RegisterRoutes(r, routes.Deps{
		Pages:       pages,
		Evaluations: evals,
		Submissions: subs,
		MaxUpload:   maxUpload,
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		l.WithField("addr", srv.Addr).Info("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			l.WithError(err).Fatal("http server failed")
		}
	}()

	<-ctx.Done()
	l.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		l.WithError(err).Error("graceful shutdown failed")
	}
}
