package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/crieya/projecteval/internal/models"
	"github.com/crieya/projecteval/internal/providers/llm"
	"github.com/crieya/projecteval/internal/utils"
)

// ReportService sends an assembled bundle to the model. Failures of the
// remote call come back as CodeExternalService errors; there is no retry.
type ReportService interface {
	Generate(ctx context.Context, bundle models.PromptBundle) (*models.Report, error)
	Stream(ctx context.Context, bundle models.PromptBundle) (<-chan string, <-chan error)
}

type reportService struct {
	llm llm.Provider
	log *logrus.Logger
}

func NewReportService(p llm.Provider, log *logrus.Logger) ReportService {
	return &reportService{llm: p, log: log}
}

func (s *reportService) Generate(ctx context.Context, bundle models.PromptBundle) (*models.Report, error) {
	const op = "ReportService.Generate"

	text, err := s.llm.Generate(ctx, bundle.Segments())
	if err != nil {
		s.log.WithError(err).WithField("model", s.llm.Model()).Error("model request failed")
		return nil, externalError(op, err)
	}

	s.log.WithFields(logrus.Fields{
		"model":        s.llm.Model(),
		"report_chars": len(text),
	}).Info("report generated")

	return &models.Report{Model: s.llm.Model(), Text: text}, nil
}

func (s *reportService) Stream(ctx context.Context, bundle models.PromptBundle) (<-chan string, <-chan error) {
	const op = "ReportService.Stream"

	chunks, errs := s.llm.StreamAnswer(ctx, bundle.Segments())
	out := make(chan string, cap(chunks))
	outErrs := make(chan error, 1)

	go func() {
		defer close(out)
		defer close(outErrs)

		total := 0
		for c := range chunks {
			total += len(c)
			select {
			case out <- c:
			case <-ctx.Done():
				outErrs <- externalError(op, ctx.Err())
				return
			}
		}
		if err := ctx.Err(); err != nil {
			outErrs <- externalError(op, err)
			return
		}
		if err := <-errs; err != nil {
			s.log.WithError(err).WithField("model", s.llm.Model()).Error("model stream failed")
			outErrs <- externalError(op, err)
			return
		}
		if total == 0 {
			outErrs <- externalError(op, llm.ErrEmptyResponse)
			return
		}
		s.log.WithFields(logrus.Fields{
			"model":        s.llm.Model(),
			"report_chars": total,
		}).Info("report streamed")
	}()

	return out, outErrs
}

func externalError(op string, err error) error {
	return utils.E(utils.CodeExternalService, op, fmt.Sprintf("evaluation model request failed: %v", err), err)
}
