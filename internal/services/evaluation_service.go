package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/crieya/projecteval/internal/extract"
	"github.com/crieya/projecteval/internal/models"
	"github.com/crieya/projecteval/internal/prompts"
	"github.com/crieya/projecteval/internal/utils"
)

// EvaluationService backs the "Evaluate Project" tab.
type EvaluationService interface {
	Evaluate(ctx context.Context, action models.Action, doc models.Document) (*models.Report, error)
	// Stream fails early on input or extraction errors; model errors arrive on the channel.
	Stream(ctx context.Context, action models.Action, doc models.Document) (<-chan string, <-chan error, error)
}

type evaluationService struct {
	reports ReportService
	log     *logrus.Logger
}

func NewEvaluationService(reports ReportService, log *logrus.Logger) EvaluationService {
	return &evaluationService{reports: reports, log: log}
}

func (s *evaluationService) Evaluate(ctx context.Context, action models.Action, doc models.Document) (*models.Report, error) {
	bundle, err := s.prepare("EvaluationService.Evaluate", action, doc)
	if err != nil {
		return nil, err
	}

	rep, err := s.reports.Generate(ctx, bundle)
	if err != nil {
		return nil, err
	}
	rep.Action = action
	return rep, nil
}

func (s *evaluationService) Stream(ctx context.Context, action models.Action, doc models.Document) (<-chan string, <-chan error, error) {
	bundle, err := s.prepare("EvaluationService.Stream", action, doc)
	if err != nil {
		return nil, nil, err
	}
	chunks, errs := s.reports.Stream(ctx, bundle)
	return chunks, errs, nil
}

func (s *evaluationService) prepare(op string, action models.Action, doc models.Document) (models.PromptBundle, error) {
	if len(doc.Data) == 0 {
		return models.PromptBundle{}, utils.E(utils.CodeInvalidArgument, op, "please upload a project file for evaluation", nil)
	}
	if !action.Valid() {
		return models.PromptBundle{}, utils.E(utils.CodeInvalidArgument, op, "action must be 'score' or 'improve'", nil)
	}

	transcript, err := extract.Extract(doc)
	if err != nil {
		return models.PromptBundle{}, err
	}

	s.log.WithFields(logrus.Fields{
		"op":               op,
		"action":           action,
		"kind":             doc.Kind,
		"bytes":            len(doc.Data),
		"transcript_chars": len(transcript),
		"empty":            transcript.IsSentinel(),
	}).Info("document extracted")

	bundle, _ := prompts.For(action, transcript)
	return bundle, nil
}
