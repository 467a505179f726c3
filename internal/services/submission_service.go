package services

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/crieya/projecteval/internal/extract"
	"github.com/crieya/projecteval/internal/models"
	"github.com/crieya/projecteval/internal/render"
	"github.com/crieya/projecteval/internal/utils"
)

// MissingDetailsMessage is shown when a required field or the file is absent.
const MissingDetailsMessage = "please fill in all details and upload a file"

// SubmissionService backs the "Submit Project" tab: it turns the uploaded
// file into a regenerated PDF for manual upload to the shared folder.
type SubmissionService interface {
	Submit(ctx context.Context, sub models.Submission, doc models.Document) (*models.Download, error)
}

type submissionService struct {
	log *logrus.Logger
}

func NewSubmissionService(log *logrus.Logger) SubmissionService {
	return &submissionService{log: log}
}

func (s *submissionService) Submit(ctx context.Context, sub models.Submission, doc models.Document) (*models.Download, error) {
	const op = "SubmissionService.Submit"

	sub.Title = strings.TrimSpace(sub.Title)
	sub.Domain = strings.TrimSpace(sub.Domain)
	if err := ValidateSubmission(sub); err != nil {
		return nil, err
	}
	if len(doc.Data) == 0 {
		return nil, utils.E(utils.CodeInvalidArgument, op, MissingDetailsMessage, nil)
	}

	transcript, err := extract.Extract(doc)
	if err != nil {
		return nil, err
	}

	data, err := render.PDF(sub, transcript)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to generate the PDF", err)
	}

	s.log.WithFields(logrus.Fields{
		"domain":           sub.Domain,
		"trl":              sub.TRL,
		"funding_request":  sub.FundingRequest,
		"kind":             doc.Kind,
		"transcript_chars": len(transcript),
		"pdf_bytes":        len(data),
	}).Info("submission pdf generated")

	return &models.Download{
		Filename:    render.Filename(sub.Title),
		ContentType: models.MimePDF,
		Data:        data,
	}, nil
}

// ValidateSubmission checks the form fields against the form's limits.
func ValidateSubmission(sub models.Submission) error {
	const op = "ValidateSubmission"

	if strings.TrimSpace(sub.Title) == "" || strings.TrimSpace(sub.Domain) == "" {
		return utils.E(utils.CodeInvalidArgument, op, MissingDetailsMessage, nil)
	}
	if !slices.Contains(models.Domains, strings.TrimSpace(sub.Domain)) {
		return utils.E(utils.CodeInvalidArgument, op, fmt.Sprintf("domain must be one of: %s", strings.Join(models.Domains, ", ")), nil)
	}
	if sub.FundingRequest < 0 || sub.FundingRequest > models.MaxFundingRequest {
		return utils.E(utils.CodeInvalidArgument, op, fmt.Sprintf("funding request must be between 0 and %d", models.MaxFundingRequest), nil)
	}
	if sub.TRL < models.MinTRL || sub.TRL > models.MaxTRL {
		return utils.E(utils.CodeInvalidArgument, op, fmt.Sprintf("TRL must be between %d and %d", models.MinTRL, models.MaxTRL), nil)
	}
	return nil
}
