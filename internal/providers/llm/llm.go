package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyResponse is returned when the model answers without any text.
var ErrEmptyResponse = errors.New("empty response from model")

type Provider interface {
	// Generate sends the ordered segments as one user turn and returns the full answer.
	Generate(ctx context.Context, segments []string) (string, error)
	// StreamAnswer returns a stream of text chunks (incremental).
	StreamAnswer(ctx context.Context, segments []string) (chunks <-chan string, errs <-chan error)
	// Model is the model identifier requests are sent to.
	Model() string
	Close() error
}

const DefaultModel = "gemini-1.5-flash"

const (
	BackendGemini = "gemini"
	BackendVertex = "vertex"
)

type Options struct {
	Backend   string
	Model     string
	APIKey    string // gemini
	ProjectID string // vertex
	Location  string // vertex
}

// New returns the provider selected by opts.Backend.
func New(ctx context.Context, opts Options) (Provider, error) {
	switch strings.ToLower(strings.TrimSpace(opts.Backend)) {
	case "", BackendGemini:
		if opts.APIKey == "" {
			return nil, errors.New("GOOGLE_API_KEY is required for the gemini provider")
		}
		return NewGeminiAPI(ctx, opts.APIKey, opts.Model)
	case BackendVertex:
		if opts.ProjectID == "" || opts.Location == "" {
			return nil, errors.New("VERTEX_PROJECT_ID and VERTEX_LOCATION are required for the vertex provider")
		}
		return NewVertexGemini(ctx, opts.ProjectID, opts.Location, opts.Model)
	default:
		return nil, fmt.Errorf("unknown llm provider %q", opts.Backend)
	}
}

// send delivers v unless ctx ends first.
func send[T any](ctx context.Context, ch chan<- T, v T) bool {
	select {
	case ch <- v:
		return true
	case <-ctx.Done():
		return false
	}
}
