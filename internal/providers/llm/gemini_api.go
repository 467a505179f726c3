package llm

import (
	"context"
	"strings"

	"google.golang.org/genai"
)

// GeminiAPI talks to the Gemini developer API with an API key.
type GeminiAPI struct {
	client *genai.Client
	model  string
}

func NewGeminiAPI(ctx context.Context, apiKey, modelName string) (*GeminiAPI, error) {
	c, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	if modelName == "" {
		modelName = DefaultModel
	}
	return &GeminiAPI{client: c, model: modelName}, nil
}

func (g *GeminiAPI) Close() error { return nil }

func (g *GeminiAPI) Model() string { return g.model }

// contents packs the segments as ordered parts of a single user turn.
func geminiContents(segments []string) []*genai.Content {
	parts := make([]*genai.Part, 0, len(segments))
	for _, s := range segments {
		parts = append(parts, genai.NewPartFromText(s))
	}
	return []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}
}

func (g *GeminiAPI) Generate(ctx context.Context, segments []string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, geminiContents(segments), nil)
	if err != nil {
		return "", err
	}
	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

func (g *GeminiAPI) StreamAnswer(ctx context.Context, segments []string) (<-chan string, <-chan error) {
	out := make(chan string, 32)
	errs := make(chan error, 1)

	go func() {
		defer close(out)
		defer close(errs)

		for resp, err := range g.client.Models.GenerateContentStream(ctx, g.model, geminiContents(segments), nil) {
			if err != nil {
				errs <- err
				return
			}
			if t := resp.Text(); t != "" {
				if !send(ctx, out, t) {
					return
				}
			}
		}
	}()

	return out, errs
}
