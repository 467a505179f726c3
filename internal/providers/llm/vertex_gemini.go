package llm

import (
	"context"
	"strings"

	vertexgenai "cloud.google.com/go/vertexai/genai"
	"google.golang.org/api/iterator"
)

type VertexGemini struct {
	client *vertexgenai.Client
	model  *vertexgenai.GenerativeModel
	name   string
}

func NewVertexGemini(ctx context.Context, projectID, location, modelName string) (*VertexGemini, error) {
	c, err := vertexgenai.NewClient(ctx, projectID, location)
	if err != nil {
		return nil, err
	}

	if modelName == "" {
		modelName = DefaultModel
	}

	m := c.GenerativeModel(modelName)
	return &VertexGemini{client: c, model: m, name: modelName}, nil
}

func (v *VertexGemini) Close() error { return v.client.Close() }

func (v *VertexGemini) Model() string { return v.name }

func vertexParts(segments []string) []vertexgenai.Part {
	parts := make([]vertexgenai.Part, 0, len(segments))
	for _, s := range segments {
		parts = append(parts, vertexgenai.Text(s))
	}
	return parts
}

func (v *VertexGemini) Generate(ctx context.Context, segments []string) (string, error) {
	resp, err := v.model.GenerateContent(ctx, vertexParts(segments)...)
	if err != nil {
		return "", err
	}
	text := vertexText(resp)
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

func (v *VertexGemini) StreamAnswer(ctx context.Context, segments []string) (<-chan string, <-chan error) {
	out := make(chan string, 32)
	errs := make(chan error, 1)

	go func() {
		defer close(out)
		defer close(errs)

		it := v.model.GenerateContentStream(ctx, vertexParts(segments)...)
		for {
			resp, err := it.Next()
			if err == iterator.Done {
				return
			}
			if err != nil {
				errs <- err
				return
			}
			if t := vertexText(resp); t != "" {
				if !send(ctx, out, t) {
					return
				}
			}
		}
	}()

	return out, errs
}

// vertexText concatenates the text parts of the first candidate.
func vertexText(resp *vertexgenai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(vertexgenai.Text); ok {
			b.WriteString(string(t))
		}
	}
	return b.String()
}
