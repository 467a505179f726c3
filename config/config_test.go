package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crieya/projecteval/internal/providers/llm"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "release", cfg.GinMode)
	assert.Equal(t, "gemini-1.5-flash", cfg.LLMModel)
	assert.Equal(t, int64(25<<20), cfg.MaxUploadBytes())
	assert.Equal(t, DefaultDriveFolderURL, cfg.DriveFolderURL)
	assert.Equal(t, 30*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 120*time.Second, cfg.WriteTimeout)
}

func TestParseOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LLM_PROVIDER", "Vertex")
	t.Setenv("VERTEX_PROJECT_ID", "crieya-dev")
	t.Setenv("MAX_UPLOAD_MB", "5")
	t.Setenv("HTTP_WRITE_TIMEOUT", "45s")

	cfg, err := Parse()
	require.NoError(t, err)

	opts := cfg.LLMOptions()
	assert.Equal(t, llm.BackendVertex, opts.Backend)
	assert.Equal(t, "crieya-dev", opts.ProjectID)
	assert.Equal(t, "us-central1", opts.Location)
	assert.Equal(t, int64(5<<20), cfg.MaxUploadBytes())
	assert.Equal(t, 45*time.Second, cfg.WriteTimeout)
}

func TestParseRejectsBadValues(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"PORT", "http"},
		{"PORT", "70000"},
		{"MAX_UPLOAD_MB", "0"},
		{"MAX_UPLOAD_MB", "lots"},
		{"LLM_PROVIDER", "openai"},
		{"HTTP_READ_TIMEOUT", "soon"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Parse()
			assert.Error(t, err)
		})
	}
}
