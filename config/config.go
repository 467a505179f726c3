package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"

	"github.com/crieya/projecteval/internal/providers/llm"
)

const DefaultDriveFolderURL = "https://drive.google.com/drive/folders/13noPc-ZIUeUKFGwDjOZGEHPIqi2Hg0ZA?usp=sharing"

type Config struct {
	Port     string `env:"PORT" envDefault:"8080"`
	GinMode  string `env:"GIN_MODE" envDefault:"release"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	LLMProvider     string `env:"LLM_PROVIDER" envDefault:"gemini"`
	GoogleAPIKey    string `env:"GOOGLE_API_KEY"`
	VertexProjectID string `env:"VERTEX_PROJECT_ID"`
	VertexLocation  string `env:"VERTEX_LOCATION" envDefault:"us-central1"`
	LLMModel        string `env:"LLM_MODEL" envDefault:"gemini-1.5-flash"`

	MaxUploadMB    int64  `env:"MAX_UPLOAD_MB" envDefault:"25"`
	DriveFolderURL string `env:"DRIVE_FOLDER_URL" envDefault:"https://drive.google.com/drive/folders/13noPc-ZIUeUKFGwDjOZGEHPIqi2Hg0ZA?usp=sharing"`

	ReadTimeout  time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"30s"`
	WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"120s"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return Parse()
}

func Parse() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks ranges only. Provider credentials are checked when the
// provider is built.
func (c *Config) Validate() error {
	if p, err := strconv.Atoi(c.Port); err != nil || p <= 0 || p > 65535 {
		return fmt.Errorf("PORT must be a TCP port number, got %q", c.Port)
	}
	if c.MaxUploadMB <= 0 {
		return errors.New("MAX_UPLOAD_MB must be positive")
	}
	switch strings.ToLower(c.LLMProvider) {
	case llm.BackendGemini, llm.BackendVertex:
	default:
		return fmt.Errorf("LLM_PROVIDER must be %q or %q, got %q", llm.BackendGemini, llm.BackendVertex, c.LLMProvider)
	}
	return nil
}

func (c *Config) Addr() string { return ":" + c.Port }

func (c *Config) MaxUploadBytes() int64 { return c.MaxUploadMB << 20 }

func (c *Config) LLMOptions() llm.Options {
	return llm.Options{
		Backend:   strings.ToLower(c.LLMProvider),
		Model:     c.LLMModel,
		APIKey:    c.GoogleAPIKey,
		ProjectID: c.VertexProjectID,
		Location:  c.VertexLocation,
	}
}
