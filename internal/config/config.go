// Package config assembles Proton's configuration from environment
// variables, optionally seeded from a .env file.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/harjot/proton/internal/diagram"
	"github.com/harjot/proton/internal/llm"
	"github.com/harjot/proton/internal/syllabus"
	"github.com/harjot/proton/internal/tutor"
)

// Config holds everything the app needs at startup.
type Config struct {
	// Resolver is "hosted" (the configured model provider), "static"
	// (built-in table), or a provider name which implies hosted.
	Resolver string

	Grade      int
	Language   tutor.Language
	Structured bool

	DBPath string

	LLM     llm.Config
	Diagram diagram.Config
}

// Load reads configuration from the environment. A .env file in the
// working directory is loaded first when present; its absence is not an
// error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Resolver:   getEnv("PROTON_RESOLVER", "hosted"),
		Grade:      getEnvInt("PROTON_GRADE", 6),
		Structured: getEnvBool("PROTON_STRUCTURED", false),
		DBPath:     os.Getenv("PROTON_DB"),
		LLM:        llm.ConfigFromEnv(),
		Diagram:    diagramFromEnv(),
	}

	lang, err := tutor.ParseLanguage(getEnv("PROTON_LANGUAGE", "english"))
	if err != nil {
		return nil, err
	}
	cfg.Language = lang

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks selector ranges. Provider credentials are validated by
// the llm and diagram factories at construction time.
func (c *Config) Validate() error {
	if !syllabus.ValidGrade(c.Grade) {
		return fmt.Errorf("PROTON_GRADE must be between %d and %d, got %d",
			syllabus.MinGrade, syllabus.MaxGrade, c.Grade)
	}

	switch c.Resolver {
	case "hosted", "static", "groq", "openai", "gemini", "anthropic", "mock":
	default:
		return fmt.Errorf("unknown resolver %q", c.Resolver)
	}
	return nil
}

// UsesHostedResolver reports whether a model provider is needed.
func (c *Config) UsesHostedResolver() bool {
	return c.Resolver != "static"
}

// ProviderName returns the model provider to use. A concrete provider
// name in Resolver overrides the PROTON_LLM_PROVIDER setting.
func (c *Config) ProviderName() string {
	switch c.Resolver {
	case "hosted", "static":
		return c.LLM.Provider
	default:
		return c.Resolver
	}
}

func diagramFromEnv() diagram.Config {
	cfg := diagram.DefaultConfig()

	if b := os.Getenv("PROTON_DIAGRAM_BACKEND"); b != "" {
		cfg.Backend = b
	}
	cfg.HuggingFaceKey = os.Getenv("PROTON_HF_API_KEY")
	cfg.GoogleAPIKey = os.Getenv("PROTON_GOOGLE_API_KEY")
	cfg.GoogleCX = os.Getenv("PROTON_GOOGLE_CX")
	if k := getEnvInt("PROTON_DIAGRAM_TOPK", 0); k > 0 {
		cfg.TopK = k
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
