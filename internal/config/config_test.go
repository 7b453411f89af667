package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harjot/proton/internal/tutor"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "hosted", cfg.Resolver)
	assert.Equal(t, 6, cfg.Grade)
	assert.Equal(t, tutor.English, cfg.Language)
	assert.False(t, cfg.Structured)
	assert.Equal(t, "pollinations", cfg.Diagram.Backend)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PROTON_RESOLVER", "static")
	t.Setenv("PROTON_GRADE", "9")
	t.Setenv("PROTON_LANGUAGE", "punjabi")
	t.Setenv("PROTON_STRUCTURED", "true")
	t.Setenv("PROTON_DIAGRAM_BACKEND", "fallback")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "static", cfg.Resolver)
	assert.Equal(t, 9, cfg.Grade)
	assert.Equal(t, tutor.Punjabi, cfg.Language)
	assert.True(t, cfg.Structured)
	assert.False(t, cfg.UsesHostedResolver())
	assert.Equal(t, "fallback", cfg.Diagram.Backend)
}

func TestLoad_RejectsBadGrade(t *testing.T) {
	t.Setenv("PROTON_GRADE", "12")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_RejectsBadLanguage(t *testing.T) {
	t.Setenv("PROTON_LANGUAGE", "klingon")

	_, err := Load()
	require.Error(t, err)
}

func TestConfig_ProviderName(t *testing.T) {
	cfg := &Config{Resolver: "gemini"}
	assert.Equal(t, "gemini", cfg.ProviderName())

	cfg = &Config{Resolver: "hosted"}
	cfg.LLM.Provider = "groq"
	assert.Equal(t, "groq", cfg.ProviderName())
}
