package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "OLLAMA_URL", "OLLAMA_MODEL", "LLM_TIMEOUT", "LOG_MODE", "STATIC_DIR", "BODY_LIMIT_MB", "UPLOAD_MAX_MB"} {
		t.Setenv(k, "")
	}

	cfg := Load()

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "http://localhost:11434", cfg.OllamaURL)
	assert.Equal(t, "llama3", cfg.OllamaModel)
	assert.Equal(t, 60*time.Second, cfg.LLMTimeout)
	assert.Equal(t, "dev", cfg.LogMode)
	assert.Equal(t, "frontend", cfg.StaticDir)
	assert.Equal(t, 50, cfg.BodyLimitMB)
	assert.Equal(t, 15, cfg.UploadMaxMB)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("OLLAMA_URL", "http://ollama:11434")
	t.Setenv("OLLAMA_MODEL", "mistral")
	t.Setenv("LLM_TIMEOUT", "2m")
	t.Setenv("BODY_LIMIT_MB", "5")

	cfg := Load()

	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, "http://ollama:11434", cfg.OllamaURL)
	assert.Equal(t, "mistral", cfg.OllamaModel)
	assert.Equal(t, 2*time.Minute, cfg.LLMTimeout)
	assert.Equal(t, 5, cfg.BodyLimitMB)
}

func TestGetEnvDuration(t *testing.T) {
	cases := map[string]time.Duration{
		"":       time.Second,
		"45":     45 * time.Second,
		"1500ms": 1500 * time.Millisecond,
		"-5s":    time.Second,
		"soon":   time.Second,
	}
	for in, want := range cases {
		t.Setenv("TEST_DURATION", in)
		assert.Equal(t, want, getEnvDuration("TEST_DURATION", time.Second), "input %q", in)
	}
}

func TestGetEnvInt_IgnoresInvalid(t *testing.T) {
	t.Setenv("TEST_INT", "abc")
	assert.Equal(t, 7, getEnvInt("TEST_INT", 7))
	t.Setenv("TEST_INT", "0")
	assert.Equal(t, 7, getEnvInt("TEST_INT", 7))
}
