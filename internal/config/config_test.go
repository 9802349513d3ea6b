package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFromEnv_Defaults(t *testing.T) {
	cfg, err := NewFromEnv(WithTargetLanguage("Spanish"))
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:11434/v1", cfg.LLM.APIURL)
	assert.Equal(t, "llama3", cfg.LLM.Model)
	assert.Equal(t, 20, cfg.Translate.BatchSize)
	assert.Equal(t, 2, cfg.Translate.MaxRetries)
	assert.Equal(t, "Spanish", cfg.Translate.TargetLanguage)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestNewFromEnv_EnvOverrides(t *testing.T) {
	t.Setenv("LLM_MODEL", "mistral")
	t.Setenv("BATCH_SIZE", "5")
	t.Setenv("MAX_RETRIES", "4")

	cfg, err := NewFromEnv(WithTargetLanguage("French"))
	require.NoError(t, err)

	assert.Equal(t, "mistral", cfg.LLM.Model)
	assert.Equal(t, 5, cfg.Translate.BatchSize)
	assert.Equal(t, 4, cfg.Translate.MaxRetries)
}

func TestNewFromEnv_FlagsBeatEnv(t *testing.T) {
	t.Setenv("LLM_MODEL", "mistral")

	cfg, err := NewFromEnv(
		WithTargetLanguage("German"),
		WithModel("qwen2"),
		WithBatchSize(10),
		WithMaxRetries(3),
	)
	require.NoError(t, err)

	assert.Equal(t, "qwen2", cfg.LLM.Model)
	assert.Equal(t, 10, cfg.Translate.BatchSize)
	assert.Equal(t, 3, cfg.Translate.MaxRetries)
}

func TestNewFromEnv_RequiresTargetLanguage(t *testing.T) {
	_, err := NewFromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "target language")
}

func TestNewFromEnv_RejectsBadValues(t *testing.T) {
	t.Setenv("BATCH_SIZE", "-1")
	_, err := NewFromEnv(WithTargetLanguage("Spanish"))
	require.Error(t, err)
}

func TestNewFromEnv_IgnoresUnparsableEnv(t *testing.T) {
	t.Setenv("BATCH_SIZE", "twenty")

	cfg, err := NewFromEnv(WithTargetLanguage("Spanish"))
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.Translate.BatchSize)
}
