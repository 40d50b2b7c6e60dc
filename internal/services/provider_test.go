package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/career-assistant/internal/config"
	"alfredoptarigan/career-assistant/internal/services"
)

func TestNewInferenceFromConfig(t *testing.T) {
	cfg := &config.Config{
		LLM:         config.LLMConfig{Provider: config.ProviderHuggingFace, MaxNewTokens: 700},
		HuggingFace: config.HuggingFaceConfig{ModelID: "test-org/test-model"},
		Gemini:      config.GeminiConfig{Model: "gemini-2.5-flash"},
	}

	svc, err := services.NewInferenceFromConfig(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, "huggingface", svc.Provider())
	assert.Equal(t, "test-org/test-model", svc.Model())

	cfg.LLM.Provider = config.ProviderGemini
	svc, err = services.NewInferenceFromConfig(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, "gemini", svc.Provider())
	outcome := svc.Generate(context.Background(), "prompt")
	assert.Equal(t, services.OutcomeNotConfigured, outcome.Kind)

	cfg.LLM.Provider = "openai"
	_, err = services.NewInferenceFromConfig(context.Background(), cfg)
	assert.Error(t, err)
}
