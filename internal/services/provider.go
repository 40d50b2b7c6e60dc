package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"alfredoptarigan/career-assistant/internal/config"
)

// NewInferenceFromConfig picks the inference provider named by LLM_PROVIDER.
func NewInferenceFromConfig(ctx context.Context, cfg *config.Config) (InferenceService, error) {
	switch cfg.LLM.Provider {
	case config.ProviderHuggingFace:
		if cfg.HuggingFace.APIKey == "" {
			log.Warn().Msg("⚠️ HF_API_KEY is empty, every generation will report a missing key")
		}
		return NewHuggingFaceService(HuggingFaceOptions{
			APIKey:       cfg.HuggingFace.APIKey,
			ModelID:      cfg.HuggingFace.ModelID,
			APIURL:       cfg.HuggingFace.APIURL,
			ChatURL:      cfg.HuggingFace.ChatURL,
			MaxNewTokens: cfg.LLM.MaxNewTokens,
			Timeout:      cfg.LLM.Timeout,
		}), nil
	case config.ProviderGemini:
		if cfg.Gemini.APIKey == "" {
			log.Warn().Msg("⚠️ GEMINI_API_KEY is empty, every generation will report a missing key")
		}
		return NewGeminiService(ctx, GeminiOptions{
			APIKey:       cfg.Gemini.APIKey,
			Model:        cfg.Gemini.Model,
			BaseURL:      cfg.Gemini.BaseURL,
			MaxNewTokens: cfg.LLM.MaxNewTokens,
			Timeout:      cfg.LLM.Timeout,
		})
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.LLM.Provider)
	}
}
