package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"google.golang.org/genai"
)

type GeminiOptions struct {
	APIKey       string
	Model        string
	BaseURL      string
	MaxNewTokens int
	Timeout      time.Duration
}

type geminiService struct {
	client       *genai.Client
	modelName    string
	maxNewTokens int32
}

// NewGeminiService builds a Gemini backed InferenceService. An empty API key
// is not an error: the service then reports OutcomeNotConfigured on every
// call without touching the network.
func NewGeminiService(ctx context.Context, opts GeminiOptions) (InferenceService, error) {
	if opts.MaxNewTokens <= 0 {
		opts.MaxNewTokens = 700
	}

	service := &geminiService{
		modelName:    opts.Model,
		maxNewTokens: int32(opts.MaxNewTokens),
	}
	if opts.APIKey == "" {
		return service, nil
	}

	httpOptions := genai.HTTPOptions{BaseURL: opts.BaseURL}
	if opts.Timeout > 0 {
		httpOptions.Timeout = &opts.Timeout
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      opts.APIKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: httpOptions,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	service.client = client

	return service, nil
}

func (g *geminiService) Provider() string { return "gemini" }

func (g *geminiService) Model() string { return g.modelName }

// Generate implements InferenceService.
func (g *geminiService) Generate(ctx context.Context, prompt string) Outcome {
	if g.client == nil {
		log.Error().Msg("❌ Gemini API key is not configured")
		return failure(OutcomeNotConfigured, errors.New("gemini api key not configured"))
	}

	config := &genai.GenerateContentConfig{
		MaxOutputTokens: g.maxNewTokens,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), config)
	if err != nil && isConversationalOnly(err) {
		log.Warn().Err(err).Str("model", g.modelName).Msg("⚠️ Single-turn generation rejected, retrying as chat")
		return g.generateChat(ctx, prompt, config)
	}
	if err != nil {
		return g.classify(err)
	}

	return g.outcomeFromResponse(resp)
}

func (g *geminiService) generateChat(ctx context.Context, prompt string, config *genai.GenerateContentConfig) Outcome {
	chat, err := g.client.Chats.Create(ctx, g.modelName, config, nil)
	if err != nil {
		return g.classify(err)
	}

	resp, err := chat.SendMessage(ctx, genai.Part{Text: prompt})
	if err != nil {
		outcome := g.classify(err)
		if outcome.Kind == OutcomeUpstreamError {
			outcome.Kind = OutcomeModelIncompatible
		}
		return outcome
	}

	return g.outcomeFromResponse(resp)
}

func (g *geminiService) outcomeFromResponse(resp *genai.GenerateContentResponse) Outcome {
	if resp == nil {
		log.Error().Msg("❌ Gemini API returned nil response")
		return failure(OutcomeUpstreamError, errors.New("no response generated (nil response)"))
	}

	text := resp.Text()
	if text != "" {
		log.Info().Str("model", g.modelName).Int("chars", len(text)).Msg("✅ Gemini generation completed")
		return success(text)
	}

	// Try to extract any content from candidates if available
	var textParts []string
	for _, candidate := range resp.Candidates {
		if candidate.Content != nil {
			textParts = append(textParts, fmt.Sprintf("%v", candidate.Content))
		}
	}
	if len(textParts) > 0 {
		log.Warn().Msg("⚠️ Using fallback string representation of response parts")
		return success(strings.Join(textParts, "\n"))
	}

	return failure(OutcomeUpstreamError, errors.New("no text content in response"))
}

func (g *geminiService) classify(err error) Outcome {
	var apiErr genai.APIError
	if !errors.As(err, &apiErr) {
		log.Error().Err(err).Str("model", g.modelName).Msg("❌ Gemini transport error")
		return failure(OutcomeTransportError, err)
	}

	kind := kindForStatus(apiErr.Code)
	log.Error().Err(err).Str("model", g.modelName).Str("outcome", string(kind)).Msg("❌ Gemini API error")
	return failure(kind, err)
}

func isConversationalOnly(err error) bool {
	var apiErr genai.APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return strings.Contains(strings.ToLower(apiErr.Message), "conversational")
}
