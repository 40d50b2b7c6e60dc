package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"
)

type HuggingFaceOptions struct {
	APIKey       string
	ModelID      string
	APIURL       string
	ChatURL      string
	MaxNewTokens int
	Timeout      time.Duration
}

type huggingFaceService struct {
	client       *resty.Client
	apiKey       string
	modelID      string
	apiURL       string
	chatURL      string
	maxNewTokens int
}

// hfError is a failed Hugging Face call that carries the HTTP status and the
// server's error message.
type hfError struct {
	Status  int
	Message string
}

func (e *hfError) Error() string {
	return fmt.Sprintf("hugging face api error (status %d): %s", e.Status, e.Message)
}

func NewHuggingFaceService(opts HuggingFaceOptions) InferenceService {
	if opts.MaxNewTokens <= 0 {
		opts.MaxNewTokens = 700
	}

	client := resty.New().
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	if opts.Timeout > 0 {
		client.SetTimeout(opts.Timeout)
	}
	if opts.APIKey != "" {
		client.SetAuthToken(opts.APIKey)
	}

	return &huggingFaceService{
		client:       client,
		apiKey:       opts.APIKey,
		modelID:      opts.ModelID,
		apiURL:       strings.TrimRight(opts.APIURL, "/"),
		chatURL:      opts.ChatURL,
		maxNewTokens: opts.MaxNewTokens,
	}
}

func (h *huggingFaceService) Provider() string { return "huggingface" }

func (h *huggingFaceService) Model() string { return h.modelID }

// Generate tries single-turn text generation first and retries once as a
// chat completion when the model only accepts conversational input.
func (h *huggingFaceService) Generate(ctx context.Context, prompt string) Outcome {
	if h.apiKey == "" {
		log.Error().Msg("❌ Hugging Face API key is not configured")
		return failure(OutcomeNotConfigured, errors.New("hugging face api key not configured"))
	}

	text, err := h.textGeneration(ctx, prompt)
	if err == nil {
		log.Info().Str("model", h.modelID).Int("chars", len(text)).Msg("✅ HF text generation completed")
		return success(text)
	}

	if !requiresConversational(err) {
		return h.classify(err)
	}

	log.Warn().Err(err).Str("model", h.modelID).Msg("⚠️ Text generation not supported, retrying as chat completion")

	text, err = h.chatCompletion(ctx, prompt)
	if err != nil {
		outcome := h.classify(err)
		if outcome.Kind == OutcomeUpstreamError {
			outcome.Kind = OutcomeModelIncompatible
		}
		return outcome
	}

	log.Info().Str("model", h.modelID).Int("chars", len(text)).Msg("✅ HF chat completion completed")
	return success(text)
}

func (h *huggingFaceService) textGeneration(ctx context.Context, prompt string) (string, error) {
	payload := map[string]any{
		"inputs": prompt,
		"parameters": map[string]any{
			"max_new_tokens":   h.maxNewTokens,
			"return_full_text": false,
		},
	}

	body, err := h.post(ctx, h.apiURL+"/models/"+h.modelID, payload)
	if err != nil {
		return "", err
	}

	if result := gjson.GetBytes(body, "0.generated_text"); result.Exists() {
		return result.String(), nil
	}
	if result := gjson.GetBytes(body, "generated_text"); result.Exists() {
		return result.String(), nil
	}

	log.Warn().Str("body", truncate(string(body), 300)).Msg("⚠️ Unexpected text generation response format")
	return "", &hfError{Status: http.StatusOK, Message: "unexpected text generation response"}
}

func (h *huggingFaceService) chatCompletion(ctx context.Context, prompt string) (string, error) {
	payload := map[string]any{
		"model": h.modelID,
		"messages": []map[string]string{
			{"role": "user", "content": prompt},
		},
		"max_tokens": h.maxNewTokens,
	}

	body, err := h.post(ctx, h.chatURL, payload)
	if err != nil {
		return "", err
	}

	if content := gjson.GetBytes(body, "choices.0.message.content"); content.Exists() && content.String() != "" {
		return content.String(), nil
	}

	// better than nothing: hand back the raw response
	log.Warn().Str("body", truncate(string(body), 300)).Msg("⚠️ Unexpected chat completion response format")
	return string(body), nil
}

func (h *huggingFaceService) post(ctx context.Context, url string, payload any) ([]byte, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(payload).
		Post(url)
	if err != nil {
		return nil, fmt.Errorf("hugging face request failed: %w", err)
	}

	if resp.IsError() {
		return nil, &hfError{Status: resp.StatusCode(), Message: errorMessage(resp.Body())}
	}

	return resp.Body(), nil
}

func (h *huggingFaceService) classify(err error) Outcome {
	var apiErr *hfError
	if !errors.As(err, &apiErr) {
		log.Error().Err(err).Str("model", h.modelID).Msg("❌ Hugging Face transport error")
		return failure(OutcomeTransportError, err)
	}

	kind := kindForStatus(apiErr.Status)
	log.Error().Err(err).Str("model", h.modelID).Str("outcome", string(kind)).Msg("❌ Hugging Face API error")
	return failure(kind, err)
}

func requiresConversational(err error) bool {
	var apiErr *hfError
	if !errors.As(err, &apiErr) {
		return false
	}
	return strings.Contains(strings.ToLower(apiErr.Message), "conversational")
}

// errorMessage pulls the human readable message out of an error body,
// which is either {"error": "..."} or {"error": {"message": "..."}}.
func errorMessage(body []byte) string {
	if msg := gjson.GetBytes(body, "error.message"); msg.Exists() {
		return msg.String()
	}
	if msg := gjson.GetBytes(body, "error"); msg.Exists() {
		return msg.String()
	}
	return truncate(string(body), 500)
}

// truncate cuts s to at most max bytes without splitting a rune.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return s[:max] + "..."
}
