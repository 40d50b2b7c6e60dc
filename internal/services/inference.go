package services

import (
	"context"
	"net/http"
)

const (
	ApologyMessage       = "Sorry, I could not generate a response at this time."
	NotConfiguredMessage = "Inference API key not configured."
)

type OutcomeKind string

const (
	OutcomeSuccess           OutcomeKind = "success"
	OutcomeNotConfigured     OutcomeKind = "not_configured"
	OutcomeRateLimited       OutcomeKind = "rate_limited"
	OutcomeAuthFailed        OutcomeKind = "auth_failed"
	OutcomeModelIncompatible OutcomeKind = "model_incompatible"
	OutcomeTransportError    OutcomeKind = "transport_error"
	OutcomeUpstreamError     OutcomeKind = "upstream_error"
)

// Outcome is the tagged result of one inference call. Text is only
// meaningful when Kind is OutcomeSuccess.
type Outcome struct {
	Kind OutcomeKind
	Text string
	Err  error
}

func (o Outcome) OK() bool {
	return o.Kind == OutcomeSuccess
}

// Message is what a caller can show to a user for this outcome.
func (o Outcome) Message() string {
	switch o.Kind {
	case OutcomeSuccess:
		return o.Text
	case OutcomeNotConfigured:
		return NotConfiguredMessage
	default:
		return ApologyMessage
	}
}

// InferenceService generates text for a prompt. Implementations never
// return a Go error: every failure is folded into the Outcome.
type InferenceService interface {
	Generate(ctx context.Context, prompt string) Outcome
	Provider() string
	Model() string
}

func success(text string) Outcome {
	return Outcome{Kind: OutcomeSuccess, Text: text}
}

func failure(kind OutcomeKind, err error) Outcome {
	return Outcome{Kind: kind, Err: err}
}

// kindForStatus maps an HTTP status of a failed call to an outcome kind.
func kindForStatus(status int) OutcomeKind {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return OutcomeAuthFailed
	case http.StatusTooManyRequests:
		return OutcomeRateLimited
	default:
		return OutcomeUpstreamError
	}
}
