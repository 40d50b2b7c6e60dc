package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"alfredoptarigan/career-assistant/internal/services"
)

type MockInferenceService struct {
	mock.Mock
	ProviderName string
	ModelName    string
}

func (m *MockInferenceService) Generate(ctx context.Context, prompt string) services.Outcome {
	args := m.Called(ctx, prompt)

	return args.Get(0).(services.Outcome)
}

func (m *MockInferenceService) Provider() string {
	if m.ProviderName == "" {
		return "mock"
	}
	return m.ProviderName
}

func (m *MockInferenceService) Model() string {
	if m.ModelName == "" {
		return "mock-model"
	}
	return m.ModelName
}
