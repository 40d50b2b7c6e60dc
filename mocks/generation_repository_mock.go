package mocks

import (
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"alfredoptarigan/career-assistant/internal/models"
)

type MockGenerationRepository struct {
	mock.Mock
}

func (m *MockGenerationRepository) Create(gen *models.Generation) error {
	args := m.Called(gen)

	return args.Error(0)
}

func (m *MockGenerationRepository) FindByID(id uuid.UUID) (*models.Generation, error) {
	args := m.Called(id)

	gen, _ := args.Get(0).(*models.Generation)
	return gen, args.Error(1)
}

func (m *MockGenerationRepository) FindRecent(limit int) ([]models.Generation, error) {
	args := m.Called(limit)

	gens, _ := args.Get(0).([]models.Generation)
	return gens, args.Error(1)
}
