package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"alfredoptarigan/career-assistant/internal/models"
	"alfredoptarigan/career-assistant/internal/services"
	"alfredoptarigan/career-assistant/mocks"
)

func TestHistoryRecorder_PersistsQueuedRecordsOnStop(t *testing.T) {
	repo := &mocks.MockGenerationRepository{}
	repo.On("Create", mock.AnythingOfType("*models.Generation")).Return(nil)

	rec := services.NewHistoryRecorder(repo, 2, 10)
	rec.Start(context.Background())

	for i := 0; i < 5; i++ {
		rec.Record(&models.Generation{Task: models.TaskSummary, Outcome: "success"})
	}
	rec.Stop()

	repo.AssertNumberOfCalls(t, "Create", 5)
}

func TestHistoryRecorder_DropsAfterStop(t *testing.T) {
	repo := &mocks.MockGenerationRepository{}

	rec := services.NewHistoryRecorder(repo, 1, 1)
	rec.Start(context.Background())
	rec.Stop()
	rec.Stop()

	assert.NotPanics(t, func() {
		rec.Record(&models.Generation{Task: models.TaskCoverLetter})
	})
	repo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestHistoryRecorder_RepositoryErrorsAreSwallowed(t *testing.T) {
	repo := &mocks.MockGenerationRepository{}
	repo.On("Create", mock.Anything).Return(errors.New("connection refused"))

	rec := services.NewHistoryRecorder(repo, 1, 4)
	rec.Start(context.Background())
	rec.Record(&models.Generation{Task: models.TaskSuggestions})
	rec.Record(&models.Generation{Task: models.TaskSuggestions})
	rec.Stop()

	repo.AssertNumberOfCalls(t, "Create", 2)
}

func TestHistoryRecorder_FullQueueDoesNotBlock(t *testing.T) {
	repo := &mocks.MockGenerationRepository{}
	repo.On("Create", mock.Anything).Return(nil)

	// not started: nothing drains the queue
	rec := services.NewHistoryRecorder(repo, 1, 1)
	rec.Record(&models.Generation{Task: models.TaskSummary})
	rec.Record(&models.Generation{Task: models.TaskSummary})

	rec.Start(context.Background())
	rec.Stop()

	repo.AssertNumberOfCalls(t, "Create", 1)
}
