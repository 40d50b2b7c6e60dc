package mocks

import (
	"context"
	"sync"

	"alfredoptarigan/career-assistant/internal/models"
)

// RecordingHistory keeps every record in memory.
type RecordingHistory struct {
	mu      sync.Mutex
	Records []*models.Generation
}

func (r *RecordingHistory) Start(context.Context) {}

func (r *RecordingHistory) Stop() {}

func (r *RecordingHistory) Record(gen *models.Generation) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Records = append(r.Records, gen)
}

func (r *RecordingHistory) All() []*models.Generation {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*models.Generation(nil), r.Records...)
}
