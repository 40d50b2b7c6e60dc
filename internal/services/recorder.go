package services

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"alfredoptarigan/career-assistant/internal/models"
	"alfredoptarigan/career-assistant/internal/repositories"
)

// HistoryRecorder persists generation metadata off the request path.
type HistoryRecorder interface {
	Start(ctx context.Context)
	Stop()
	Record(gen *models.Generation)
}

type recorder struct {
	repo        repositories.GenerationRepository
	queue       chan *models.Generation
	concurrency int
	wg          sync.WaitGroup
	mu          sync.RWMutex
	closed      bool
}

func NewHistoryRecorder(
	repo repositories.GenerationRepository,
	concurrency int,
	queueSize int,
) HistoryRecorder {
	if concurrency <= 0 {
		concurrency = 1
	}
	if queueSize <= 0 {
		queueSize = 100
	}

	return &recorder{
		repo:        repo,
		queue:       make(chan *models.Generation, queueSize),
		concurrency: concurrency,
	}
}

// Start implements HistoryRecorder.
func (r *recorder) Start(ctx context.Context) {
	log.Info().Int("workers", r.concurrency).Msg("🚀 Starting history recorder")

	for i := 0; i < r.concurrency; i++ {
		r.wg.Add(1)
		go r.persist(ctx, i+1)
	}
}

// Stop implements HistoryRecorder. Records already queued are written
// before Stop returns.
func (r *recorder) Stop() {
	log.Info().Msg("🛑 Stopping history recorder...")

	r.mu.Lock()
	if !r.closed {
		r.closed = true
		close(r.queue)
	}
	r.mu.Unlock()

	r.wg.Wait()
	log.Info().Msg("✅ History recorder stopped")
}

// Record implements HistoryRecorder. It never blocks: when the queue is full
// the record is dropped.
func (r *recorder) Record(gen *models.Generation) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		log.Warn().Str("task", string(gen.Task)).Msg("⚠️ History recorder stopped, dropping record")
		return
	}

	select {
	case r.queue <- gen:
	default:
		log.Warn().Str("task", string(gen.Task)).Msg("⚠️ History queue full, dropping record")
	}
}

func (r *recorder) persist(ctx context.Context, workerID int) {
	defer r.wg.Done()

	for gen := range r.queue {
		if err := ctx.Err(); err != nil {
			log.Warn().Int("worker", workerID).Err(err).Msg("⚠️ Context done, dropping history record")
			continue
		}
		if err := r.repo.Create(gen); err != nil {
			log.Error().Int("worker", workerID).Err(err).Msg("❌ Failed to persist generation record")
		}
	}
}

type noopRecorder struct{}

// NewNoopRecorder returns a HistoryRecorder that discards everything, used
// when history is disabled.
func NewNoopRecorder() HistoryRecorder {
	return noopRecorder{}
}

func (noopRecorder) Start(context.Context) {}

func (noopRecorder) Stop() {}

func (noopRecorder) Record(*models.Generation) {}
