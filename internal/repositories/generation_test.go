package repositories

import (
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"alfredoptarigan/career-assistant/internal/models"
)

func newMockRepository(t *testing.T) (GenerationRepository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGenerationRepository(db), mock
}

func generationColumns() []string {
	return []string{"id", "task", "provider", "model", "outcome", "resume_chars", "output_chars", "latency_ms", "created_at"}
}

func TestGenerationRepository_CreateAssignsID(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "generations"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	gen := &models.Generation{
		Task:     models.TaskSummary,
		Provider: "huggingface",
		Model:    "mistralai/Mistral-7B-Instruct-v0.2",
		Outcome:  "success",
	}

	require.NoError(t, repo.Create(gen))
	assert.NotEqual(t, uuid.Nil, gen.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGenerationRepository_FindByID(t *testing.T) {
	repo, mock := newMockRepository(t)
	id := uuid.New()
	createdAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows(generationColumns()).
		AddRow(id.String(), "cover_letter", "huggingface", "m", "transport_error", 120, 54, int64(850), createdAt)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "generations" WHERE id = $1`)).
		WillReturnRows(rows)

	gen, err := repo.FindByID(id)
	require.NoError(t, err)
	assert.Equal(t, id, gen.ID)
	assert.Equal(t, models.TaskCoverLetter, gen.Task)
	assert.Equal(t, "transport_error", gen.Outcome)
	assert.Equal(t, int64(850), gen.LatencyMs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGenerationRepository_FindByIDNotFound(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "generations" WHERE id = $1`)).
		WillReturnRows(sqlmock.NewRows(generationColumns()))

	gen, err := repo.FindByID(uuid.New())
	assert.Nil(t, gen)
	assert.ErrorIs(t, err, ErrGenerationNotFound)
}

func TestGenerationRepository_FindRecent(t *testing.T) {
	repo, mock := newMockRepository(t)
	now := time.Now().UTC()

	rows := sqlmock.NewRows(generationColumns()).
		AddRow(uuid.NewString(), "suggestions", "gemini", "gemini-2.5-flash", "success", 300, 200, int64(1200), now).
		AddRow(uuid.NewString(), "summary", "gemini", "gemini-2.5-flash", "rate_limited", 300, 0, int64(90), now.Add(-time.Minute))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "generations" ORDER BY created_at DESC LIMIT`)).
		WillReturnRows(rows)

	gens, err := repo.FindRecent(0)
	require.NoError(t, err)
	require.Len(t, gens, 2)
	assert.Equal(t, models.TaskSuggestions, gens[0].Task)
	assert.Equal(t, "rate_limited", gens[1].Outcome)
	assert.NoError(t, mock.ExpectationsWereMet())
}
