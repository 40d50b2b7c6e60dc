package models

import (
	"time"

	"github.com/google/uuid"
)

type GenerationTask string

const (
	TaskCoverLetter GenerationTask = "cover_letter"
	TaskSummary     GenerationTask = "summary"
	TaskSuggestions GenerationTask = "suggestions"
)

// Generation is the metadata of one model call. Resume text, job
// descriptions and model output are never stored.
type Generation struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Task        GenerationTask `gorm:"type:text;not null;index" json:"task"`
	Provider    string         `gorm:"type:text;not null" json:"provider"`
	Model       string         `gorm:"type:text;not null" json:"model"`
	Outcome     string         `gorm:"type:text;not null;index" json:"outcome"`
	ResumeChars int            `json:"resume_chars"`
	OutputChars int            `json:"output_chars"`
	LatencyMs   int64          `json:"latency_ms"`
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`
}

func (Generation) TableName() string {
	return "generations"
}
