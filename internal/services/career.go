package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"alfredoptarigan/career-assistant/internal/models"
)

type CareerService interface {
	GenerateCoverLetter(ctx context.Context, input models.CoverLetterInput) (string, error)
	RewriteSummary(ctx context.Context, resume models.ResumeFile, jobDescription string) (string, error)
	SuggestImprovements(ctx context.Context, resume models.ResumeFile, jobDescription string) ([]string, error)
}

type careerService struct {
	inference     InferenceService
	extractor     TextExtractor
	promptBuilder *PromptBuilder
	recorder      HistoryRecorder
}

func NewCareerService(
	inference InferenceService,
	extractor TextExtractor,
	recorder HistoryRecorder,
) CareerService {
	if recorder == nil {
		recorder = NewNoopRecorder()
	}

	return &careerService{
		inference:     inference,
		extractor:     extractor,
		promptBuilder: NewPromptBuilder(),
		recorder:      recorder,
	}
}

// GenerateCoverLetter returns the model's letter verbatim.
func (s *careerService) GenerateCoverLetter(ctx context.Context, input models.CoverLetterInput) (string, error) {
	resumeText, err := s.extract(input.Resume)
	if err != nil {
		return "", err
	}

	tone := input.Tone
	if tone == "" {
		tone = models.DefaultTone
	}

	prompt := s.promptBuilder.BuildCoverLetterPrompt(
		input.JobTitle,
		input.CompanyName,
		input.JobDescription,
		resumeText,
		tone,
	)

	outcome := s.generate(ctx, models.TaskCoverLetter, prompt, len(resumeText))
	return outcome.Message(), nil
}

func (s *careerService) RewriteSummary(ctx context.Context, resume models.ResumeFile, jobDescription string) (string, error) {
	resumeText, err := s.extract(resume)
	if err != nil {
		return "", err
	}

	prompt := s.promptBuilder.BuildSummaryPrompt(jobDescription, resumeText)

	outcome := s.generate(ctx, models.TaskSummary, prompt, len(resumeText))
	if !outcome.OK() {
		return outcome.Message(), nil
	}

	return ParseSummary(outcome.Text), nil
}

// SuggestImprovements returns the parsed suggestion lines. When the model
// call fails the list holds the single user-facing failure message.
func (s *careerService) SuggestImprovements(ctx context.Context, resume models.ResumeFile, jobDescription string) ([]string, error) {
	resumeText, err := s.extract(resume)
	if err != nil {
		return nil, err
	}

	prompt := s.promptBuilder.BuildSuggestionsPrompt(jobDescription, resumeText)

	outcome := s.generate(ctx, models.TaskSuggestions, prompt, len(resumeText))
	if !outcome.OK() {
		return []string{outcome.Message()}, nil
	}

	suggestions := ParseSuggestions(outcome.Text)
	log.Info().Int("count", len(suggestions)).Msg("📋 Parsed suggestions from model output")

	return suggestions, nil
}

func (s *careerService) extract(resume models.ResumeFile) (string, error) {
	if !IsSupportedContentType(resume.ContentType) {
		return "", ErrUnsupportedContentType
	}

	text := s.extractor.ExtractText(resume.Data, resume.ContentType)
	log.Info().
		Str("filename", resume.Filename).
		Int("chars", len(text)).
		Msg("📄 Resume text ready for prompt")

	return text, nil
}

func (s *careerService) generate(ctx context.Context, task models.GenerationTask, prompt string, resumeChars int) Outcome {
	start := time.Now()
	outcome := s.inference.Generate(ctx, prompt)
	latency := time.Since(start)

	event := log.Info()
	if !outcome.OK() {
		event = log.Warn().AnErr("cause", outcome.Err)
	}
	event.
		Str("task", string(task)).
		Str("provider", s.inference.Provider()).
		Str("model", s.inference.Model()).
		Str("outcome", string(outcome.Kind)).
		Dur("latency", latency).
		Msg("🤖 Model call finished")

	s.recorder.Record(&models.Generation{
		ID:          uuid.New(),
		Task:        task,
		Provider:    s.inference.Provider(),
		Model:       s.inference.Model(),
		Outcome:     string(outcome.Kind),
		ResumeChars: resumeChars,
		OutputChars: len(outcome.Text),
		LatencyMs:   latency.Milliseconds(),
		CreatedAt:   start.UTC(),
	})

	return outcome
}
