package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/rs/zerolog/log"
	flag "github.com/spf13/pflag"

	"alfredoptarigan/career-assistant/internal/config"
	"alfredoptarigan/career-assistant/internal/models"
	"alfredoptarigan/career-assistant/internal/services"
)

const (
	taskCoverLetter = "cover-letter"
	taskSummary     = "summary"
	taskSuggestions = "suggestions"
)

type options struct {
	task           string
	resumePath     string
	jobDescription string
	jobTitle       string
	company        string
	tone           string
}

func main() {
	var opts options
	flag.StringVarP(&opts.task, "task", "t", taskSuggestions, "what to generate: cover-letter, summary or suggestions")
	flag.StringVarP(&opts.resumePath, "resume", "r", "", "path to the resume (PDF or plain text)")
	flag.StringVarP(&opts.jobDescription, "job-description", "j", "", "path to a plain text job description")
	flag.StringVar(&opts.jobTitle, "job-title", "", "job title, required for cover-letter")
	flag.StringVar(&opts.company, "company", "", "company name, required for cover-letter")
	flag.StringVar(&opts.tone, "tone", models.DefaultTone, "cover letter tone")
	flag.Parse()

	cfg := config.Load()
	config.InitLogger(cfg)

	ctx := context.Background()

	inference, err := services.NewInferenceFromConfig(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("❌ Failed to initialize inference provider")
	}

	career := services.NewCareerService(inference, services.NewTextExtractor(), nil)

	if err := run(ctx, career, opts, os.Stdout); err != nil {
		log.Error().Err(err).Str("task", opts.task).Msg("❌ Generation failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, career services.CareerService, opts options, out io.Writer) error {
	switch opts.task {
	case taskCoverLetter, taskSummary, taskSuggestions:
	default:
		return fmt.Errorf("unknown task %q", opts.task)
	}

	if opts.resumePath == "" || opts.jobDescription == "" {
		return errors.New("--resume and --job-description are required")
	}

	resume, err := loadResume(opts.resumePath)
	if err != nil {
		return err
	}

	jd, err := os.ReadFile(opts.jobDescription)
	if err != nil {
		return fmt.Errorf("failed to read job description: %w", err)
	}
	jobDescription := strings.TrimSpace(string(jd))

	switch opts.task {
	case taskCoverLetter:
		if opts.jobTitle == "" || opts.company == "" {
			return errors.New("--job-title and --company are required for cover-letter")
		}
		letter, err := career.GenerateCoverLetter(ctx, models.CoverLetterInput{
			JobTitle:       opts.jobTitle,
			CompanyName:    opts.company,
			JobDescription: jobDescription,
			Tone:           opts.tone,
			Resume:         *resume,
		})
		if err != nil {
			return err
		}
		fmt.Fprintln(out, letter)

	case taskSummary:
		summary, err := career.RewriteSummary(ctx, *resume, jobDescription)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, summary)

	case taskSuggestions:
		suggestions, err := career.SuggestImprovements(ctx, *resume, jobDescription)
		if err != nil {
			return err
		}
		for _, s := range suggestions {
			fmt.Fprintf(out, "- %s\n", s)
		}
	}

	return nil
}

// loadResume reads the file and sniffs its content type from the bytes, the
// way a browser would label the upload.
func loadResume(path string) (*models.ResumeFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume: %w", err)
	}

	mtype := mimetype.Detect(data)
	log.Info().Str("path", path).Str("content_type", mtype.String()).Msg("📄 Detected resume type")

	return &models.ResumeFile{
		Filename:    filepath.Base(path),
		ContentType: mtype.String(),
		Data:        data,
	}, nil
}
