package handlers

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"alfredoptarigan/career-assistant/internal/models"
	"alfredoptarigan/career-assistant/internal/services"
)

type CareerHandler struct {
	career      services.CareerService
	maxFileSize int64
}

func NewCareerHandler(career services.CareerService, maxFileSize int64) *CareerHandler {
	return &CareerHandler{
		career:      career,
		maxFileSize: maxFileSize,
	}
}

// HandleCoverLetter handles POST /api/career/cover-letter
func (h *CareerHandler) HandleCoverLetter(c *fiber.Ctx) error {
	resume, err := h.readResume(c, "resume")
	if err != nil {
		return badRequest(c, err.Error())
	}

	fields, err := requiredFields(c, "job_title", "company_name", "job_description")
	if err != nil {
		return badRequest(c, err.Error())
	}

	tone := strings.TrimSpace(c.FormValue("tone"))
	if tone == "" {
		tone = models.DefaultTone
	}

	letter, err := h.career.GenerateCoverLetter(c.UserContext(), models.CoverLetterInput{
		JobTitle:       fields["job_title"],
		CompanyName:    fields["company_name"],
		JobDescription: fields["job_description"],
		Tone:           tone,
		Resume:         *resume,
	})
	if err != nil {
		return h.serviceError(c, err)
	}

	return c.JSON(models.CoverLetterResponse{CoverLetter: letter})
}

// HandleRewriteSummary handles POST /api/career/rewrite-summary-upload
func (h *CareerHandler) HandleRewriteSummary(c *fiber.Ctx) error {
	resume, err := h.readResume(c, "file")
	if err != nil {
		return badRequest(c, err.Error())
	}

	fields, err := requiredFields(c, "job_description")
	if err != nil {
		return badRequest(c, err.Error())
	}

	summary, err := h.career.RewriteSummary(c.UserContext(), *resume, fields["job_description"])
	if err != nil {
		return h.serviceError(c, err)
	}

	return c.JSON(models.RewriteSummaryResponse{RewrittenSummary: summary})
}

// HandleSmartResume handles POST /api/career/smart-resume-upload
func (h *CareerHandler) HandleSmartResume(c *fiber.Ctx) error {
	resume, err := h.readResume(c, "file")
	if err != nil {
		return badRequest(c, err.Error())
	}

	fields, err := requiredFields(c, "job_description")
	if err != nil {
		return badRequest(c, err.Error())
	}

	suggestions, err := h.career.SuggestImprovements(c.UserContext(), *resume, fields["job_description"])
	if err != nil {
		return h.serviceError(c, err)
	}

	return c.JSON(models.SuggestionsResponse{Suggestions: suggestions})
}

// readResume validates the declared content type and size before reading
// the upload into memory.
func (h *CareerHandler) readResume(c *fiber.Ctx, field string) (*models.ResumeFile, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return nil, fmt.Errorf("%s upload is required", field)
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !services.IsSupportedContentType(contentType) {
		log.Warn().
			Str("field", field).
			Str("content_type", contentType).
			Msg("⚠️ Rejected upload with unsupported content type")
		return nil, services.ErrUnsupportedContentType
	}

	if h.maxFileSize > 0 && fileHeader.Size > h.maxFileSize {
		return nil, fmt.Errorf("resume file too large. Max size: %d bytes", h.maxFileSize)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file")
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded file")
	}

	return &models.ResumeFile{
		Filename:    fileHeader.Filename,
		ContentType: contentType,
		Data:        data,
	}, nil
}

func (h *CareerHandler) serviceError(c *fiber.Ctx, err error) error {
	if errors.Is(err, services.ErrUnsupportedContentType) {
		return badRequest(c, err.Error())
	}

	log.Error().Err(err).Str("path", c.Path()).Msg("❌ Career request failed")
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "failed to process request",
	})
}

func requiredFields(c *fiber.Ctx, names ...string) (map[string]string, error) {
	values := make(map[string]string, len(names))
	for _, name := range names {
		value := strings.TrimSpace(c.FormValue(name))
		if value == "" {
			return nil, fmt.Errorf("%s is required", name)
		}
		values[name] = value
	}
	return values, nil
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": message,
	})
}
