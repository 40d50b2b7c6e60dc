package services

import (
	"bytes"
	"fmt"
	"mime"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/rs/zerolog/log"
)

const (
	ContentTypePDF   = "application/pdf"
	ContentTypePlain = "text/plain"
)

type TextExtractor interface {
	ExtractText(data []byte, contentType string) string
}

type textExtractor struct{}

func NewTextExtractor() TextExtractor {
	return &textExtractor{}
}

// NormalizeContentType lowercases a declared content type and drops its
// parameters, so "text/plain; charset=utf-8" becomes "text/plain".
func NormalizeContentType(contentType string) string {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType = strings.Split(contentType, ";")[0]
	}
	return strings.ToLower(strings.TrimSpace(mediaType))
}

func IsSupportedContentType(contentType string) bool {
	switch NormalizeContentType(contentType) {
	case ContentTypePDF, ContentTypePlain:
		return true
	default:
		return false
	}
}

// ExtractText never fails. Unreadable input produces an empty string.
func (e *textExtractor) ExtractText(data []byte, contentType string) string {
	var text string
	if NormalizeContentType(contentType) == ContentTypePDF {
		text = extractPDFText(data)
	} else {
		text = strings.ToValidUTF8(string(data), "")
	}

	if strings.TrimSpace(text) == "" {
		log.Warn().
			Str("content_type", contentType).
			Int("bytes", len(data)).
			Msg("⚠️ No text extracted from resume")
	} else {
		log.Debug().Int("chars", len(text)).Msg("📄 Extracted resume text")
	}

	return text
}

func extractPDFText(data []byte) string {
	reader, err := openPDF(data)
	if err != nil {
		log.Warn().Err(err).Msg("⚠️ Failed to open PDF")
		return ""
	}

	totalPage := reader.NumPage()
	pages := make([]string, 0, totalPage)
	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		pages = append(pages, extractPageText(reader, pageIndex))
	}

	return strings.Join(pages, "\n")
}

func openPDF(data []byte) (reader *pdf.Reader, err error) {
	// the pdf package panics on some malformed cross-reference tables
	defer func() {
		if r := recover(); r != nil {
			reader, err = nil, fmt.Errorf("malformed PDF: %v", r)
		}
	}()

	return pdf.NewReader(bytes.NewReader(data), int64(len(data)))
}

func extractPageText(reader *pdf.Reader, pageIndex int) (text string) {
	defer func() {
		if r := recover(); r != nil {
			log.Warn().Int("page", pageIndex).Interface("panic", r).Msg("⚠️ Failed to extract PDF page")
			text = ""
		}
	}()

	page := reader.Page(pageIndex)
	if page.V.IsNull() {
		return ""
	}

	pageText, err := page.GetPlainText(nil)
	if err != nil {
		log.Warn().Int("page", pageIndex).Err(err).Msg("⚠️ Failed to extract PDF page")
		return ""
	}

	return pageText
}
