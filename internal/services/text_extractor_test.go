package services_test

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"alfredoptarigan/career-assistant/internal/services"
)

func TestIsSupportedContentType(t *testing.T) {
	assert.True(t, services.IsSupportedContentType("application/pdf"))
	assert.True(t, services.IsSupportedContentType("text/plain"))
	assert.True(t, services.IsSupportedContentType("text/plain; charset=utf-8"))
	assert.True(t, services.IsSupportedContentType("Application/PDF"))

	assert.False(t, services.IsSupportedContentType("image/png"))
	assert.False(t, services.IsSupportedContentType("application/octet-stream"))
	assert.False(t, services.IsSupportedContentType(""))
}

func TestExtractText_PlainText(t *testing.T) {
	extractor := services.NewTextExtractor()

	text := extractor.ExtractText([]byte("Backend engineer\nGo, PostgreSQL"), "text/plain")

	assert.Equal(t, "Backend engineer\nGo, PostgreSQL", text)
}

func TestExtractText_DropsInvalidUTF8(t *testing.T) {
	extractor := services.NewTextExtractor()

	text := extractor.ExtractText([]byte("Caf\xff\xfee backend"), "text/plain; charset=utf-8")

	assert.Equal(t, "Cafe backend", text)
}

func TestExtractText_MalformedPDFYieldsEmpty(t *testing.T) {
	extractor := services.NewTextExtractor()

	assert.NotPanics(t, func() {
		assert.Empty(t, extractor.ExtractText([]byte("%PDF-1.4 definitely not a pdf"), "application/pdf"))
	})
	assert.Empty(t, extractor.ExtractText(nil, "application/pdf"))
}

// buildPDF writes a minimal PDF with one Helvetica text line per page.
func buildPDF(pages ...string) []byte {
	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"",
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>",
	}

	var kids []string
	for _, text := range pages {
		content := fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", text)
		objects = append(objects, fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content))
		contentRef := len(objects)

		objects = append(objects, fmt.Sprintf(
			"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>",
			contentRef,
		))
		kids = append(kids, fmt.Sprintf("%d 0 R", len(objects)))
	}
	objects[1] = fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(pages))

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(objects)+1)
	for _, offset := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", offset)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)

	return buf.Bytes()
}

func TestExtractText_PDFPagesInOrder(t *testing.T) {
	extractor := services.NewTextExtractor()

	text := extractor.ExtractText(buildPDF("Backend engineer", "Go APIs"), "application/pdf")

	// each text object starts on a new line and pages are joined by one more
	assert.Equal(t, "\nBackend engineer\n\nGo APIs", text)
}

func TestExtractText_SinglePagePDF(t *testing.T) {
	extractor := services.NewTextExtractor()

	text := extractor.ExtractText(buildPDF("Senior Go developer"), "application/pdf; name=resume.pdf")

	assert.Equal(t, "Senior Go developer", strings.TrimSpace(text))
}
