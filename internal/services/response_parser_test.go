package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"alfredoptarigan/career-assistant/internal/services"
)

func TestParseSuggestions(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "marker with hyphen lines",
			raw:  "SUGGESTIONS:\n- Add metrics\n- Use STAR format\n",
			want: []string{"Add metrics", "Use STAR format"},
		},
		{
			name: "preamble and indented lines",
			raw:  "Here you go.\nSUGGESTIONS:\n   -  Quantify API latency wins  \r\n\nnot a suggestion\n-Mention Go explicitly",
			want: []string{"Quantify API latency wins", "Mention Go explicitly"},
		},
		{
			name: "carriage return line endings",
			raw:  "SUGGESTIONS:\r- Add metrics\r- Use STAR format\r",
			want: []string{"Add metrics", "Use STAR format"},
		},
		{
			name: "only first marker splits",
			raw:  "SUGGESTIONS:\n- First\nSUGGESTIONS:\n- Second",
			want: []string{"First", "Second"},
		},
		{
			name: "missing marker",
			raw:  "- Add metrics\n- Use STAR format",
			want: []string{},
		},
		{
			name: "apology text",
			raw:  services.ApologyMessage,
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := services.ParseSuggestions(tt.raw)
			assert.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSummary(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"marker with space", "SUMMARY: Backend engineer with API experience.", "Backend engineer with API experience."},
		{"marker on own line", "\n  SUMMARY:\nBackend engineer.\nShips Go services.  \n", "Backend engineer.\nShips Go services."},
		{"lowercase marker", "summary:   Data engineer.", "Data engineer."},
		{"no marker", "  Plain summary text.  ", "Plain summary text."},
		{"marker not at start", "Result SUMMARY: x", "Result SUMMARY: x"},
		{"empty", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, services.ParseSummary(tt.raw))
		})
	}
}
