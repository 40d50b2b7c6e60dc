package services

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abc...", truncate("abcdef", 3))

	// "é" is two bytes; cutting at 2 would split it
	got := truncate("aé"+strings.Repeat("x", 10), 2)
	assert.Equal(t, "a...", got)
	assert.True(t, utf8.ValidString(got))

	got = truncate(strings.Repeat("日本語", 50), 100)
	assert.True(t, utf8.ValidString(got))
	assert.LessOrEqual(t, len(got), 103)
}
