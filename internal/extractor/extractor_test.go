package extractor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const plainResume = "Jane Smith\nBackend engineer who builds distributed systems at scale.\nSkills: Python, Docker"

func TestExtractPlainText(t *testing.T) {
	text, err := Extract([]byte(plainResume), "text/plain", "resume.txt")

	require.NoError(t, err)
	assert.Equal(t, plainResume, text)
}

func TestExtractResolvesKindFromExtension(t *testing.T) {
	text, err := Extract([]byte(plainResume), "application/octet-stream", "resume.txt")

	require.NoError(t, err)
	assert.Equal(t, plainResume, text)
}

func TestExtractStripsContentTypeParams(t *testing.T) {
	_, err := Extract([]byte(plainResume), "text/plain; charset=utf-8", "noext")

	assert.NoError(t, err)
}

func TestExtractUnsupportedFormat(t *testing.T) {
	_, err := Extract([]byte(plainResume), "image/png", "resume.png")

	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestExtractInsufficientText(t *testing.T) {
	_, err := Extract([]byte("too short"), "text/plain", "resume.txt")

	assert.ErrorIs(t, err, ErrInsufficientText)
}

func TestExtractCorruptPDF(t *testing.T) {
	_, err := Extract([]byte("not a pdf at all"), "application/pdf", "resume.pdf")

	assert.ErrorIs(t, err, ErrUnreadable)
}

func TestExtractCorruptDocx(t *testing.T) {
	_, err := Extract([]byte("not a zip archive"), "", "resume.docx")

	assert.ErrorIs(t, err, ErrUnreadable)
}

func TestDocxXMLToText(t *testing.T) {
	xml := `<w:p><w:r><w:t>Jane Smith</w:t></w:r></w:p><w:p><w:r><w:t>Engineer</w:t></w:r></w:p>`

	text := docxXMLToText(xml)

	assert.Equal(t, "Jane Smith\nEngineer\n", text)
	assert.False(t, strings.Contains(text, "<"))
}
