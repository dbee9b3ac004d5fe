package renderer

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-forge/internal/domain/resume"
)

func sampleDoc() resume.Document {
	doc := resume.NewDocument()
	doc.PersonalInfo.FullName = "Jane Smith"
	doc.PersonalInfo.Email = "jane@example.com"
	doc.Summary = "Backend engineer who builds distributed systems."
	doc.Skills.Technical = "Python, React"
	doc.Experience = []resume.Experience{{
		Title:       "Senior Engineer",
		Company:     "Acme",
		Dates:       "2019 - 2024",
		Description: []string{"Built the billing platform."},
	}}
	doc.Education = []resume.Education{{Qualification: "B.Sc.", Institute: "State University"}}
	return doc
}

func TestRenderPDF(t *testing.T) {
	data, err := Render(sampleDoc(), FormatPDF, "professional")

	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestRenderDocxIsValidZip(t *testing.T) {
	data, err := Render(sampleDoc(), FormatDocx, "professional")

	require.NoError(t, err)
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	names := map[string]bool{}
	for _, f := range reader.File {
		names[f.Name] = true
	}
	assert.True(t, names["[Content_Types].xml"])
	assert.True(t, names["_rels/.rels"])
	assert.True(t, names["word/document.xml"])
}

func TestRenderDocxContainsContent(t *testing.T) {
	data, err := Render(sampleDoc(), FormatDocx, "professional")
	require.NoError(t, err)

	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	var document string
	for _, f := range reader.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		raw, err := io.ReadAll(rc)
		require.NoError(t, err)
		rc.Close()
		document = string(raw)
	}

	require.NotEmpty(t, document)
	assert.Contains(t, document, "Jane Smith")
	assert.Contains(t, document, "Python, React")
	assert.Contains(t, document, "Built the billing platform.")
}

func TestRenderUnknownFormat(t *testing.T) {
	_, err := Render(sampleDoc(), Format("odt"), "professional")

	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestRenderUnknownTemplateFallsBack(t *testing.T) {
	data, err := Render(sampleDoc(), FormatPDF, "no-such-template")

	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestSectionOrderPerTemplate(t *testing.T) {
	professional := sectionOrder("professional")
	compact := sectionOrder("Compact")

	assert.Equal(t, sectionSummary, professional[0])
	assert.Equal(t, sectionSkills, compact[0])
	assert.Len(t, professional, 7)
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "application/pdf", ContentType(FormatPDF))
	assert.True(t, strings.HasSuffix(ContentType(FormatDocx), "wordprocessingml.document"))
}
