package optimizer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"resume-forge/internal/domain/resume"
)

func TestSanitizeDedupesBuckets(t *testing.T) {
	doc := resume.NewDocument()
	doc.Skills.Technical = "React, react, Node.js, NODE.JS, Python"

	out := Sanitize(doc)

	assert.Equal(t, "React, Node.js, Python", out.Skills.Technical)
}

func TestSanitizeStripsRawURLsFromProse(t *testing.T) {
	doc := resume.NewDocument()
	doc.Summary = "Engineer and maintainer. Link: https://example.com/me"
	doc.Experience = []resume.Experience{{
		Description: []string{"Shipped the docs site www.example.com last year"},
	}}

	out := Sanitize(doc)

	assert.Equal(t, "Engineer and maintainer.", out.Summary)
	assert.Equal(t, "Shipped the docs site  last year", out.Experience[0].Description[0])
}

func TestSanitizePrefixesLinkFields(t *testing.T) {
	doc := resume.NewDocument()
	doc.PersonalInfo.LinkedIn = "linkedin.com/in/dev"
	doc.PersonalInfo.GitHub = "https://github.com/dev"
	doc.PersonalInfo.Portfolio = "  "

	out := Sanitize(doc)

	assert.Equal(t, "https://linkedin.com/in/dev", out.PersonalInfo.LinkedIn)
	assert.Equal(t, "https://github.com/dev", out.PersonalInfo.GitHub)
	assert.Equal(t, "", out.PersonalInfo.Portfolio)
}

func TestSanitizeRestoresDefaults(t *testing.T) {
	out := Sanitize(resume.Document{})

	assert.Equal(t, resume.PlaceholderName, out.PersonalInfo.FullName)
	assert.Equal(t, "professional", out.Template)
	assert.NotNil(t, out.Experience)
	assert.NotNil(t, out.Education)
	assert.NotNil(t, out.Projects)
	assert.NotNil(t, out.Certifications)
	assert.NotNil(t, out.Languages)
}

func TestSanitizeDoesNotMutateInput(t *testing.T) {
	doc := resume.NewDocument()
	doc.Summary = "See www.example.com for details"

	Sanitize(doc)

	assert.Equal(t, "See www.example.com for details", doc.Summary)
}
