package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-forge/internal/domain/resume"
)

const sampleResume = `Jane Smith
jane.smith@example.com | +1 415 555 0100
linkedin.com/in/janesmith

Summary
Backend engineer who builds distributed systems at scale.

Skills
Python, Docker, Leadership, GraphQL

Experience
Senior Engineer - Acme Corp, San Francisco
- Developed the billing platform handling millions of events daily.
- Implemented streaming ingestion for analytics events.

Education
B.Sc. Computer Science - State University, 2014

Languages
English - Native
`

func TestParseEmptyInput(t *testing.T) {
	for _, in := range []string{"", "   ", "\n\n"} {
		doc := Parse(in)
		assert.Equal(t, resume.NewDocument(), doc)
	}
}

func TestParsePersonalInfo(t *testing.T) {
	doc := Parse(sampleResume)

	assert.Equal(t, "Jane Smith", doc.PersonalInfo.FullName)
	assert.Equal(t, "jane.smith@example.com", doc.PersonalInfo.Email)
	assert.Equal(t, "+1 415 555 0100", doc.PersonalInfo.Phone)
	assert.Equal(t, "https://linkedin.com/in/janesmith", doc.PersonalInfo.LinkedIn)
}

func TestParseSummary(t *testing.T) {
	doc := Parse(sampleResume)

	assert.Equal(t, "Backend engineer who builds distributed systems at scale.", doc.Summary)
}

func TestParseSkillsRouting(t *testing.T) {
	doc := Parse(sampleResume)

	assert.Equal(t, "Python, GraphQL", doc.Skills.Technical)
	assert.Equal(t, "Docker", doc.Skills.Tools)
	assert.Equal(t, "Leadership", doc.Skills.SoftSkills)
}

func TestParseExperience(t *testing.T) {
	doc := Parse(sampleResume)

	require.Len(t, doc.Experience, 1)
	exp := doc.Experience[0]
	assert.Equal(t, "Senior Engineer", exp.Title)
	assert.Equal(t, "Acme Corp", exp.Company)
	assert.Equal(t, "San Francisco", exp.Location)
	require.Len(t, exp.Description, 2)
	assert.Equal(t, "Developed the billing platform handling millions of events daily.", exp.Description[0])
	assert.Equal(t, "Implemented streaming ingestion for analytics events.", exp.Description[1])
}

func TestParseExperienceDates(t *testing.T) {
	doc := Parse(strings.Join([]string{
		"Experience",
		"Software Engineer - Initech 2015 to 2018",
	}, "\n"))

	require.Len(t, doc.Experience, 1)
	assert.Equal(t, "Software Engineer", doc.Experience[0].Title)
	assert.Equal(t, "2015 to 2018", doc.Experience[0].Dates)
}

func TestParseEducation(t *testing.T) {
	doc := Parse(sampleResume)

	require.Len(t, doc.Education, 1)
	assert.Equal(t, "B.Sc. Computer Science", doc.Education[0].Qualification)
	assert.Equal(t, "2014", doc.Education[0].Year)
	assert.Contains(t, doc.Education[0].Institute, "State University")
}

func TestParseLanguages(t *testing.T) {
	doc := Parse(sampleResume)

	require.Len(t, doc.Languages, 1)
	assert.Equal(t, "English", doc.Languages[0].Language)
	assert.Equal(t, "Native", doc.Languages[0].Proficiency)
}

func TestParseHeaderSynonyms(t *testing.T) {
	doc := Parse(strings.Join([]string{
		"Professional Summary",
		"Seasoned platform engineer focused on reliability.",
		"Core Competencies",
		"Kubernetes, Terraform",
		"Work Experience",
		"Engineer - Initech",
		"- Built the deployment tooling for the platform team.",
	}, "\n"))

	assert.Equal(t, "Seasoned platform engineer focused on reliability.", doc.Summary)
	assert.Equal(t, "Kubernetes, Terraform", doc.Skills.Tools)
	require.Len(t, doc.Experience, 1)
	assert.Equal(t, "Initech", doc.Experience[0].Company)
}

func TestParseGarbageNeverFails(t *testing.T) {
	doc := Parse("%%%%\x00??\n12 12 12\n!!")

	assert.NotEmpty(t, doc.PersonalInfo.FullName)
	assert.NotNil(t, doc.Experience)
	assert.NotNil(t, doc.Projects)
	assert.Equal(t, "professional", doc.Template)
}

func TestParseExperienceFallbackEntries(t *testing.T) {
	doc := Parse(strings.Join([]string{
		"Experience",
		"Helped out around the office",
	}, "\n"))

	require.Len(t, doc.Experience, 1)
	assert.Equal(t, "Role", doc.Experience[0].Title)
	assert.Equal(t, []string{"Helped out around the office"}, doc.Experience[0].Description)
}
