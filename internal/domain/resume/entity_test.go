package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDocumentDefaults(t *testing.T) {
	doc := NewDocument()

	assert.Equal(t, PlaceholderName, doc.PersonalInfo.FullName)
	assert.Equal(t, "professional", doc.Template)
	assert.NotNil(t, doc.Experience)
	assert.NotNil(t, doc.Education)
	assert.NotNil(t, doc.Projects)
	assert.NotNil(t, doc.Certifications)
	assert.NotNil(t, doc.Languages)
	assert.True(t, doc.Skills.Empty())
}

func TestCloneIsDeep(t *testing.T) {
	doc := NewDocument()
	doc.Experience = []Experience{{
		Title:       "Engineer",
		Description: []string{"original bullet"},
	}}
	doc.Projects = []Project{{
		Title:       "Side project",
		Description: []string{"project bullet"},
	}}

	clone := doc.Clone()
	clone.Experience[0].Description[0] = "changed"
	clone.Projects[0].Description[0] = "changed"
	clone.Experience[0].Title = "Manager"

	assert.Equal(t, "original bullet", doc.Experience[0].Description[0])
	assert.Equal(t, "project bullet", doc.Projects[0].Description[0])
	assert.Equal(t, "Engineer", doc.Experience[0].Title)
}

func TestFlattenTextIncludesBullets(t *testing.T) {
	doc := NewDocument()
	doc.Summary = "Platform engineer."
	doc.Skills.Technical = "Python, React"
	doc.Experience = []Experience{{
		Title:       "Engineer",
		Company:     "Acme",
		Description: []string{"Built the ingestion layer."},
	}}
	doc.Education = []Education{{Qualification: "B.Sc.", Institute: "State University"}}

	text := doc.FlattenText()

	assert.Contains(t, text, "Platform engineer.")
	assert.Contains(t, text, "Python, React")
	assert.Contains(t, text, "Engineer Acme")
	assert.Contains(t, text, "Built the ingestion layer.")
	assert.Contains(t, text, "B.Sc. State University")
}

func TestFlattenTextSkipsEmptyFields(t *testing.T) {
	text := NewDocument().FlattenText()

	assert.Equal(t, PlaceholderName+"\n", text)
}
