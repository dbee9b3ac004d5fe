package usecase

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-forge/internal/domain/resume"
	"resume-forge/internal/repository"
)

func generateDoc() resume.Document {
	doc := resume.NewDocument()
	doc.PersonalInfo.FullName = "Jane Smith"
	doc.Summary = "Backend engineer who builds distributed systems."
	doc.Skills.Technical = "Python, React"
	return doc
}

func TestGenerateDefaultsToPDF(t *testing.T) {
	u := NewGenerateUsecase(nil, zerolog.Nop())

	res, err := u.Generate(context.Background(), GenerateInput{Resume: generateDoc()})
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(res.Data, []byte("%PDF")))
	assert.Equal(t, "application/pdf", res.ContentType)
	assert.Equal(t, "resume.pdf", res.Filename)
}

func TestGenerateDocx(t *testing.T) {
	u := NewGenerateUsecase(nil, zerolog.Nop())

	res, err := u.Generate(context.Background(), GenerateInput{
		Resume: generateDoc(),
		Format: "docx",
	})
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(res.Data, []byte("PK")), "docx output is a zip archive")
	assert.Equal(t, "resume.docx", res.Filename)
}

func TestGenerateRejectsUnknownFormat(t *testing.T) {
	u := NewGenerateUsecase(nil, zerolog.Nop())

	_, err := u.Generate(context.Background(), GenerateInput{
		Resume: generateDoc(),
		Format: "odt",
	})
	assert.ErrorIs(t, err, ErrUnsupportedRenderFormat)
}

func TestGenerateSanitizesBeforeRendering(t *testing.T) {
	doc := generateDoc()
	doc.PersonalInfo.FullName = ""
	doc.Skills.Technical = "React, react, React"

	u := NewGenerateUsecase(nil, zerolog.Nop())

	res, err := u.Generate(context.Background(), GenerateInput{Resume: doc})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Data)
}

func TestGenerateSnapshotsForAuthenticatedUsers(t *testing.T) {
	repo := newStubSnapshotRepo()
	u := NewGenerateUsecase(repo, zerolog.Nop())
	userID := uuid.New()

	_, err := u.Generate(context.Background(), GenerateInput{
		Resume: generateDoc(),
		UserID: &userID,
	})
	require.NoError(t, err)

	require.Len(t, repo.saved, 1)
	assert.Equal(t, repository.SnapshotSourceGenerated, repo.saved[0].Source)
}

func TestGenerateTemplateOverride(t *testing.T) {
	u := NewGenerateUsecase(nil, zerolog.Nop())

	res, err := u.Generate(context.Background(), GenerateInput{
		Resume:   generateDoc(),
		Template: "compact",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Data)
}
