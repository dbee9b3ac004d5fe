package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-forge/internal/domain/resume"
	"resume-forge/internal/repository"
)

func TestHistoryListRequiresUser(t *testing.T) {
	u := NewHistoryUsecase(nil)

	_, err := u.List(context.Background(), uuid.Nil, 10)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestHistoryListWithoutRepositoryIsEmpty(t *testing.T) {
	u := NewHistoryUsecase(nil)

	out, err := u.List(context.Background(), uuid.New(), 10)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.NotNil(t, out)
}

func TestHistoryListReturnsSnapshots(t *testing.T) {
	repo := newStubSnapshotRepo()
	userID := uuid.New()
	repo.listed = []repository.ResumeSnapshot{{UserID: &userID, Document: resume.NewDocument()}}
	u := NewHistoryUsecase(repo)

	out, err := u.List(context.Background(), userID, 10)
	require.NoError(t, err)
	assert.Len(t, out, 1)
}

func TestHistoryGetEnforcesOwnership(t *testing.T) {
	repo := newStubSnapshotRepo()
	owner := uuid.New()
	snap, err := repo.Save(context.Background(), repository.ResumeSnapshot{
		UserID:   &owner,
		Source:   repository.SnapshotSourceGenerated,
		Document: resume.NewDocument(),
	})
	require.NoError(t, err)

	u := NewHistoryUsecase(repo)

	got, err := u.Get(context.Background(), owner, snap.ID)
	require.NoError(t, err)
	assert.Equal(t, snap.ID, got.ID)

	_, err = u.Get(context.Background(), uuid.New(), snap.ID)
	assert.ErrorIs(t, err, ErrSnapshotNotFound, "another user's snapshot reads as missing")
}

func TestHistoryGetUnknownSnapshot(t *testing.T) {
	u := NewHistoryUsecase(newStubSnapshotRepo())

	_, err := u.Get(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, ErrSnapshotNotFound)
}
