package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"resume-forge/internal/repository"
)

var ErrSnapshotNotFound = errors.New("resume snapshot not found")

type HistoryUsecase interface {
	List(ctx context.Context, userID uuid.UUID, limit int) ([]repository.ResumeSnapshot, error)
	Get(ctx context.Context, userID, snapshotID uuid.UUID) (repository.ResumeSnapshot, error)
}

type History struct {
	snapshots repository.ResumeRepository
}

func NewHistoryUsecase(snapshots repository.ResumeRepository) *History {
	return &History{snapshots: snapshots}
}

func (u *History) List(ctx context.Context, userID uuid.UUID, limit int) ([]repository.ResumeSnapshot, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	if u.snapshots == nil {
		return []repository.ResumeSnapshot{}, nil
	}
	out, err := u.snapshots.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (u *History) Get(ctx context.Context, userID, snapshotID uuid.UUID) (repository.ResumeSnapshot, error) {
	if userID == uuid.Nil {
		return repository.ResumeSnapshot{}, ErrUnauthorized
	}
	if u.snapshots == nil {
		return repository.ResumeSnapshot{}, ErrSnapshotNotFound
	}
	snap, err := u.snapshots.GetByID(ctx, snapshotID)
	if err != nil {
		if errors.Is(err, repository.ErrSnapshotNotFound) {
			return repository.ResumeSnapshot{}, ErrSnapshotNotFound
		}
		return repository.ResumeSnapshot{}, ErrInternal
	}
	if snap.UserID == nil || *snap.UserID != userID {
		return repository.ResumeSnapshot{}, ErrSnapshotNotFound
	}
	return snap, nil
}
