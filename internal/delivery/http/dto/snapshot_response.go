package dto

import (
	"time"

	"resume-forge/internal/domain/resume"
	"resume-forge/internal/repository"
)

type SnapshotResponse struct {
	ID        string          `json:"id"`
	Source    string          `json:"source"`
	ATSScore  *int            `json:"atsScore,omitempty"`
	Resume    resume.Document `json:"resume"`
	CreatedAt time.Time       `json:"createdAt"`
}

func SnapshotFromEntity(snap repository.ResumeSnapshot) SnapshotResponse {
	return SnapshotResponse{
		ID:        snap.ID.String(),
		Source:    snap.Source,
		ATSScore:  snap.ATSScore,
		Resume:    snap.Document,
		CreatedAt: snap.CreatedAt,
	}
}

func SnapshotsFromEntities(snaps []repository.ResumeSnapshot) []SnapshotResponse {
	out := make([]SnapshotResponse, 0, len(snaps))
	for _, s := range snaps {
		out = append(out, SnapshotFromEntity(s))
	}
	return out
}
