package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"resume-forge/internal/database"
	"resume-forge/internal/domain/resume"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrSnapshotNotFound = errors.New("resume snapshot not found")

// Snapshot sources.
const (
	SnapshotSourceGenerated = "generated"
	SnapshotSourceUploaded  = "uploaded"
	SnapshotSourceOptimized = "optimized"
)

type ResumeSnapshot struct {
	ID        uuid.UUID
	UserID    *uuid.UUID
	Source    string
	ATSScore  *int
	Document  resume.Document
	CreatedAt time.Time
}

type ResumeRepository interface {
	Save(ctx context.Context, snap ResumeSnapshot) (ResumeSnapshot, error)
	GetByID(ctx context.Context, id uuid.UUID) (ResumeSnapshot, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]ResumeSnapshot, error)
}

type PostgresResumeRepository struct {
	db database.DB
}

func NewPostgresResumeRepository(db database.DB) *PostgresResumeRepository {
	return &PostgresResumeRepository{db: db}
}

func (r *PostgresResumeRepository) Save(ctx context.Context, snap ResumeSnapshot) (ResumeSnapshot, error) {
	if snap.ID == uuid.Nil {
		snap.ID = uuid.New()
	}
	if snap.Source == "" {
		snap.Source = SnapshotSourceGenerated
	}

	doc, err := json.Marshal(snap.Document)
	if err != nil {
		return ResumeSnapshot{}, err
	}

	row := r.db.QueryRow(
		ctx,
		`INSERT INTO resume_snapshots (id, user_id, source, ats_score, document)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at`,
		snap.ID, snap.UserID, snap.Source, snap.ATSScore, doc,
	)
	if err := row.Scan(&snap.CreatedAt); err != nil {
		return ResumeSnapshot{}, err
	}
	return snap, nil
}

func (r *PostgresResumeRepository) GetByID(ctx context.Context, id uuid.UUID) (ResumeSnapshot, error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT id, user_id, source, ats_score, document, created_at
		 FROM resume_snapshots WHERE id = $1`,
		id,
	)
	return scanSnapshot(row)
}

func (r *PostgresResumeRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]ResumeSnapshot, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, source, ats_score, document, created_at
		 FROM resume_snapshots
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]ResumeSnapshot, 0)
	for rows.Next() {
		snap, err := scanSnapshot(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanSnapshot(row database.Row) (ResumeSnapshot, error) {
	var (
		snap ResumeSnapshot
		doc  []byte
	)
	if err := row.Scan(&snap.ID, &snap.UserID, &snap.Source, &snap.ATSScore, &doc, &snap.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ResumeSnapshot{}, ErrSnapshotNotFound
		}
		return ResumeSnapshot{}, err
	}
	if err := json.Unmarshal(doc, &snap.Document); err != nil {
		return ResumeSnapshot{}, err
	}
	return snap, nil
}
