package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"resume-forge/internal/domain/resume"
	"resume-forge/internal/optimizer"
	"resume-forge/internal/renderer"
	"resume-forge/internal/repository"
)

var ErrUnsupportedRenderFormat = errors.New("unsupported output format")

type GenerateInput struct {
	Resume   resume.Document
	Format   string
	Template string
	UserID   *uuid.UUID
}

type GenerateResult struct {
	Data        []byte
	ContentType string
	Filename    string
}

type GenerateUsecase interface {
	Generate(ctx context.Context, in GenerateInput) (GenerateResult, error)
}

type Generate struct {
	snapshots repository.ResumeRepository
	logger    zerolog.Logger
}

func NewGenerateUsecase(snapshots repository.ResumeRepository, logger zerolog.Logger) *Generate {
	return &Generate{snapshots: snapshots, logger: logger}
}

func (u *Generate) Generate(ctx context.Context, in GenerateInput) (GenerateResult, error) {
	format := renderer.Format(in.Format)
	if format == "" {
		format = renderer.FormatPDF
	}

	doc := optimizer.Sanitize(in.Resume)
	if in.Template != "" {
		doc.Template = in.Template
	}

	data, err := renderer.Render(doc, format, doc.Template)
	if err != nil {
		if errors.Is(err, renderer.ErrUnknownFormat) {
			return GenerateResult{}, ErrUnsupportedRenderFormat
		}
		return GenerateResult{}, ErrInternal
	}

	// History is best effort; rendering never fails because the
	// database is down.
	if u.snapshots != nil && in.UserID != nil {
		_, err := u.snapshots.Save(ctx, repository.ResumeSnapshot{
			UserID:   in.UserID,
			Source:   repository.SnapshotSourceGenerated,
			Document: doc,
		})
		if err != nil {
			u.logger.Warn().Err(err).Msg("generated resume snapshot failed")
		}
	}

	return GenerateResult{
		Data:        data,
		ContentType: renderer.ContentType(format),
		Filename:    "resume." + string(format),
	}, nil
}
