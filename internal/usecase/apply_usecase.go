package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"resume-forge/internal/domain/ats"
	"resume-forge/internal/domain/resume"
	"resume-forge/internal/optimizer"
	"resume-forge/internal/parser"
	"resume-forge/internal/repository"
)

var ErrInvalidSkillSelection = errors.New("selected skills map is required")

// CacheInvalidator drops cached analyses that may reference the
// pre-merge resume.
type CacheInvalidator interface {
	InvalidateAnalyses(ctx context.Context) error
}

type ApplyInput struct {
	ResumeText     string
	JobDescription string
	Selected       map[string][]string
	UserID         *uuid.UUID
}

type ApplyResult struct {
	Resume         resume.Document `json:"resume"`
	Added          []string        `json:"added"`
	Skipped        []string        `json:"skipped"`
	DomainExcluded []string        `json:"domainExcluded"`
	BeforeScore    *int            `json:"beforeScore,omitempty"`
	AfterScore     *int            `json:"afterScore,omitempty"`
}

type ApplyUsecase interface {
	Apply(ctx context.Context, in ApplyInput) (ApplyResult, error)
}

type Apply struct {
	snapshots   repository.ResumeRepository
	invalidator CacheInvalidator
	logger      zerolog.Logger
}

func NewApplyUsecase(snapshots repository.ResumeRepository, invalidator CacheInvalidator, logger zerolog.Logger) *Apply {
	return &Apply{snapshots: snapshots, invalidator: invalidator, logger: logger}
}

func (u *Apply) Apply(ctx context.Context, in ApplyInput) (ApplyResult, error) {
	resumeText := strings.TrimSpace(in.ResumeText)
	if resumeText == "" {
		return ApplyResult{}, ErrEmptyResumeText
	}
	if in.Selected == nil {
		return ApplyResult{}, ErrInvalidSkillSelection
	}

	// Always re-parse from raw text so repeated merges never compound
	// edits made by a previous run.
	doc := parser.Parse(resumeText)

	jd := strings.TrimSpace(in.JobDescription)
	var beforeScore *int
	if jd != "" {
		s := scoreAgainst(jd, resumeText, doc)
		beforeScore = &s
	}

	outcome := optimizer.Apply(doc, in.Selected)

	result := ApplyResult{
		Resume:         outcome.Document,
		Added:          outcome.Added,
		Skipped:        outcome.Skipped,
		DomainExcluded: outcome.DomainExcluded,
		BeforeScore:    beforeScore,
	}

	if jd != "" {
		updatedText := outcome.Document.FlattenText()
		s := scoreAgainst(jd, updatedText, outcome.Document)
		result.AfterScore = &s
	}

	if u.invalidator != nil && len(outcome.Added) > 0 {
		if err := u.invalidator.InvalidateAnalyses(ctx); err != nil {
			u.logger.Debug().Err(err).Msg("analysis cache invalidation skipped")
		}
	}

	u.snapshotBestEffort(ctx, in.UserID, outcome.Document, result.AfterScore)

	return result, nil
}

func (u *Apply) snapshotBestEffort(ctx context.Context, userID *uuid.UUID, doc resume.Document, score *int) {
	if u.snapshots == nil || userID == nil {
		return
	}
	_, err := u.snapshots.Save(ctx, repository.ResumeSnapshot{
		UserID:   userID,
		Source:   repository.SnapshotSourceOptimized,
		ATSScore: score,
		Document: doc,
	})
	if err != nil {
		u.logger.Warn().Err(err).Msg("optimized resume snapshot failed")
	}
}

func scoreAgainst(jd, resumeText string, doc resume.Document) int {
	jdKeywords := ats.ExtractKeywords(jd)
	resumeSet := ats.ResumeKeywordSet(resumeText)
	match := ats.Compare(jdKeywords, resumeSet)
	return ats.Score(match.Matched.Total(), jdKeywords.Total(), doc)
}
