package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"resume-forge/internal/domain/ats"
	"resume-forge/internal/parser"
	"resume-forge/internal/ws"
)

var (
	ErrEmptyResumeText     = errors.New("resume text is required")
	ErrEmptyJobDescription = errors.New("job description or job url is required")
	ErrJobFetchFailed      = errors.New("could not read job posting")
)

// PostingFetcher resolves a job posting URL into its visible text.
type PostingFetcher interface {
	FetchText(ctx context.Context, rawURL string) (string, error)
}

// AnalysisCache is the subset of the Redis cache the optimizer needs.
type AnalysisCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

type OptimizeInput struct {
	ResumeText     string
	JobDescription string
	JobURL         string
}

type OptimizeResult struct {
	AnalysisID   string              `json:"analysisId"`
	Score        int                 `json:"score"`
	MatchedCount int                 `json:"matchedCount"`
	TotalCount   int                 `json:"totalCount"`
	Matched      map[string][]string `json:"matched"`
	Missing      map[string][]string `json:"missing"`
}

type OptimizeUsecase interface {
	Optimize(ctx context.Context, in OptimizeInput) (OptimizeResult, error)
}

type Optimize struct {
	fetcher PostingFetcher
	cache   AnalysisCache
	logger  zerolog.Logger
}

func NewOptimizeUsecase(fetcher PostingFetcher, cache AnalysisCache, logger zerolog.Logger) *Optimize {
	return &Optimize{fetcher: fetcher, cache: cache, logger: logger}
}

func (u *Optimize) Optimize(ctx context.Context, in OptimizeInput) (OptimizeResult, error) {
	resumeText := strings.TrimSpace(in.ResumeText)
	if resumeText == "" {
		return OptimizeResult{}, ErrEmptyResumeText
	}

	jd, err := u.resolveJobDescription(ctx, in)
	if err != nil {
		return OptimizeResult{}, err
	}

	key := AnalysisCacheKey(resumeText, jd)
	if u.cache != nil {
		var cached OptimizeResult
		if found, err := u.cache.GetJSON(ctx, key, &cached); err == nil && found {
			return cached, nil
		}
	}

	jdKeywords := ats.ExtractKeywords(jd)
	resumeSet := ats.ResumeKeywordSet(resumeText)
	match := ats.Compare(jdKeywords, resumeSet)

	doc := parser.Parse(resumeText)
	matchedCount := match.Matched.Total()
	totalCount := jdKeywords.Total()
	score := ats.Score(matchedCount, totalCount, doc)

	result := OptimizeResult{
		AnalysisID:   uuid.NewString(),
		Score:        score,
		MatchedCount: matchedCount,
		TotalCount:   totalCount,
		Matched:      match.Matched.DisplayByCategory(),
		Missing:      match.Missing.DisplayByCategory(),
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, result, 0); err != nil {
			u.logger.Debug().Err(err).Msg("analysis cache write skipped")
		}
	}

	ws.NotifyAnalysisCompleted(result.AnalysisID, result.Score, matchedCount, totalCount-matchedCount)

	return result, nil
}

func (u *Optimize) resolveJobDescription(ctx context.Context, in OptimizeInput) (string, error) {
	jd := strings.TrimSpace(in.JobDescription)
	if jd != "" {
		return jd, nil
	}

	jobURL := strings.TrimSpace(in.JobURL)
	if jobURL == "" {
		return "", ErrEmptyJobDescription
	}
	if u.fetcher == nil {
		return "", ErrJobFetchFailed
	}

	text, err := u.fetcher.FetchText(ctx, jobURL)
	if err != nil {
		u.logger.Warn().Err(err).Str("job_url", jobURL).Msg("job posting fetch failed")
		return "", fmt.Errorf("%w: %v", ErrJobFetchFailed, err)
	}
	return text, nil
}
