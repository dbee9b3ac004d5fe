package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFetcher struct {
	text string
	err  error

	calls int
}

func (f *stubFetcher) FetchText(_ context.Context, _ string) (string, error) {
	f.calls++
	return f.text, f.err
}

type memoryCache struct {
	entries map[string][]byte

	getErr error
	setErr error
	sets   int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string][]byte{}}
}

func (c *memoryCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	if c.getErr != nil {
		return false, c.getErr
	}
	raw, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, out)
}

func (c *memoryCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	if c.setErr != nil {
		return c.setErr
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.entries[key] = raw
	c.sets++
	return nil
}

const optimizeResumeText = "Experienced software engineer skilled in React, Node.js, and JavaScript."
const optimizeJDText = "Seeking a Senior Developer with expertise in Python, React, and Cloud Computing."

func TestOptimizeRequiresResumeText(t *testing.T) {
	u := NewOptimizeUsecase(nil, nil, zerolog.Nop())

	_, err := u.Optimize(context.Background(), OptimizeInput{JobDescription: optimizeJDText})
	assert.ErrorIs(t, err, ErrEmptyResumeText)
}

func TestOptimizeRequiresJobDescriptionOrURL(t *testing.T) {
	u := NewOptimizeUsecase(nil, nil, zerolog.Nop())

	_, err := u.Optimize(context.Background(), OptimizeInput{ResumeText: optimizeResumeText})
	assert.ErrorIs(t, err, ErrEmptyJobDescription)
}

func TestOptimizeAnalyzesInlineJobDescription(t *testing.T) {
	u := NewOptimizeUsecase(nil, nil, zerolog.Nop())

	res, err := u.Optimize(context.Background(), OptimizeInput{
		ResumeText:     optimizeResumeText,
		JobDescription: optimizeJDText,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, res.AnalysisID)
	assert.Greater(t, res.Score, 0)
	assert.Less(t, res.Score, 100)
	assert.Equal(t, res.TotalCount-res.MatchedCount, countAll(res.Missing))
	assert.Equal(t, res.MatchedCount, countAll(res.Matched))

	assert.Contains(t, res.Matched["Technical Skills"], "React")
	assert.Contains(t, res.Missing["Programming Languages"], "Python")
}

func TestOptimizeInlineJDWinsOverURL(t *testing.T) {
	fetcher := &stubFetcher{text: "unused"}
	u := NewOptimizeUsecase(fetcher, nil, zerolog.Nop())

	_, err := u.Optimize(context.Background(), OptimizeInput{
		ResumeText:     optimizeResumeText,
		JobDescription: optimizeJDText,
		JobURL:         "https://jobs.example.com/123",
	})
	require.NoError(t, err)
	assert.Zero(t, fetcher.calls)
}

func TestOptimizeFetchesJobURL(t *testing.T) {
	fetcher := &stubFetcher{text: optimizeJDText}
	u := NewOptimizeUsecase(fetcher, nil, zerolog.Nop())

	res, err := u.Optimize(context.Background(), OptimizeInput{
		ResumeText: optimizeResumeText,
		JobURL:     "https://jobs.example.com/123",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, fetcher.calls)
	assert.Greater(t, res.TotalCount, 0)
}

func TestOptimizeWrapsFetchFailure(t *testing.T) {
	fetcher := &stubFetcher{err: errors.New("connection refused")}
	u := NewOptimizeUsecase(fetcher, nil, zerolog.Nop())

	_, err := u.Optimize(context.Background(), OptimizeInput{
		ResumeText: optimizeResumeText,
		JobURL:     "https://jobs.example.com/123",
	})
	assert.ErrorIs(t, err, ErrJobFetchFailed)
}

func TestOptimizeCachesResult(t *testing.T) {
	cache := newMemoryCache()
	u := NewOptimizeUsecase(nil, cache, zerolog.Nop())

	in := OptimizeInput{ResumeText: optimizeResumeText, JobDescription: optimizeJDText}

	first, err := u.Optimize(context.Background(), in)
	require.NoError(t, err)
	require.Equal(t, 1, cache.sets)

	second, err := u.Optimize(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, first.AnalysisID, second.AnalysisID, "cache hit returns the stored analysis")
	assert.Equal(t, 1, cache.sets, "cache hit does not rewrite the entry")
}

func TestOptimizeSurvivesCacheErrors(t *testing.T) {
	cache := newMemoryCache()
	cache.getErr = errors.New("redis down")
	cache.setErr = errors.New("redis down")
	u := NewOptimizeUsecase(nil, cache, zerolog.Nop())

	res, err := u.Optimize(context.Background(), OptimizeInput{
		ResumeText:     optimizeResumeText,
		JobDescription: optimizeJDText,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.AnalysisID)
}

func countAll(buckets map[string][]string) int {
	n := 0
	for _, vals := range buckets {
		n += len(vals)
	}
	return n
}
