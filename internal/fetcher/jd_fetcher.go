package fetcher

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/gocolly/colly/v2"
)

var (
	ErrInvalidURL   = errors.New("invalid job posting url")
	ErrFetchFailed  = errors.New("job posting fetch failed")
	ErrEmptyPosting = errors.New("job posting has no readable text")
)

// Selectors tried in order; the first non-trivial match wins. Generic
// fallbacks come last so boards without semantic markup still yield text.
var descriptionSelectors = []string{
	"[class*=job-desc]",
	"[class*=jobDescription]",
	"[id*=job-desc]",
	"article",
	"main",
	"body",
}

const minPostingChars = 80

type JobPostingFetcher struct {
	timeout time.Duration
}

func NewJobPostingFetcher() *JobPostingFetcher {
	return &JobPostingFetcher{timeout: 20 * time.Second}
}

// FetchText downloads a job posting page and returns its visible text.
func (f *JobPostingFetcher) FetchText(ctx context.Context, rawURL string) (string, error) {
	target, err := sanitizeURL(rawURL)
	if err != nil {
		return "", err
	}

	host := hostFromURL(target)
	var c *colly.Collector
	if host == "" {
		c = colly.NewCollector()
	} else {
		c = colly.NewCollector(colly.AllowedDomains(host))
	}
	c.SetRequestTimeout(f.timeout)
	_ = c.Limit(&colly.LimitRule{DomainGlob: "*", Parallelism: 1, Delay: 300 * time.Millisecond})

	c.OnRequest(func(r *colly.Request) {
		for k, v := range httpHeaders() {
			r.Headers.Set(k, v)
		}
	})

	texts := map[string]string{}
	for _, sel := range descriptionSelectors {
		sel := sel
		c.OnHTML(sel, func(e *colly.HTMLElement) {
			if _, ok := texts[sel]; ok {
				return
			}
			texts[sel] = collapseWhitespace(e.Text)
		})
	}

	var reqErr error
	c.OnError(func(r *colly.Response, err error) {
		reqErr = err
	})

	if ctx.Err() != nil {
		return "", ctx.Err()
	}
	if err := c.Visit(target); err != nil {
		return "", fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	c.Wait()
	if reqErr != nil {
		return "", fmt.Errorf("%w: %v", ErrFetchFailed, reqErr)
	}

	for _, sel := range descriptionSelectors {
		if t := texts[sel]; len(t) >= minPostingChars {
			return t, nil
		}
	}
	return "", ErrEmptyPosting
}

func sanitizeURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrInvalidURL
	}
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "", ErrInvalidURL
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", ErrInvalidURL
	}
	return u.String(), nil
}

// hostFromURL returns the hostname without any port, matching how the
// collector compares allowed domains.
func hostFromURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return u.Hostname()
}

func httpHeaders() map[string]string {
	return map[string]string{
		"User-Agent":      "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0 Safari/537.36",
		"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
		"Accept-Language": "en-US,en;q=0.9",
	}
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
