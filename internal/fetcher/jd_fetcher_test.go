package fetcher

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeURL(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"already https", "https://jobs.example.com/123", "https://jobs.example.com/123"},
		{"plain http kept", "http://jobs.example.com/123", "http://jobs.example.com/123"},
		{"scheme added", "jobs.example.com/123", "https://jobs.example.com/123"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := sanitizeURL(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSanitizeURLRejectsBadInput(t *testing.T) {
	for _, in := range []string{"", "   ", "https://"} {
		_, err := sanitizeURL(in)
		assert.ErrorIs(t, err, ErrInvalidURL, "input %q", in)
	}
}

func TestFetchTextReadsJobDescription(t *testing.T) {
	body := `<html><body>
		<nav>menu items</nav>
		<div class="job-description">` + strings.Repeat("Build and operate backend services in Go. ", 5) + `</div>
	</body></html>`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(body))
	}))
	defer srv.Close()

	f := NewJobPostingFetcher()
	text, err := f.FetchText(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.Contains(t, text, "Build and operate backend services in Go.")
	assert.NotContains(t, text, "menu items", "selector targets the description block, not the chrome")
}

func TestFetchTextEmptyPosting(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<html><body><p>tiny</p></body></html>`))
	}))
	defer srv.Close()

	f := NewJobPostingFetcher()
	_, err := f.FetchText(context.Background(), srv.URL)

	assert.ErrorIs(t, err, ErrEmptyPosting)
}

func TestFetchTextInvalidURL(t *testing.T) {
	f := NewJobPostingFetcher()

	_, err := f.FetchText(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidURL)
}

func TestCollapseWhitespace(t *testing.T) {
	assert.Equal(t, "a b c", collapseWhitespace("  a\n\tb   c "))
}
