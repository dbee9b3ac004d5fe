package keyword

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases", "Python", "python"},
		{"strips dots", "Node.JS", "nodejs"},
		{"strips hyphens", "CI-CD", "cicd"},
		{"strips underscores", "unit_testing", "unittesting"},
		{"collapses whitespace", "  machine   learning ", "machine learning"},
		{"empty", "", ""},
		{"only separators", ".-_", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Normalize(tc.in))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"Node.JS", "  Cloud   Computing ", "CI/CD", "scikit-learn", ""}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "normalizing twice must equal normalizing once for %q", in)
	}
}

func TestTokenize(t *testing.T) {
	tokens := Tokenize("Built services in Go and Python, deployed with Docker.")

	assert.Contains(t, tokens, "go")
	assert.Contains(t, tokens, "python")
	assert.Contains(t, tokens, "docker")
	assert.NotContains(t, tokens, "Go", "tokens are lowercased")
}

func TestTokenizeDropsSingleChars(t *testing.T) {
	tokens := Tokenize("a b c developer")

	assert.NotContains(t, tokens, "a")
	assert.NotContains(t, tokens, "b")
	assert.Contains(t, tokens, "developer")
}

func TestTokenizePreservesPhrases(t *testing.T) {
	tokens := Tokenize("Experience with Node.js, CI/CD pipelines, and Cloud Computing.")

	assert.Contains(t, tokens, "node.js")
	assert.Contains(t, tokens, "ci/cd")
	assert.Contains(t, tokens, "cloud computing")
}

func TestTokenizeDeduplicates(t *testing.T) {
	tokens := Tokenize("python Python PYTHON")

	count := 0
	for _, tok := range tokens {
		if tok == "python" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestTokenizeEmptyInput(t *testing.T) {
	tokens := Tokenize("")

	require.NotNil(t, tokens)
	assert.Empty(t, tokens)
}
