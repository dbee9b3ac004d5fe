package usecase

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalysisCacheKeyIsStable(t *testing.T) {
	a := AnalysisCacheKey("resume text", "job description")
	b := AnalysisCacheKey("resume text", "job description")

	assert.Equal(t, a, b)
	assert.True(t, strings.HasPrefix(a, "analysis:"))
}

func TestAnalysisCacheKeyIgnoresCaseAndSpacing(t *testing.T) {
	a := AnalysisCacheKey("Resume   Text", "Job Description")
	b := AnalysisCacheKey("resume text  ", "  job description")

	assert.Equal(t, a, b)
}

func TestAnalysisCacheKeyVariesByInput(t *testing.T) {
	a := AnalysisCacheKey("resume one", "jd")
	b := AnalysisCacheKey("resume two", "jd")
	c := AnalysisCacheKey("resume one", "other jd")

	assert.NotEqual(t, a, b)
	assert.NotEqual(t, a, c)
}
