package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
)

type analysisCacheKeyInput struct {
	ResumeText     string `json:"resume_text"`
	JobDescription string `json:"job_description"`
}

func normalizeCacheValue(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.Join(strings.Fields(s), " ")
	return s
}

func AnalysisCacheKey(resumeText, jobDescription string) string {
	in := analysisCacheKeyInput{
		ResumeText:     normalizeCacheValue(resumeText),
		JobDescription: normalizeCacheValue(jobDescription),
	}
	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return "analysis:" + hex.EncodeToString(sum[:])
}
