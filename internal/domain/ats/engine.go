// Package ats extracts categorized keywords from free text and scores a
// resume against a job description. Pure and CPU-bound; no I/O.
package ats

import (
	"math"
	"strings"

	"resume-forge/internal/domain/keyword"
	"resume-forge/internal/domain/resume"
)

const (
	keywordWeight   = 75
	sectionCap      = 25
	minSummaryChars = 20
)

// MatchResult partitions a job description's keywords into those found in
// the resume and those missing from it. Every JD keyword appears in exactly
// one of the two sets, in its original category and display form.
type MatchResult struct {
	Matched keyword.CategorizedSet
	Missing keyword.CategorizedSet
}

// ExtractKeywords tokenizes text and categorizes every token, deduplicating
// by normalized form across the whole set.
func ExtractKeywords(text string) keyword.CategorizedSet {
	set := keyword.NewCategorizedSet()
	seen := make(map[string]struct{})
	for _, token := range keyword.Tokenize(text) {
		kw := keyword.New(token)
		if _, ok := seen[kw.Normalized]; ok {
			continue
		}
		seen[kw.Normalized] = struct{}{}
		set.Add(kw)
	}
	return set
}

// ResumeKeywordSet builds the normalized keyword universe of a resume: every
// categorized keyword plus every raw word token. The wider word set lets a
// JD keyword match even when the resume mentions it only in passing.
func ResumeKeywordSet(resumeText string) map[string]struct{} {
	set := ExtractKeywords(resumeText).NormalizedForms()
	for _, token := range keyword.Tokenize(resumeText) {
		set[keyword.Normalize(token)] = struct{}{}
	}
	return set
}

// Compare places each JD keyword into matched or missing depending on
// whether its normalized form occurs in the resume set.
func Compare(jd keyword.CategorizedSet, resumeSet map[string]struct{}) MatchResult {
	res := MatchResult{
		Matched: keyword.NewCategorizedSet(),
		Missing: keyword.NewCategorizedSet(),
	}
	for _, c := range keyword.Categories() {
		for _, kw := range jd[c] {
			if _, ok := resumeSet[kw.Normalized]; ok {
				res.Matched.Add(kw)
			} else {
				res.Missing.Add(kw)
			}
		}
	}
	return res
}

// Score computes the 0-100 ATS compatibility score: up to 75 points for the
// keyword match ratio and up to 25 for section presence.
func Score(matchedCount, totalCount int, doc resume.Document) int {
	score := 0
	if totalCount > 0 {
		ratio := float64(matchedCount) / float64(totalCount)
		score = int(math.Round(ratio * keywordWeight))
	}

	section := 0
	if len(strings.TrimSpace(doc.Summary)) > minSummaryChars {
		section += 5
	}
	if !doc.Skills.Empty() {
		section += 5
	}
	if len(doc.Experience) > 0 {
		section += 10
	}
	if len(doc.Education) > 0 {
		section += 5
	}
	if doc.PersonalInfo.Email != "" || doc.PersonalInfo.Phone != "" {
		section += 5
	}
	if section > sectionCap {
		section = sectionCap
	}
	score += section

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
