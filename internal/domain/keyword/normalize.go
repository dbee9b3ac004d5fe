package keyword

import (
	"regexp"
	"strings"
)

var (
	reSpaces  = regexp.MustCompile(`\s+`)
	reNonWord = regexp.MustCompile(`[^a-zA-Z0-9]+`)

	// Multi-word phrases worth matching as a unit. Splitting on word
	// boundaries alone would lose these.
	rePhrases = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(machine learning|deep learning|data science|project management|problem solving|critical thinking|team (?:work|leadership)|cross[- ]?functional|time management|communication skills)\b`),
		regexp.MustCompile(`(?i)\b(react native|node\.?js|angular|vue\.?js|ruby on rails|asp\.?net|spring boot)\b`),
		regexp.MustCompile(`(?i)\b(rest api|graphql|microservices|cloud computing|aws|azure|gcp|ci/cd|devops)\b`),
	}
)

// Normalize folds a keyword to its canonical matching form: lowercase,
// dots/hyphens/underscores removed, whitespace collapsed, trimmed.
// Idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = strings.NewReplacer(".", "", "-", "", "_", "").Replace(s)
	s = reSpaces.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Tokenize splits text into lowercased candidate keyword tokens: single
// words of length >= 2 plus any known multi-word phrase occurrences.
// The result is deduplicated; order is not significant.
func Tokenize(text string) []string {
	if strings.TrimSpace(text) == "" {
		return []string{}
	}
	flat := reSpaces.ReplaceAllString(text, " ")

	seen := make(map[string]struct{})
	out := make([]string, 0, 64)
	add := func(tok string) {
		if _, ok := seen[tok]; ok {
			return
		}
		seen[tok] = struct{}{}
		out = append(out, tok)
	}

	for _, w := range reNonWord.Split(flat, -1) {
		if len(w) < 2 {
			continue
		}
		add(strings.ToLower(w))
	}

	for _, re := range rePhrases {
		for _, m := range re.FindAllStringSubmatch(flat, -1) {
			phrase := reSpaces.ReplaceAllString(strings.ToLower(m[1]), " ")
			add(phrase)
		}
	}

	return out
}
