package optimizer

import (
	"regexp"
	"strings"

	"resume-forge/internal/domain/keyword"
	"resume-forge/internal/domain/resume"
)

var (
	reRawURL     = regexp.MustCompile(`(?i)(?:Link:\s*)?(?:https?://|www\.)\S+`)
	reURLNoProto = regexp.MustCompile(`(?i)^https?://`)
)

// validate is the defense-in-depth pass run after every merge: re-dedupe the
// skills buckets, scrub raw URLs out of visible text, and restore defaults
// for required fields. It never removes user-authored experience, education,
// or project content.
func validate(doc *resume.Document) {
	doc.Skills.Technical = dedupeBucket(doc.Skills.Technical)
	doc.Skills.Tools = dedupeBucket(doc.Skills.Tools)
	doc.Skills.SoftSkills = dedupeBucket(doc.Skills.SoftSkills)

	doc.Summary = cleanVisibleText(doc.Summary)
	for i := range doc.Experience {
		for j, bullet := range doc.Experience[i].Description {
			doc.Experience[i].Description[j] = cleanVisibleText(bullet)
		}
	}
	for i := range doc.Projects {
		for j, bullet := range doc.Projects[i].Description {
			doc.Projects[i].Description[j] = cleanVisibleText(bullet)
		}
	}

	doc.PersonalInfo.LinkedIn = formatURL(doc.PersonalInfo.LinkedIn)
	doc.PersonalInfo.GitHub = formatURL(doc.PersonalInfo.GitHub)
	doc.PersonalInfo.Portfolio = formatURL(doc.PersonalInfo.Portfolio)
	doc.PersonalInfo.YouTube = formatURL(doc.PersonalInfo.YouTube)

	ensureDefaults(doc)
}

// dedupeBucket removes case-insensitive duplicates from a comma-separated
// bucket and enforces the capacity cap.
func dedupeBucket(bucket string) string {
	entries := splitCSV(bucket)
	seen := make(map[string]struct{}, len(entries))
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		norm := keyword.Normalize(e)
		if _, ok := seen[norm]; ok {
			continue
		}
		seen[norm] = struct{}{}
		out = append(out, e)
	}
	if len(out) > MaxBucketEntries {
		out = out[:MaxBucketEntries]
	}
	return strings.Join(out, ", ")
}

// cleanVisibleText strips raw URLs from fields meant to hold prose; links
// belong in the dedicated link fields.
func cleanVisibleText(s string) string {
	return strings.TrimSpace(reRawURL.ReplaceAllString(s, ""))
}

func formatURL(url string) string {
	url = strings.TrimSpace(url)
	if url == "" {
		return ""
	}
	if reURLNoProto.MatchString(url) {
		return url
	}
	return "https://" + url
}

func ensureDefaults(doc *resume.Document) {
	if strings.TrimSpace(doc.PersonalInfo.FullName) == "" {
		doc.PersonalInfo.FullName = resume.PlaceholderName
	}
	if doc.Experience == nil {
		doc.Experience = []resume.Experience{}
	}
	if doc.Education == nil {
		doc.Education = []resume.Education{}
	}
	if doc.Projects == nil {
		doc.Projects = []resume.Project{}
	}
	if doc.Certifications == nil {
		doc.Certifications = []resume.Certification{}
	}
	if doc.Languages == nil {
		doc.Languages = []resume.Language{}
	}
	if strings.TrimSpace(doc.Template) == "" {
		doc.Template = "professional"
	}
}

// Sanitize runs the validation pass on a standalone document, for callers
// outside the merge flow (e.g. render requests arriving over the API).
func Sanitize(doc resume.Document) resume.Document {
	out := doc.Clone()
	validate(&out)
	return out
}
