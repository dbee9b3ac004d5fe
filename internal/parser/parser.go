// Package parser converts raw resume text into a structured document. It is
// deliberately forgiving: any input, including garbage, yields a valid
// fully-defaulted document rather than an error.
package parser

import (
	"regexp"
	"strings"

	"resume-forge/internal/domain/resume"
)

const preambleKey = "_preamble"

// sectionHeaders lists recognized header synonyms, checked in order.
var sectionHeaders = []string{
	"experience", "work experience", "employment", "professional experience",
	"education", "academic", "qualification", "qualifications",
	"skills", "technical skills", "core competencies", "competencies",
	"summary", "professional summary", "objective", "profile", "about",
	"projects", "key projects", "selected projects",
	"certifications", "certificates", "licenses",
	"languages", "language skills",
	"internships", "volunteer", "activities", "achievements",
}

// sectionAlias maps header synonyms to their canonical section key.
var sectionAlias = map[string]string{
	"work experience":          "experience",
	"employment":               "experience",
	"professional experience":  "experience",
	"academic":                 "education",
	"qualification":            "education",
	"qualifications":           "education",
	"technical skills":         "skills",
	"core competencies":        "skills",
	"competencies":             "skills",
	"professional summary":     "summary",
	"objective":                "summary",
	"profile":                  "summary",
	"about":                    "summary",
	"key projects":             "projects",
	"selected projects":        "projects",
	"certificates":             "certifications",
	"licenses":                 "certifications",
	"language skills":          "languages",
}

var (
	reLineSpaces  = regexp.MustCompile(`\s+`)
	reHeaderPunct = regexp.MustCompile(`[:\-–—]`)
	reEmail       = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	rePhone       = regexp.MustCompile(`(?:\+?\d{1,3}[-.\s]?)?\(?\d{2,4}\)?[-.\s]?\d{2,4}[-.\s]?\d{2,4}(?:[-.\s]?\d{2,4})?|\d{10,}`)
	reLinkedIn    = regexp.MustCompile(`(?i)linkedin\.com/(?:in/)?[\w-]+`)
	reGitHub      = regexp.MustCompile(`(?i)github\.com/[\w-]+`)
	reDigitsLine  = regexp.MustCompile(`^\d[\d.\s\-]+$`)
)

func normalizeLine(line string) string {
	return reLineSpaces.ReplaceAllString(strings.TrimSpace(line), " ")
}

// sectionKey resolves a line to a canonical section key, or "" when the line
// is not a header. Detection is heuristic: a short line that equals or
// contains a known synonym (punctuation stripped) counts as a header.
func sectionKey(line string) string {
	normalized := strings.ToLower(normalizeLine(line))
	if len(normalized) < 2 || len(normalized) > 80 {
		return ""
	}
	stripped := strings.TrimSpace(reHeaderPunct.ReplaceAllString(normalized, ""))
	for _, header := range sectionHeaders {
		if stripped == header ||
			strings.HasPrefix(stripped, header+" ") ||
			strings.HasSuffix(stripped, " "+header) ||
			strings.Contains(stripped, header) {
			if alias, ok := sectionAlias[header]; ok {
				return alias
			}
			return header
		}
	}
	return ""
}

// splitSections partitions the text into per-section line lists. Content
// before the first recognized header lands in the preamble pseudo-section.
// Header lines themselves are consumed.
func splitSections(text string) map[string][]string {
	sections := map[string][]string{preambleKey: {}}
	current := preambleKey

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(strings.TrimSuffix(raw, "\r"))
		if line == "" {
			continue
		}
		if key := sectionKey(line); key != "" {
			current = key
			if _, ok := sections[current]; !ok {
				sections[current] = []string{}
			}
			continue
		}
		sections[current] = append(sections[current], line)
	}

	return sections
}

func parsePersonalInfo(preamble []string) resume.PersonalInfo {
	text := strings.Join(preamble, " ")
	info := resume.PersonalInfo{
		Email:    reEmail.FindString(text),
		Phone:    strings.TrimSpace(rePhone.FindString(text)),
		LinkedIn: withScheme(reLinkedIn.FindString(text)),
		GitHub:   withScheme(reGitHub.FindString(text)),
	}

	for _, line := range preamble {
		t := normalizeLine(line)
		if t == "" {
			continue
		}
		if info.Email != "" && strings.Contains(t, info.Email) {
			continue
		}
		if info.Phone != "" && strings.Contains(stripSpaces(t), stripSpaces(info.Phone)) {
			continue
		}
		if len(t) >= 2 && len(t) <= 80 && !strings.Contains(t, "@") && !reDigitsLine.MatchString(t) {
			info.FullName = t
			break
		}
	}
	if info.FullName == "" && len(preamble) > 0 {
		info.FullName = normalizeLine(preamble[0])
	}
	if info.FullName == "" {
		info.FullName = resume.PlaceholderName
	}

	return info
}

func withScheme(url string) string {
	if url == "" {
		return ""
	}
	if strings.HasPrefix(url, "http") {
		return url
	}
	return "https://" + url
}

func stripSpaces(s string) string {
	return strings.ReplaceAll(s, " ", "")
}

// Parse converts raw resume text into a structured document. It never fails:
// empty or malformed input yields a defaulted document.
func Parse(rawText string) resume.Document {
	doc := resume.NewDocument()
	if strings.TrimSpace(rawText) == "" {
		return doc
	}

	sections := splitSections(rawText)
	doc.PersonalInfo = parsePersonalInfo(sections[preambleKey])

	if lines := sections["summary"]; len(lines) > 0 {
		doc.Summary = strings.TrimSpace(strings.Join(lines, " "))
	}
	if lines := sections["skills"]; len(lines) > 0 {
		doc.Skills = parseSkillsBlock(lines)
	}
	if lines := sections["experience"]; len(lines) > 0 {
		doc.Experience = parseExperienceBlock(lines)
	}
	if lines := sections["education"]; len(lines) > 0 {
		doc.Education = parseEducationBlock(lines)
	}
	if lines := sections["projects"]; len(lines) > 0 {
		doc.Projects = parseProjectsBlock(lines)
	}
	if lines := sections["certifications"]; len(lines) > 0 {
		doc.Certifications = parseCertificationsBlock(lines)
	}
	if lines := sections["languages"]; len(lines) > 0 {
		doc.Languages = parseLanguagesBlock(lines)
	}

	return doc
}
