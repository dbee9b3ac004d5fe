package parser

import (
	"regexp"
	"strings"

	"resume-forge/internal/domain/keyword"
	"resume-forge/internal/domain/resume"
)

var (
	reSkillSplit = regexp.MustCompile(`[,;|]|\band\b`)
	reEntryLine  = regexp.MustCompile(`^(.+?)\s*[–\-—|]\s*(.+)$`)
	reBulletNum  = regexp.MustCompile(`^\d+\.`)
	reBulletLead = regexp.MustCompile(`^[•\-]\s*|^\d+\.\s*`)
	reYear       = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
	reYearToEnd  = regexp.MustCompile(`\b(?:19|20)\d{2}\b.*$`)
	reDateRange  = regexp.MustCompile(`(?i)\d{4}\s*(?:[-–—]|to)+\s*\d{4}` +
		`|(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\s*\d{4}\s*[-–—]+\s*(?:present|current|(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\s*\d{4})` +
		`|\d{1,2}/\d{4}\s*[-–—]\s*(?:present|\d{1,2}/\d{4})`)
	reLangLine = regexp.MustCompile(`^(.+?)\s*[–\-—:]\s*(.+)$`)
	reSegSplit = regexp.MustCompile(`\s*[–\-—|]\s*`)
)

// parseSkillsBlock splits a skills section on commas/semicolons/"and" and
// routes each phrase into a bucket via the keyword taxonomy. Uncategorized
// phrases default to the technical bucket.
func parseSkillsBlock(lines []string) resume.Skills {
	text := strings.Join(lines, " ")

	var technical, tools, soft []string
	for _, item := range reSkillSplit.Split(text, -1) {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		switch keyword.Categorize(item) {
		case keyword.CategoryTools:
			tools = append(tools, item)
		case keyword.CategorySoftSkills:
			soft = append(soft, item)
		default:
			technical = append(technical, item)
		}
	}

	return resume.Skills{
		Technical:  strings.Join(technical, ", "),
		Tools:      strings.Join(tools, ", "),
		SoftSkills: strings.Join(soft, ", "),
	}
}

func isBullet(line string) bool {
	return strings.HasPrefix(line, "•") || strings.HasPrefix(line, "-") || reBulletNum.MatchString(line)
}

// looksLikeEntryHeader reports whether the line has the "title – company"
// shape that opens a new experience entry.
func looksLikeEntryHeader(line string) bool {
	return reEntryLine.MatchString(line)
}

// parseExperienceBlock groups a section into entries. A dash/pipe-separated
// line opens an entry; following bullets or long free-text lines are its
// description until the next entry header. If nothing matches the entry
// shape, the section degrades to best-effort single-line entries.
func parseExperienceBlock(lines []string) []resume.Experience {
	entries := []resume.Experience{}

	i := 0
	for i < len(lines) {
		m := reEntryLine.FindStringSubmatch(lines[i])
		if m == nil {
			i++
			continue
		}

		title := strings.TrimSpace(m[1])
		rest := strings.TrimSpace(m[2])
		company, location := splitTrailingLocation(rest)
		dates := reDateRange.FindString(lines[i])

		bullets := []string{}
		i++
		for i < len(lines) {
			l := lines[i]
			if !isBullet(l) && !(len(l) > 20 && !looksLikeEntryHeader(l)) {
				break
			}
			bullets = append(bullets, strings.TrimSpace(reBulletLead.ReplaceAllString(l, "")))
			i++
		}

		entries = append(entries, resume.Experience{
			Title:       title,
			Company:     company,
			Location:    location,
			Dates:       dates,
			Description: bullets,
		})
	}

	if len(entries) == 0 && len(lines) > 0 {
		limit := len(lines)
		if limit > 5 {
			limit = 5
		}
		for _, l := range lines[:limit] {
			entries = append(entries, resume.Experience{
				Title:       "Role",
				Company:     "Company",
				Description: []string{strings.TrimSpace(reBulletLead.ReplaceAllString(l, ""))},
			})
		}
	}

	return entries
}

// splitTrailingLocation peels ", location" off the tail of a company
// segment when present.
func splitTrailingLocation(rest string) (company, location string) {
	if idx := strings.LastIndex(rest, ","); idx > 0 {
		return strings.TrimSpace(rest[:idx]), strings.TrimSpace(rest[idx+1:])
	}
	return rest, ""
}

// parseEducationBlock treats each dash/pipe-separated line as one entry:
// first segment is the qualification, the remainder institute/stream text,
// with an embedded four-digit year pulled out. A section with no such lines
// becomes a single best-effort entry.
func parseEducationBlock(lines []string) []resume.Education {
	entries := []resume.Education{}

	for _, line := range lines {
		m := reEntryLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		rest := strings.TrimSpace(m[2])
		year := reYear.FindString(rest)
		stream := strings.TrimSpace(reYearToEnd.ReplaceAllString(rest, ""))
		if stream == "" {
			stream = rest
		}
		entries = append(entries, resume.Education{
			Qualification: strings.TrimSpace(m[1]),
			Stream:        stream,
			Institute:     rest,
			Year:          year,
		})
	}

	if len(entries) == 0 && len(lines) > 0 {
		entries = append(entries, resume.Education{
			Qualification: lines[0],
			Institute:     lines[0],
		})
	}

	return entries
}

// parseProjectsBlock opens an entry on each short non-bullet title line and
// attaches following bullet-like or long lines as description.
func parseProjectsBlock(lines []string) []resume.Project {
	entries := []resume.Project{}

	i := 0
	for i < len(lines) {
		line := lines[i]
		if len(line) <= 3 || isBullet(line) {
			i++
			continue
		}

		bullets := []string{}
		i++
		for i < len(lines) && (isBullet(lines[i]) || len(lines[i]) > 30) {
			bullets = append(bullets, strings.TrimSpace(reBulletLead.ReplaceAllString(lines[i], "")))
			i++
		}

		entries = append(entries, resume.Project{
			Title:       line,
			Description: bullets,
		})
	}

	return entries
}

func parseCertificationsBlock(lines []string) []resume.Certification {
	entries := []resume.Certification{}

	for _, line := range lines {
		name := line
		org := ""
		if m := reEntryLine.FindStringSubmatch(line); m != nil {
			name = strings.TrimSpace(m[1])
			org, _ = splitFirstSegment(m[2])
		}
		if name == "" {
			continue
		}
		entries = append(entries, resume.Certification{
			Name:         name,
			Organization: org,
			Year:         reYear.FindString(line),
		})
	}

	return entries
}

// splitFirstSegment returns the first dash/pipe-separated segment and the
// remainder.
func splitFirstSegment(s string) (first, rest string) {
	parts := reSegSplit.Split(strings.TrimSpace(s), 2)
	if len(parts) == 2 {
		return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	}
	return strings.TrimSpace(s), ""
}

func parseLanguagesBlock(lines []string) []resume.Language {
	entries := []resume.Language{}

	for _, line := range lines {
		if m := reLangLine.FindStringSubmatch(line); m != nil {
			entries = append(entries, resume.Language{
				Language:    strings.TrimSpace(m[1]),
				Proficiency: strings.TrimSpace(m[2]),
			})
			continue
		}
		entries = append(entries, resume.Language{Language: line})
	}

	return entries
}
