// Package renderer produces PDF and DOCX byte streams from a structured
// resume. Layout and section ordering vary by template; content never does.
package renderer

import (
	"errors"
	"strings"

	"resume-forge/internal/domain/resume"
)

type Format string

const (
	FormatPDF  Format = "pdf"
	FormatDocx Format = "docx"
)

var ErrUnknownFormat = errors.New("unknown output format")

const (
	sectionSummary        = "summary"
	sectionSkills         = "skills"
	sectionExperience     = "experience"
	sectionEducation      = "education"
	sectionProjects       = "projects"
	sectionCertifications = "certifications"
	sectionLanguages      = "languages"
)

// templates maps a template id to its section ordering. Unknown ids fall
// back to "professional".
var templates = map[string][]string{
	"professional": {
		sectionSummary, sectionSkills, sectionExperience, sectionEducation,
		sectionProjects, sectionCertifications, sectionLanguages,
	},
	"modern": {
		sectionSummary, sectionExperience, sectionProjects, sectionSkills,
		sectionEducation, sectionCertifications, sectionLanguages,
	},
	"compact": {
		sectionSkills, sectionExperience, sectionEducation, sectionSummary,
		sectionProjects, sectionCertifications, sectionLanguages,
	},
}

func sectionOrder(template string) []string {
	if order, ok := templates[strings.ToLower(strings.TrimSpace(template))]; ok {
		return order
	}
	return templates["professional"]
}

// ContentType returns the MIME type for a rendered format.
func ContentType(f Format) string {
	if f == FormatDocx {
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	}
	return "application/pdf"
}

// Render produces the document bytes for the requested format. The input is
// expected to be fully defaulted; nil lists and empty names are tolerated
// but not beautified.
func Render(doc resume.Document, format Format, template string) ([]byte, error) {
	order := sectionOrder(template)
	switch format {
	case FormatPDF:
		return renderPDF(doc, template, order)
	case FormatDocx:
		return renderDocx(doc, order)
	default:
		return nil, ErrUnknownFormat
	}
}

func contactLine(info resume.PersonalInfo) string {
	parts := []string{}
	for _, p := range []string{info.Email, info.Phone, joinNonEmpty([]string{info.City, info.State, info.Country}, ", ")} {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " | ")
}

func linksLine(info resume.PersonalInfo) string {
	return joinNonEmpty([]string{info.LinkedIn, info.GitHub, info.Portfolio, info.YouTube}, " | ")
}

func joinNonEmpty(parts []string, sep string) string {
	out := []string{}
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, sep)
}

func sectionTitle(key string) string {
	switch key {
	case sectionSummary:
		return "Professional Summary"
	case sectionSkills:
		return "Skills"
	case sectionExperience:
		return "Experience"
	case sectionEducation:
		return "Education"
	case sectionProjects:
		return "Projects"
	case sectionCertifications:
		return "Certifications"
	case sectionLanguages:
		return "Languages"
	}
	return key
}
