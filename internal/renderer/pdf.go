package renderer

import (
	"bytes"

	"github.com/go-pdf/fpdf"

	"resume-forge/internal/domain/resume"
)

func renderPDF(doc resume.Document, template string, order []string) ([]byte, error) {
	bodySize := 10.0
	headingSize := 12.0
	if template == "compact" {
		bodySize = 9.0
		headingSize = 11.0
	}

	p := fpdf.New("P", "mm", "A4", "")
	p.SetMargins(15, 15, 15)
	p.SetAutoPageBreak(true, 15)
	p.AddPage()

	p.SetFont("Helvetica", "B", 18)
	p.MultiCell(0, 8, doc.PersonalInfo.FullName, "", "L", false)

	p.SetFont("Helvetica", "", bodySize)
	if line := contactLine(doc.PersonalInfo); line != "" {
		p.MultiCell(0, 5, line, "", "L", false)
	}
	if line := linksLine(doc.PersonalInfo); line != "" {
		p.MultiCell(0, 5, line, "", "L", false)
	}
	p.Ln(2)

	heading := func(title string) {
		p.SetFont("Helvetica", "B", headingSize)
		p.MultiCell(0, 6, title, "", "L", false)
		x := p.GetX()
		y := p.GetY()
		pageW, _ := p.GetPageSize()
		p.Line(x, y, pageW-15, y)
		p.Ln(1)
		p.SetFont("Helvetica", "", bodySize)
	}
	body := func(text string) {
		p.MultiCell(0, 5, text, "", "L", false)
	}
	bullet := func(text string) {
		p.SetX(20)
		p.MultiCell(0, 5, "- "+text, "", "L", false)
	}

	for _, key := range order {
		switch key {
		case sectionSummary:
			if doc.Summary == "" {
				continue
			}
			heading(sectionTitle(key))
			body(doc.Summary)
		case sectionSkills:
			if doc.Skills.Empty() {
				continue
			}
			heading(sectionTitle(key))
			if doc.Skills.Technical != "" {
				body("Technical: " + doc.Skills.Technical)
			}
			if doc.Skills.Tools != "" {
				body("Tools: " + doc.Skills.Tools)
			}
			if doc.Skills.SoftSkills != "" {
				body("Soft Skills: " + doc.Skills.SoftSkills)
			}
		case sectionExperience:
			if len(doc.Experience) == 0 {
				continue
			}
			heading(sectionTitle(key))
			for _, e := range doc.Experience {
				p.SetFont("Helvetica", "B", bodySize)
				body(joinNonEmpty([]string{e.Title, e.Company}, " - "))
				p.SetFont("Helvetica", "I", bodySize)
				if meta := joinNonEmpty([]string{e.Location, e.Dates}, " | "); meta != "" {
					body(meta)
				}
				p.SetFont("Helvetica", "", bodySize)
				for _, item := range e.Description {
					bullet(item)
				}
				p.Ln(1)
			}
		case sectionEducation:
			if len(doc.Education) == 0 {
				continue
			}
			heading(sectionTitle(key))
			for _, e := range doc.Education {
				body(joinNonEmpty([]string{e.Qualification, e.Institute, e.Year}, " - "))
				if detail := joinNonEmpty([]string{e.Stream, e.Location, e.Score}, " | "); detail != "" {
					bullet(detail)
				}
			}
		case sectionProjects:
			if len(doc.Projects) == 0 {
				continue
			}
			heading(sectionTitle(key))
			for _, prj := range doc.Projects {
				p.SetFont("Helvetica", "B", bodySize)
				body(prj.Title)
				p.SetFont("Helvetica", "", bodySize)
				if prj.Tools != "" {
					bullet("Tools: " + prj.Tools)
				}
				for _, item := range prj.Description {
					bullet(item)
				}
				if prj.Outcome != "" {
					bullet("Outcome: " + prj.Outcome)
				}
			}
		case sectionCertifications:
			if len(doc.Certifications) == 0 {
				continue
			}
			heading(sectionTitle(key))
			for _, c := range doc.Certifications {
				body(joinNonEmpty([]string{c.Name, c.Organization, c.Year}, " - "))
			}
		case sectionLanguages:
			if len(doc.Languages) == 0 {
				continue
			}
			heading(sectionTitle(key))
			items := []string{}
			for _, l := range doc.Languages {
				items = append(items, joinNonEmpty([]string{l.Language, l.Proficiency}, " - "))
			}
			body(joinNonEmpty(items, ", "))
		}
	}

	var buf bytes.Buffer
	if err := p.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
