package renderer

import (
	"archive/zip"
	"bytes"
	"strconv"
	"strings"

	"resume-forge/internal/domain/resume"
)

// Minimal OOXML skeleton: a docx is a zip with content types, a package
// relationship, and the document part.

const docxContentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const docxRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

func renderDocx(doc resume.Document, order []string) ([]byte, error) {
	var body strings.Builder

	writeHeadline(&body, doc.PersonalInfo.FullName)
	if line := contactLine(doc.PersonalInfo); line != "" {
		writeParagraph(&body, line, false)
	}
	if line := linksLine(doc.PersonalInfo); line != "" {
		writeParagraph(&body, line, false)
	}

	for _, key := range order {
		switch key {
		case sectionSummary:
			if doc.Summary == "" {
				continue
			}
			writeHeading(&body, sectionTitle(key))
			writeParagraph(&body, doc.Summary, false)
		case sectionSkills:
			if doc.Skills.Empty() {
				continue
			}
			writeHeading(&body, sectionTitle(key))
			if doc.Skills.Technical != "" {
				writeParagraph(&body, "Technical: "+doc.Skills.Technical, false)
			}
			if doc.Skills.Tools != "" {
				writeParagraph(&body, "Tools: "+doc.Skills.Tools, false)
			}
			if doc.Skills.SoftSkills != "" {
				writeParagraph(&body, "Soft Skills: "+doc.Skills.SoftSkills, false)
			}
		case sectionExperience:
			if len(doc.Experience) == 0 {
				continue
			}
			writeHeading(&body, sectionTitle(key))
			for _, e := range doc.Experience {
				writeParagraph(&body, joinNonEmpty([]string{e.Title, e.Company}, " - "), true)
				if meta := joinNonEmpty([]string{e.Location, e.Dates}, " | "); meta != "" {
					writeParagraph(&body, meta, false)
				}
				for _, item := range e.Description {
					writeParagraph(&body, "- "+item, false)
				}
			}
		case sectionEducation:
			if len(doc.Education) == 0 {
				continue
			}
			writeHeading(&body, sectionTitle(key))
			for _, e := range doc.Education {
				writeParagraph(&body, joinNonEmpty([]string{e.Qualification, e.Institute, e.Year}, " - "), false)
			}
		case sectionProjects:
			if len(doc.Projects) == 0 {
				continue
			}
			writeHeading(&body, sectionTitle(key))
			for _, prj := range doc.Projects {
				writeParagraph(&body, prj.Title, true)
				for _, item := range prj.Description {
					writeParagraph(&body, "- "+item, false)
				}
			}
		case sectionCertifications:
			if len(doc.Certifications) == 0 {
				continue
			}
			writeHeading(&body, sectionTitle(key))
			for _, c := range doc.Certifications {
				writeParagraph(&body, joinNonEmpty([]string{c.Name, c.Organization, c.Year}, " - "), false)
			}
		case sectionLanguages:
			if len(doc.Languages) == 0 {
				continue
			}
			writeHeading(&body, sectionTitle(key))
			for _, l := range doc.Languages {
				writeParagraph(&body, joinNonEmpty([]string{l.Language, l.Proficiency}, " - "), false)
			}
		}
	}

	document := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
		`<w:body>` + body.String() + `</w:body></w:document>`

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, part := range []struct {
		name, content string
	}{
		{"[Content_Types].xml", docxContentTypes},
		{"_rels/.rels", docxRels},
		{"word/document.xml", document},
	} {
		w, err := zw.Create(part.name)
		if err != nil {
			return nil, err
		}
		if _, err := w.Write([]byte(part.content)); err != nil {
			return nil, err
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeHeadline(b *strings.Builder, text string) {
	b.WriteString(`<w:p><w:pPr><w:rPr><w:b/><w:sz w:val="40"/></w:rPr></w:pPr>`)
	writeRun(b, text, true, 40)
	b.WriteString(`</w:p>`)
}

func writeHeading(b *strings.Builder, text string) {
	b.WriteString(`<w:p>`)
	writeRun(b, text, true, 26)
	b.WriteString(`</w:p>`)
}

func writeParagraph(b *strings.Builder, text string, bold bool) {
	b.WriteString(`<w:p>`)
	writeRun(b, text, bold, 0)
	b.WriteString(`</w:p>`)
}

func writeRun(b *strings.Builder, text string, bold bool, halfPts int) {
	b.WriteString(`<w:r><w:rPr>`)
	if bold {
		b.WriteString(`<w:b/>`)
	}
	if halfPts > 0 {
		b.WriteString(`<w:sz w:val="` + strconv.Itoa(halfPts) + `"/>`)
	}
	b.WriteString(`</w:rPr><w:t xml:space="preserve">`)
	b.WriteString(escapeXML(text))
	b.WriteString(`</w:t></w:r>`)
}

func escapeXML(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;", "'", "&apos;")
	return r.Replace(s)
}

