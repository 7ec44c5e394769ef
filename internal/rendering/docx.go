package rendering

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"strconv"
	"strings"

	"github.com/jonathan/cv-optimizer/internal/types"
)

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

// RenderDocx produces a DOCX CV as a minimal OOXML package with one
// document part.
func RenderDocx(profile *types.CandidateProfile) ([]byte, error) {
	if profile == nil {
		return nil, &RenderError{Message: "profile is nil"}
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	entries := map[string]string{
		"[Content_Types].xml": docxContentTypes,
		"_rels/.rels":         docxRels,
		"word/document.xml":   buildDocumentXML(profile),
	}
	for name, content := range entries {
		entry, err := zw.Create(name)
		if err != nil {
			return nil, &RenderError{Message: "failed to create DOCX entry " + name, Cause: err}
		}
		if _, err := entry.Write([]byte(content)); err != nil {
			return nil, &RenderError{Message: "failed to write DOCX entry " + name, Cause: err}
		}
	}

	if err := zw.Close(); err != nil {
		return nil, &RenderError{Message: "failed to finalize DOCX container", Cause: err}
	}
	return buf.Bytes(), nil
}

// docxBuilder accumulates wordprocessingml paragraphs
type docxBuilder struct {
	body strings.Builder
}

func (b *docxBuilder) paragraph(text string, bold bool, sizeHalfPoints int) {
	b.body.WriteString("<w:p><w:r><w:rPr>")
	if bold {
		b.body.WriteString("<w:b/>")
	}
	if sizeHalfPoints > 0 {
		b.body.WriteString(`<w:sz w:val="` + strconv.Itoa(sizeHalfPoints) + `"/>`)
	}
	b.body.WriteString("</w:rPr><w:t xml:space=\"preserve\">")
	b.body.WriteString(escapeXML(text))
	b.body.WriteString("</w:t></w:r></w:p>")
}

func (b *docxBuilder) heading(text string)  { b.paragraph(text, true, 28) }
func (b *docxBuilder) line(text string)     { b.paragraph(text, false, 0) }
func (b *docxBuilder) bullet(text string)   { b.paragraph("• "+text, false, 0) }
func (b *docxBuilder) emptyLine()           { b.body.WriteString("<w:p/>") }
func (b *docxBuilder) titleLine(text string) { b.paragraph(text, true, 40) }

func buildDocumentXML(profile *types.CandidateProfile) string {
	b := &docxBuilder{}

	b.titleLine(profile.ContactInfo.FullName)
	if contact := joinNonEmpty(" | ", profile.ContactInfo.Email, profile.ContactInfo.Phone, profile.ContactInfo.Location); contact != "" {
		b.line(contact)
	}
	if online := joinNonEmpty(" | ", profile.ContactInfo.LinkedIn, profile.ContactInfo.GitHub, profile.ContactInfo.Portfolio); online != "" {
		b.line(online)
	}

	if profile.Summary != "" {
		b.emptyLine()
		b.heading("Professional Summary")
		b.line(profile.Summary)
	}

	if len(profile.EmploymentHistory) > 0 {
		b.emptyLine()
		b.heading("Professional Experience")
		for _, exp := range profile.EmploymentHistory {
			b.paragraph(exp.Position+" at "+exp.Company, true, 0)
			dates := exp.StartDate + " - " + exp.EndDate
			if exp.Location != "" {
				dates += " | " + exp.Location
			}
			b.line(dates)
			for _, desc := range exp.Description {
				b.bullet(desc)
			}
			for _, achievement := range exp.Achievements {
				b.bullet(achievement)
			}
			b.emptyLine()
		}
	}

	if len(profile.TechnicalSkills) > 0 || len(profile.SoftSkills) > 0 {
		b.heading("Skills")
		if line := skillsLine(profile.TechnicalSkills); line != "" {
			b.line("Technical: " + line)
		}
		if line := skillsLine(profile.SoftSkills); line != "" {
			b.line("Soft: " + line)
		}
	}

	if len(profile.Education) > 0 {
		b.emptyLine()
		b.heading("Education")
		for _, edu := range profile.Education {
			title := edu.Degree
			if edu.FieldOfStudy != "" {
				title += " in " + edu.FieldOfStudy
			}
			b.paragraph(title, true, 0)
			institution := edu.Institution
			if edu.GraduationDate != "" {
				institution += " | " + edu.GraduationDate
			}
			b.line(institution)
		}
	}

	if len(profile.Projects) > 0 {
		b.emptyLine()
		b.heading("Projects")
		for _, project := range profile.Projects {
			b.paragraph(project.Name, true, 0)
			if len(project.Technologies) > 0 {
				b.line("Technologies: " + strings.Join(project.Technologies, ", "))
			}
			if project.Description != "" {
				b.line(project.Description)
			}
		}
	}

	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
		`<w:body>` + b.body.String() + `</w:body></w:document>`
}

func escapeXML(text string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(text))
	return buf.String()
}
