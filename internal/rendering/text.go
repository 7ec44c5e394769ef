package rendering

import (
	"strings"
	"text/template"

	"github.com/jonathan/cv-optimizer/internal/types"
)

const textTemplate = `{{.NameUpper}}
{{.NameRule}}
{{- if .ContactLine}}
{{.ContactLine}}
{{- end}}
{{- if .OnlineLine}}
{{.OnlineLine}}
{{- end}}
{{- if .Summary}}

PROFESSIONAL SUMMARY
{{.SectionRule}}
{{.Summary}}
{{- end}}
{{- if .Experience}}

PROFESSIONAL EXPERIENCE
{{.SectionRule}}
{{- range .Experience}}
{{.Position}} at {{.Company}}
{{.Dates}}
{{- if .Location}}
Location: {{.Location}}
{{- end}}
{{- if .Description}}
Responsibilities:
{{- range .Description}}
- {{.}}
{{- end}}
{{- end}}
{{- if .Achievements}}
Key Achievements:
{{- range .Achievements}}
- {{.}}
{{- end}}
{{- end}}
{{end}}
{{- end}}
{{- if or .TechnicalSkills .SoftSkills}}

SKILLS
{{.SectionRule}}
{{- if .TechnicalSkills}}
Technical Skills:
{{- range .TechnicalSkills}}
- {{.}}
{{- end}}
{{- end}}
{{- if .SoftSkills}}
Soft Skills:
{{- range .SoftSkills}}
- {{.}}
{{- end}}
{{- end}}
{{- end}}
{{- if .Education}}

EDUCATION
{{.SectionRule}}
{{- range .Education}}
{{.Degree}}{{if .FieldOfStudy}} in {{.FieldOfStudy}}{{end}}
{{.Institution}}
{{- if .GraduationDate}}
Graduated: {{.GraduationDate}}
{{- end}}
{{- if .GPA}}
GPA: {{.GPA}}
{{- end}}
{{end}}
{{- end}}
{{- if .Projects}}

PROJECTS
{{.SectionRule}}
{{- range .Projects}}
{{.Name}}
{{- if .Technologies}}
Technologies: {{.Technologies}}
{{- end}}
{{- if .Description}}
Description: {{.Description}}
{{- end}}
{{- if .URL}}
URL: {{.URL}}
{{- end}}
{{end}}
{{- end}}
`

type textExperience struct {
	Position     string
	Company      string
	Dates        string
	Location     string
	Description  []string
	Achievements []string
}

type textEducation struct {
	Degree         string
	FieldOfStudy   string
	Institution    string
	GraduationDate string
	GPA            string
}

type textProject struct {
	Name         string
	Technologies string
	Description  string
	URL          string
}

type textData struct {
	NameUpper       string
	NameRule        string
	SectionRule     string
	ContactLine     string
	OnlineLine      string
	Summary         string
	Experience      []textExperience
	TechnicalSkills []string
	SoftSkills      []string
	Education       []textEducation
	Projects        []textProject
}

var parsedTextTemplate = template.Must(template.New("cv-text").Parse(textTemplate))

// RenderText produces a plain-text CV.
func RenderText(profile *types.CandidateProfile) (string, error) {
	if profile == nil {
		return "", &RenderError{Message: "profile is nil"}
	}

	var out strings.Builder
	if err := parsedTextTemplate.Execute(&out, buildTextData(profile)); err != nil {
		return "", &TemplateError{Message: "failed to execute text template", Cause: err}
	}
	return out.String(), nil
}

func buildTextData(profile *types.CandidateProfile) *textData {
	name := profile.ContactInfo.FullName
	data := &textData{
		NameUpper:   strings.ToUpper(name),
		NameRule:    strings.Repeat("=", max(len(name), 1)),
		SectionRule: strings.Repeat("=", 50),
		ContactLine: joinNonEmpty(" | ",
			profile.ContactInfo.Email,
			profile.ContactInfo.Phone,
			profile.ContactInfo.Location),
		Summary: profile.Summary,
	}

	var online []string
	if profile.ContactInfo.LinkedIn != "" {
		online = append(online, "LinkedIn: "+profile.ContactInfo.LinkedIn)
	}
	if profile.ContactInfo.GitHub != "" {
		online = append(online, "GitHub: "+profile.ContactInfo.GitHub)
	}
	if profile.ContactInfo.Portfolio != "" {
		online = append(online, "Portfolio: "+profile.ContactInfo.Portfolio)
	}
	data.OnlineLine = strings.Join(online, " | ")

	for _, exp := range profile.EmploymentHistory {
		data.Experience = append(data.Experience, textExperience{
			Position:     exp.Position,
			Company:      exp.Company,
			Dates:        exp.StartDate + " - " + exp.EndDate,
			Location:     exp.Location,
			Description:  exp.Description,
			Achievements: exp.Achievements,
		})
	}

	for _, skill := range profile.TechnicalSkills {
		data.TechnicalSkills = append(data.TechnicalSkills, formatSkill(skill))
	}
	for _, skill := range profile.SoftSkills {
		data.SoftSkills = append(data.SoftSkills, formatSkill(skill))
	}

	for _, edu := range profile.Education {
		data.Education = append(data.Education, textEducation{
			Degree:         edu.Degree,
			FieldOfStudy:   edu.FieldOfStudy,
			Institution:    edu.Institution,
			GraduationDate: edu.GraduationDate,
			GPA:            edu.GPA,
		})
	}

	for _, project := range profile.Projects {
		data.Projects = append(data.Projects, textProject{
			Name:         project.Name,
			Technologies: strings.Join(project.Technologies, ", "),
			Description:  project.Description,
			URL:          project.URL,
		})
	}

	return data
}

func formatSkill(skill types.Skill) string {
	if skill.Proficiency != "" {
		return skill.Name + " (" + skill.Proficiency + ")"
	}
	return skill.Name
}

func joinNonEmpty(sep string, parts ...string) string {
	var kept []string
	for _, part := range parts {
		if part != "" {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, sep)
}
