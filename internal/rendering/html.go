package rendering

import (
	"html/template"
	"strings"

	"github.com/jonathan/cv-optimizer/internal/types"
)

const htmlTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  body {
    font-family: {{.Style.FontFamily}};
    line-height: {{.Style.LineSpacing}};
    margin: {{.Style.MarginInches}}in;
    color: #222;
  }
  h1 { color: {{.Style.HeaderColor}}; text-align: center; margin-bottom: 4px; }
  h2 { color: {{.Style.SectionColor}}; border-bottom: 1px solid {{.Style.AccentColor}}; padding-bottom: 2px; }
  .contact { text-align: center; color: {{.Style.SectionColor}}; font-size: 10pt; }
  .online { text-align: center; color: {{.Style.AccentColor}}; font-size: 9pt; }
  .role { color: {{.Style.HeaderColor}}; font-weight: bold; }
  .dates { color: {{.Style.AccentColor}}; font-size: 10pt; }
  ul { margin-top: 4px; }
</style>
</head>
<body>
<h1>{{.Profile.ContactInfo.FullName}}</h1>
{{- if .ContactLine}}
<p class="contact">{{.ContactLine}}</p>
{{- end}}
{{- if .OnlineLine}}
<p class="online">{{.OnlineLine}}</p>
{{- end}}
{{- if .Profile.Summary}}
<h2>Professional Summary</h2>
<p>{{.Profile.Summary}}</p>
{{- end}}
{{- if .Profile.EmploymentHistory}}
<h2>Professional Experience</h2>
{{- range .Profile.EmploymentHistory}}
<p><span class="role">{{.Position}}</span> at {{.Company}}<br>
<span class="dates">{{.StartDate}} - {{.EndDate}}{{if .Location}} | {{.Location}}{{end}}</span></p>
{{- if .Description}}
<ul>
{{- range .Description}}
<li>{{.}}</li>
{{- end}}
</ul>
{{- end}}
{{- if .Achievements}}
<ul>
{{- range .Achievements}}
<li>{{.}}</li>
{{- end}}
</ul>
{{- end}}
{{- end}}
{{- end}}
{{- if or .Profile.TechnicalSkills .Profile.SoftSkills}}
<h2>Skills</h2>
{{- if .TechnicalSkillsLine}}
<p><strong>Technical:</strong> {{.TechnicalSkillsLine}}</p>
{{- end}}
{{- if .SoftSkillsLine}}
<p><strong>Soft:</strong> {{.SoftSkillsLine}}</p>
{{- end}}
{{- end}}
{{- if .Profile.Education}}
<h2>Education</h2>
{{- range .Profile.Education}}
<p><span class="role">{{.Degree}}{{if .FieldOfStudy}} in {{.FieldOfStudy}}{{end}}</span><br>
{{.Institution}}{{if .GraduationDate}} | {{.GraduationDate}}{{end}}</p>
{{- end}}
{{- end}}
{{- if .Profile.Projects}}
<h2>Projects</h2>
{{- range .Profile.Projects}}
<p><span class="role">{{.Name}}</span>{{if .Technologies}} | {{range $i, $t := .Technologies}}{{if $i}}, {{end}}{{$t}}{{end}}{{end}}<br>
{{.Description}}</p>
{{- end}}
{{- end}}
</body>
</html>`

type htmlData struct {
	Profile             *types.CandidateProfile
	Style               Style
	ContactLine         string
	OnlineLine          string
	TechnicalSkillsLine string
	SoftSkillsLine      string
}

var parsedHTMLTemplate = template.Must(template.New("cv-html").Parse(htmlTemplate))

// RenderHTML produces a styled HTML CV used as the PDF source.
func RenderHTML(profile *types.CandidateProfile, style Style) (string, error) {
	if profile == nil {
		return "", &RenderError{Message: "profile is nil"}
	}

	data := &htmlData{
		Profile: profile,
		Style:   style,
		ContactLine: joinNonEmpty(" | ",
			profile.ContactInfo.Email,
			profile.ContactInfo.Phone,
			profile.ContactInfo.Location),
		OnlineLine: joinNonEmpty(" | ",
			profile.ContactInfo.LinkedIn,
			profile.ContactInfo.GitHub,
			profile.ContactInfo.Portfolio),
		TechnicalSkillsLine: skillsLine(profile.TechnicalSkills),
		SoftSkillsLine:      skillsLine(profile.SoftSkills),
	}

	var out strings.Builder
	if err := parsedHTMLTemplate.Execute(&out, data); err != nil {
		return "", &TemplateError{Message: "failed to execute HTML template", Cause: err}
	}
	return out.String(), nil
}

func skillsLine(skills []types.Skill) string {
	names := make([]string, 0, len(skills))
	for _, skill := range skills {
		names = append(names, skill.Name)
	}
	return strings.Join(names, ", ")
}
