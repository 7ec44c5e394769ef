// Package parsing turns raw CV and job posting text into structured
// profiles using LLM extraction, with JSON Schema validation on the way in.
package parsing

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/cv-optimizer/internal/llm"
	"github.com/jonathan/cv-optimizer/internal/schemas"
	"github.com/jonathan/cv-optimizer/internal/types"
)

const cvExtractionPrompt = `You are an expert CV parser. Extract structured information from the provided CV text.

Return the analysis as a JSON object with the following structure:
{
  "contact_info": {
    "full_name": "Full name",
    "email": "Email address",
    "phone": "Phone number",
    "location": "Location/City, State",
    "linkedin": "LinkedIn URL",
    "github": "GitHub URL",
    "portfolio": "Portfolio URL",
    "website": "Personal website"
  },
  "summary": "Professional summary",
  "employment_history": [
    {
      "company": "Company name",
      "position": "Job title",
      "start_date": "Start date",
      "end_date": "End date (or 'Present')",
      "location": "Job location",
      "description": ["Responsibility 1", "Responsibility 2"],
      "achievements": ["Achievement 1", "Achievement 2"],
      "technologies": ["Tech 1", "Tech 2"]
    }
  ],
  "education": [
    {
      "institution": "Institution name",
      "degree": "Degree type",
      "field_of_study": "Field of study",
      "graduation_date": "Graduation date",
      "gpa": "GPA if available",
      "honors": "Honors if any",
      "relevant_courses": ["Course 1", "Course 2"],
      "thesis": "Thesis topic if applicable"
    }
  ],
  "technical_skills": [
    {
      "name": "Skill name",
      "category": "technical",
      "proficiency": "beginner/intermediate/advanced/expert",
      "years_experience": 0,
      "keywords": ["keyword1", "keyword2"]
    }
  ],
  "soft_skills": [...same shape with category "soft"...],
  "languages": [...same shape with category "language"...],
  "certifications": ["Certification 1", "Certification 2"],
  "projects": [
    {
      "name": "Project name",
      "description": "Project description",
      "technologies": ["Tech 1", "Tech 2"],
      "url": "Project URL",
      "github_url": "GitHub URL",
      "impact": "Project impact",
      "role": "Role in project",
      "duration": "Project duration",
      "team_size": 1
    }
  ]
}

Be precise and extract only what is explicitly stated in the CV. Use empty strings or empty arrays for missing information.
Ensure the output is valid JSON.

CV text:
%s`

// ParseCandidateProfile extracts a structured CandidateProfile from raw CV text.
func ParseCandidateProfile(ctx context.Context, client llm.Client, cvText string) (*types.CandidateProfile, error) {
	if strings.TrimSpace(cvText) == "" {
		return nil, &ParseError{Message: "CV text is empty"}
	}

	prompt := fmt.Sprintf(cvExtractionPrompt, cvText)
	responseText, err := client.GenerateJSON(ctx, prompt)
	if err != nil {
		return nil, &APICallError{
			Message: "failed to extract CV structure",
			Cause:   err,
		}
	}

	responseText = llm.CleanJSONBlock(responseText)

	if err := schemas.ValidateCandidateProfile(responseText); err != nil {
		return nil, err
	}

	var profile types.CandidateProfile
	if err := json.Unmarshal([]byte(responseText), &profile); err != nil {
		return nil, &ParseError{
			Message: "failed to parse CV JSON response",
			Cause:   err,
		}
	}

	postProcessCandidate(&profile)
	return &profile, nil
}

// postProcessCandidate applies defensive defaults. The model is asked for
// the right categories, but the tagged lists are authoritative.
func postProcessCandidate(profile *types.CandidateProfile) {
	forceSkillDefaults(profile.TechnicalSkills, types.CategoryTechnical)
	forceSkillDefaults(profile.SoftSkills, types.CategorySoft)
	forceSkillDefaults(profile.Languages, types.CategoryLanguage)

	for i := range profile.EmploymentHistory {
		exp := &profile.EmploymentHistory[i]
		exp.Company = strings.TrimSpace(exp.Company)
		exp.Position = strings.TrimSpace(exp.Position)
		if exp.Description == nil {
			exp.Description = []string{}
		}
		if exp.Achievements == nil {
			exp.Achievements = []string{}
		}
	}

	if profile.Certifications == nil {
		profile.Certifications = []string{}
	}
}

func forceSkillDefaults(skills []types.Skill, category string) {
	for i := range skills {
		skills[i].Name = NormalizeSkillName(skills[i].Name)
		skills[i].Category = category
		if skills[i].Proficiency == "" {
			skills[i].Proficiency = types.ProficiencyIntermediate
		}
	}
}
