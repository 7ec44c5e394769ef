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

const jobExtractionPrompt = `You are an expert job description analyzer. Extract structured information from the provided job description.

Return the analysis as a JSON object with the following structure:
{
  "title": "Job title",
  "company": {
    "name": "Company name",
    "industry": "Industry",
    "size": "Company size (startup/small/medium/large/enterprise)",
    "location": "Location",
    "remote_policy": "Remote policy",
    "culture_keywords": ["culture", "keywords"],
    "tech_stack": ["tech", "stack"]
  },
  "location": "Job location",
  "employment_type": "Employment type",
  "experience_level": "Experience level",
  "salary_range": "Salary range",
  "description": "Full description",
  "required_skills": [
    {
      "skill_name": "Skill name",
      "category": "technical/soft/tool/certification",
      "level": "beginner/intermediate/advanced/expert",
      "years_experience": null,
      "required": true,
      "alternatives": [],
      "industry_specific": false
    }
  ],
  "preferred_skills": [...same shape with "required": false...],
  "experience_requirements": {
    "years_required": 0,
    "role_type": "Role type",
    "relevant_positions": [],
    "industry_preference": [],
    "project_scale": ""
  },
  "education_requirements": {
    "degree_level": "Degree level",
    "field_of_study": [],
    "required": true,
    "equivalent_experience": false,
    "certifications_accepted": []
  },
  "responsibilities": ["Responsibility 1", "Responsibility 2"],
  "duties": ["Duty 1", "Duty 2"],
  "benefits": ["Benefit 1", "Benefit 2"],
  "perks": ["Perk 1", "Perk 2"],
  "keywords": ["keyword1", "keyword2"],
  "industry_keywords": ["industry", "keywords"],
  "technology_stack": ["tech1", "tech2"],
  "methodologies": ["agile", "scrum"]
}

Be precise and extract only what is explicitly stated. Use empty strings or empty arrays for missing information.
Ensure the output is valid JSON.

Job description:
%s`

// ParseJobProfile extracts a structured JobProfile from raw job posting text.
func ParseJobProfile(ctx context.Context, client llm.Client, jobText string) (*types.JobProfile, error) {
	if strings.TrimSpace(jobText) == "" {
		return nil, &ParseError{Message: "job description text is empty"}
	}

	prompt := fmt.Sprintf(jobExtractionPrompt, jobText)
	responseText, err := client.GenerateJSON(ctx, prompt)
	if err != nil {
		return nil, &APICallError{
			Message: "failed to extract job structure",
			Cause:   err,
		}
	}

	responseText = llm.CleanJSONBlock(responseText)

	if err := schemas.ValidateJobProfile(responseText); err != nil {
		return nil, err
	}

	var profile types.JobProfile
	if err := json.Unmarshal([]byte(responseText), &profile); err != nil {
		return nil, &ParseError{
			Message: "failed to parse job JSON response",
			Cause:   err,
		}
	}

	postProcessJob(&profile)
	return &profile, nil
}

// postProcessJob normalizes extracted requirements. The required/preferred
// split in the tagged lists wins over whatever the model put in each entry's
// "required" field.
func postProcessJob(profile *types.JobProfile) {
	profile.Title = strings.TrimSpace(profile.Title)

	profile.RequiredSkills = NormalizeSkillRequirements(profile.RequiredSkills)
	for i := range profile.RequiredSkills {
		profile.RequiredSkills[i].Required = true
		if profile.RequiredSkills[i].Level == "" {
			profile.RequiredSkills[i].Level = types.ProficiencyIntermediate
		}
	}

	profile.PreferredSkills = NormalizeSkillRequirements(profile.PreferredSkills)
	for i := range profile.PreferredSkills {
		profile.PreferredSkills[i].Required = false
		if profile.PreferredSkills[i].Level == "" {
			profile.PreferredSkills[i].Level = types.ProficiencyIntermediate
		}
	}

	profile.Keywords = normalizeKeywords(profile.Keywords)
	profile.IndustryKeywords = normalizeKeywords(profile.IndustryKeywords)
}
