package types

import "strings"

// SkillRequirement represents a single skill demanded or preferred by a job posting
type SkillRequirement struct {
	SkillName        string   `json:"skill_name"`
	Category         string   `json:"category"` // technical, soft, tool, certification
	Level            string   `json:"level"`    // beginner, intermediate, advanced, expert
	YearsExperience  *int     `json:"years_experience,omitempty"`
	Required         bool     `json:"required"`
	Alternatives     []string `json:"alternatives,omitempty"`
	IndustrySpecific bool     `json:"industry_specific,omitempty"`
}

// CompanyInfo describes the hiring company as extracted from the posting
type CompanyInfo struct {
	Name            string   `json:"name"`
	Industry        string   `json:"industry"`
	Size            string   `json:"size"`          // startup, small, medium, large, enterprise
	Location        string   `json:"location"`
	RemotePolicy    string   `json:"remote_policy"` // remote, hybrid, on-site
	CultureKeywords []string `json:"culture_keywords,omitempty"`
	TechStack       []string `json:"tech_stack,omitempty"`
}

// ExperienceRequirement captures the experience expectations of a posting
type ExperienceRequirement struct {
	YearsRequired      int      `json:"years_required"`
	RoleType           string   `json:"role_type,omitempty"`
	RelevantPositions  []string `json:"relevant_positions,omitempty"`
	IndustryPreference []string `json:"industry_preference,omitempty"`
	ProjectScale       string   `json:"project_scale,omitempty"`
}

// EducationRequirement captures the education expectations of a posting
type EducationRequirement struct {
	DegreeLevel           string   `json:"degree_level,omitempty"`
	FieldOfStudy          []string `json:"field_of_study,omitempty"`
	Required              bool     `json:"required"`
	EquivalentExperience  bool     `json:"equivalent_experience,omitempty"`
	CertificationsAccepted []string `json:"certifications_accepted,omitempty"`
}

// JobProfile is the structured job posting the optimizer matches against.
// It is treated as immutable input: the optimizer never writes to it.
type JobProfile struct {
	Title           string      `json:"title"`
	Company         CompanyInfo `json:"company"`
	Location        string      `json:"location"`
	EmploymentType  string      `json:"employment_type"`  // full-time, part-time, contract, internship
	ExperienceLevel string      `json:"experience_level"` // entry, junior, mid, senior, lead, executive
	SalaryRange     string      `json:"salary_range,omitempty"`
	Description     string      `json:"description,omitempty"`

	RequiredSkills  []SkillRequirement `json:"required_skills"`
	PreferredSkills []SkillRequirement `json:"preferred_skills"`

	ExperienceRequirements ExperienceRequirement `json:"experience_requirements"`
	EducationRequirements  EducationRequirement  `json:"education_requirements"`

	Responsibilities []string `json:"responsibilities"`
	Duties           []string `json:"duties,omitempty"`
	Benefits         []string `json:"benefits,omitempty"`
	Perks            []string `json:"perks,omitempty"`

	Keywords         []string `json:"keywords"`
	IndustryKeywords []string `json:"industry_keywords,omitempty"`
	TechnologyStack  []string `json:"technology_stack,omitempty"`
	Methodologies    []string `json:"methodologies,omitempty"` // agile, scrum, etc.
}

// RequiredSkillNames returns the names of all required skills in posting order.
func (j *JobProfile) RequiredSkillNames() []string {
	names := make([]string, len(j.RequiredSkills))
	for i, s := range j.RequiredSkills {
		names[i] = s.SkillName
	}
	return names
}

// PreferredSkillNames returns the names of all preferred skills in posting order.
func (j *JobProfile) PreferredSkillNames() []string {
	names := make([]string, len(j.PreferredSkills))
	for i, s := range j.PreferredSkills {
		names[i] = s.SkillName
	}
	return names
}

// SkillRequirementByName returns the requirement with the given name
// (case-insensitive) across required and preferred skills, or nil.
func (j *JobProfile) SkillRequirementByName(name string) *SkillRequirement {
	for i := range j.RequiredSkills {
		if strings.EqualFold(j.RequiredSkills[i].SkillName, name) {
			return &j.RequiredSkills[i]
		}
	}
	for i := range j.PreferredSkills {
		if strings.EqualFold(j.PreferredSkills[i].SkillName, name) {
			return &j.PreferredSkills[i]
		}
	}
	return nil
}
