// Package types provides type definitions for structured data used throughout the cv-optimizer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"strings"
	"time"
)

// Skill categories recognized by the optimizer
const (
	CategoryTechnical = "technical"
	CategorySoft      = "soft"
	CategoryLanguage  = "language"
)

// Proficiency labels for skills
const (
	ProficiencyBeginner     = "beginner"
	ProficiencyIntermediate = "intermediate"
	ProficiencyAdvanced     = "advanced"
	ProficiencyExpert       = "expert"
)

// ContactInfo holds the candidate's contact block
type ContactInfo struct {
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Location  string `json:"location"`
	LinkedIn  string `json:"linkedin,omitempty"`
	GitHub    string `json:"github,omitempty"`
	Portfolio string `json:"portfolio,omitempty"`
	Website   string `json:"website,omitempty"`
}

// WorkExperience represents a single entry in the candidate's work history.
// RelevanceScore is written in place during optimization; it holds the
// result of the last scoring pass against a job profile.
type WorkExperience struct {
	Company        string            `json:"company"`
	Position       string            `json:"position"`
	StartDate      string            `json:"start_date"` // free text, "Present" sentinel for ongoing
	EndDate        string            `json:"end_date"`
	Location       string            `json:"location"`
	Description    []string          `json:"description"`
	Achievements   []string          `json:"achievements"`
	Technologies   []string          `json:"technologies"`
	RelevanceScore float64           `json:"relevance_score"`
	ImpactMetrics  map[string]string `json:"impact_metrics,omitempty"`
}

// EducationEntry represents a degree or program on the CV
type EducationEntry struct {
	Institution     string   `json:"institution"`
	Degree          string   `json:"degree"`
	FieldOfStudy    string   `json:"field_of_study"`
	GraduationDate  string   `json:"graduation_date"`
	GPA             string   `json:"gpa,omitempty"`
	Honors          string   `json:"honors,omitempty"`
	RelevantCourses []string `json:"relevant_courses,omitempty"`
	Thesis          string   `json:"thesis,omitempty"`
}

// Skill represents a single skill with optimization metadata.
// RelevanceScore is recomputed on every optimization pass.
type Skill struct {
	Name            string   `json:"name"`
	Category        string   `json:"category"`    // technical, soft, language
	Proficiency     string   `json:"proficiency"` // beginner, intermediate, advanced, expert
	YearsExperience int      `json:"years_experience"` // 0 means unspecified
	RelevanceScore  float64  `json:"relevance_score"`
	Keywords        []string `json:"keywords,omitempty"` // at most 5, deduplicated
}

// Project represents a personal or professional project
type Project struct {
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Technologies   []string `json:"technologies"`
	URL            string   `json:"url,omitempty"`
	GitHubURL      string   `json:"github_url,omitempty"`
	Impact         string   `json:"impact,omitempty"`
	Role           string   `json:"role,omitempty"`
	Duration       string   `json:"duration,omitempty"`
	TeamSize       int      `json:"team_size,omitempty"`
	RelevanceScore float64  `json:"relevance_score"`
}

// CandidateProfile is the structured CV data the optimizer operates on.
// It is mutated in place by the optimization pipeline; callers that need the
// pre-optimization state must take a Clone() first.
type CandidateProfile struct {
	ContactInfo       ContactInfo      `json:"contact_info"`
	Summary           string           `json:"summary"`
	EmploymentHistory []WorkExperience `json:"employment_history"`
	Education         []EducationEntry `json:"education"`
	TechnicalSkills   []Skill          `json:"technical_skills"`
	SoftSkills        []Skill          `json:"soft_skills"`
	Languages         []Skill          `json:"languages"`
	Certifications    []string         `json:"certifications"`
	Projects          []Project        `json:"projects"`

	// Optimization metadata
	SourceFilePath   string         `json:"source_file_path,omitempty"`
	OptimizationDate *time.Time     `json:"optimization_date,omitempty"`
	TargetJobTitle   string         `json:"target_job_title,omitempty"`
	TargetCompany    string         `json:"target_company,omitempty"`
	OptimizationScore float64       `json:"optimization_score"`
	KeywordMatches   map[string]int `json:"keyword_matches,omitempty"`
	SkillGaps        []string       `json:"skill_gaps,omitempty"`
}

// AllSkillNames returns every skill name plus certifications as a flat list.
// This is the set the gap analyzer and composite scorer match against.
func (p *CandidateProfile) AllSkillNames() []string {
	names := make([]string, 0, len(p.TechnicalSkills)+len(p.SoftSkills)+len(p.Languages)+len(p.Certifications))
	for _, group := range [][]Skill{p.TechnicalSkills, p.SoftSkills, p.Languages} {
		for _, s := range group {
			names = append(names, s.Name)
		}
	}
	names = append(names, p.Certifications...)
	return names
}

// SkillByName returns the skill with the given name (case-insensitive), or nil.
func (p *CandidateProfile) SkillByName(name string) *Skill {
	for _, group := range []*[]Skill{&p.TechnicalSkills, &p.SoftSkills, &p.Languages} {
		for i := range *group {
			if strings.EqualFold((*group)[i].Name, name) {
				return &(*group)[i]
			}
		}
	}
	return nil
}

// AddSkill appends a skill to the collection matching its category.
// Skills whose name already exists in that category (case-insensitive) are
// dropped, preserving the no-duplicates invariant.
func (p *CandidateProfile) AddSkill(skill Skill) bool {
	var target *[]Skill
	switch skill.Category {
	case CategoryTechnical:
		target = &p.TechnicalSkills
	case CategorySoft:
		target = &p.SoftSkills
	case CategoryLanguage:
		target = &p.Languages
	default:
		// Unknown categories land in technical, matching requirement
		// extraction defaults.
		target = &p.TechnicalSkills
	}

	for _, existing := range *target {
		if strings.EqualFold(existing.Name, skill.Name) {
			return false
		}
	}
	*target = append(*target, skill)
	return true
}

// RemoveSkill removes every skill with the given name across all categories.
func (p *CandidateProfile) RemoveSkill(name string) {
	for _, group := range []*[]Skill{&p.TechnicalSkills, &p.SoftSkills, &p.Languages} {
		kept := (*group)[:0]
		for _, s := range *group {
			if !strings.EqualFold(s.Name, name) {
				kept = append(kept, s)
			}
		}
		*group = kept
	}
}

// Clone returns a deep, independent copy of the profile. Mutating the clone
// (or the original) never affects the other; the optimizer relies on this for
// its before/after snapshot.
func (p *CandidateProfile) Clone() *CandidateProfile {
	if p == nil {
		return nil
	}

	clone := *p

	clone.EmploymentHistory = make([]WorkExperience, len(p.EmploymentHistory))
	for i, exp := range p.EmploymentHistory {
		clone.EmploymentHistory[i] = exp
		clone.EmploymentHistory[i].Description = cloneStrings(exp.Description)
		clone.EmploymentHistory[i].Achievements = cloneStrings(exp.Achievements)
		clone.EmploymentHistory[i].Technologies = cloneStrings(exp.Technologies)
		clone.EmploymentHistory[i].ImpactMetrics = cloneStringMap(exp.ImpactMetrics)
	}

	clone.Education = make([]EducationEntry, len(p.Education))
	for i, edu := range p.Education {
		clone.Education[i] = edu
		clone.Education[i].RelevantCourses = cloneStrings(edu.RelevantCourses)
	}

	clone.TechnicalSkills = cloneSkills(p.TechnicalSkills)
	clone.SoftSkills = cloneSkills(p.SoftSkills)
	clone.Languages = cloneSkills(p.Languages)
	clone.Certifications = cloneStrings(p.Certifications)

	clone.Projects = make([]Project, len(p.Projects))
	for i, proj := range p.Projects {
		clone.Projects[i] = proj
		clone.Projects[i].Technologies = cloneStrings(proj.Technologies)
	}

	if p.OptimizationDate != nil {
		t := *p.OptimizationDate
		clone.OptimizationDate = &t
	}
	clone.KeywordMatches = cloneIntMap(p.KeywordMatches)
	clone.SkillGaps = cloneStrings(p.SkillGaps)

	return &clone
}

func cloneStrings(src []string) []string {
	if src == nil {
		return nil
	}
	dst := make([]string, len(src))
	copy(dst, src)
	return dst
}

func cloneSkills(src []Skill) []Skill {
	if src == nil {
		return nil
	}
	dst := make([]Skill, len(src))
	for i, s := range src {
		dst[i] = s
		dst[i].Keywords = cloneStrings(s.Keywords)
	}
	return dst
}

func cloneStringMap(src map[string]string) map[string]string {
	if src == nil {
		return nil
	}
	dst := make(map[string]string, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func cloneIntMap(src map[string]int) map[string]int {
	if src == nil {
		return nil
	}
	dst := make(map[string]int, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
