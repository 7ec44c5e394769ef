package types

import "time"

// OptimizationResult is the record produced by one optimization run.
// Original is a deep snapshot taken before any mutation and must be treated
// as read-only. The result is immutable after construction.
type OptimizationResult struct {
	Original       *CandidateProfile `json:"original"`
	Optimized      *CandidateProfile `json:"optimized"`
	Score          float64           `json:"score"` // 0-100
	Improvements   []string          `json:"improvements"`
	SkillGaps      []string          `json:"skill_gaps"`
	KeywordMatches map[string]int    `json:"keyword_matches"`
	ProcessingTime time.Duration     `json:"processing_time"`
}

// ProfileStatistics summarizes a candidate profile for reporting.
type ProfileStatistics struct {
	TotalExperienceEntries   int     `json:"total_experience_entries"`
	TotalSkills              int     `json:"total_skills"`
	TotalProjects            int     `json:"total_projects"`
	TotalEducationEntries    int     `json:"total_education_entries"`
	TotalCertifications      int     `json:"total_certifications"`
	SummaryWordCount         int     `json:"summary_word_count"`
	EstimatedYearsExperience float64 `json:"estimated_years_experience"`
}
