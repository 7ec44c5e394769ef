package scoring

import (
	"strings"

	"github.com/jonathan/cv-optimizer/internal/match"
	"github.com/jonathan/cv-optimizer/internal/types"
)

// Weights for the composite optimization score. They sum to 1.0.
const (
	skillMatchWeight          = 0.4
	experienceRelevanceWeight = 0.3
	keywordMatchWeight        = 0.2
	summaryOptimizationWeight = 0.1
)

// SubScores holds the four independently computed components of the
// composite score, each in [0,100].
type SubScores struct {
	SkillMatch          float64 `json:"skill_match"`
	ExperienceRelevance float64 `json:"experience_relevance"`
	KeywordMatch        float64 `json:"keyword_match"`
	SummaryOptimization float64 `json:"summary_optimization"`
}

// CompositeScore combines the four weighted sub-scores into the final
// 0-100 optimization score. Experience entries must already carry their
// relevance scores (ScoreExperience runs before this).
func CompositeScore(profile *types.CandidateProfile, job *types.JobProfile) float64 {
	return Combine(ComputeSubScores(profile, job))
}

// Combine applies the fixed weights and clamps to 100. The clamp is a
// defensive no-op unless a sub-score exceeds its range.
func Combine(sub SubScores) float64 {
	score := sub.SkillMatch*skillMatchWeight +
		sub.ExperienceRelevance*experienceRelevanceWeight +
		sub.KeywordMatch*keywordMatchWeight +
		sub.SummaryOptimization*summaryOptimizationWeight
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score
}

// ComputeSubScores evaluates all four components.
func ComputeSubScores(profile *types.CandidateProfile, job *types.JobProfile) SubScores {
	return SubScores{
		SkillMatch:          SkillMatchScore(profile, job),
		ExperienceRelevance: ExperienceRelevanceScore(profile),
		KeywordMatch:        KeywordMatchScore(profile, job),
		SummaryOptimization: SummaryOptimizationScore(profile, job),
	}
}

// SkillMatchScore is the fraction of required skills present in the
// profile's skill and certification list, scaled to 100. A job with no
// required skills scores 100.
func SkillMatchScore(profile *types.CandidateProfile, job *types.JobProfile) float64 {
	if len(job.RequiredSkills) == 0 {
		return 100
	}

	names := profile.AllSkillNames()
	matched := 0
	for _, req := range job.RequiredSkills {
		if match.ContainsAny(req.SkillName, names) {
			matched++
		}
	}
	return float64(matched) / float64(len(job.RequiredSkills)) * 100
}

// ExperienceRelevanceScore is the mean relevance of the work history,
// scaled to 100. A profile with no history scores 0.
func ExperienceRelevanceScore(profile *types.CandidateProfile) float64 {
	if len(profile.EmploymentHistory) == 0 {
		return 0
	}

	total := 0.0
	for _, exp := range profile.EmploymentHistory {
		total += exp.RelevanceScore
	}
	return total / float64(len(profile.EmploymentHistory)) * 100
}

// KeywordMatchScore is the fraction of job keywords found in the summary
// plus flattened skill names, scaled to 100. A job with no keywords
// scores 100.
func KeywordMatchScore(profile *types.CandidateProfile, job *types.JobProfile) float64 {
	if len(job.Keywords) == 0 {
		return 100
	}

	text := searchableText(profile)
	matched := 0
	for _, keyword := range job.Keywords {
		if match.TextContains(text, keyword) {
			matched++
		}
	}
	return float64(matched) / float64(len(job.Keywords)) * 100
}

// SummaryOptimizationScore is the fraction of job keywords and required
// skill names found in the summary alone, scaled to 100. If the combined
// set is empty it scores 100; an empty summary scores 0.
func SummaryOptimizationScore(profile *types.CandidateProfile, job *types.JobProfile) float64 {
	totalExpected := len(job.Keywords) + len(job.RequiredSkills)
	if totalExpected == 0 {
		return 100
	}
	if profile.Summary == "" {
		return 0
	}

	summary := strings.ToLower(profile.Summary)
	matched := 0
	for _, keyword := range job.Keywords {
		if match.TextContains(summary, keyword) {
			matched++
		}
	}
	for _, req := range job.RequiredSkills {
		if match.TextContains(summary, req.SkillName) {
			matched++
		}
	}
	return float64(matched) / float64(totalExpected) * 100
}

// KeywordMatchCounts counts occurrences of each job keyword in the
// summary plus flattened skill names. Keywords with zero occurrences are
// omitted.
func KeywordMatchCounts(profile *types.CandidateProfile, job *types.JobProfile) map[string]int {
	text := searchableText(profile)
	counts := make(map[string]int)
	for _, keyword := range job.Keywords {
		if keyword == "" {
			continue
		}
		if n := strings.Count(text, strings.ToLower(keyword)); n > 0 {
			counts[keyword] = n
		}
	}
	return counts
}

func searchableText(profile *types.CandidateProfile) string {
	parts := append([]string{profile.Summary}, profile.AllSkillNames()...)
	return strings.ToLower(strings.Join(parts, " "))
}
