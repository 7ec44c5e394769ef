// Package scoring computes relevance scores for candidate content against job profiles.
package scoring

import (
	"strings"

	"github.com/jonathan/cv-optimizer/internal/match"
	"github.com/jonathan/cv-optimizer/internal/types"
)

// Contribution of each matched signal to an experience entry's relevance.
// Skill, stack and keyword contributions accumulate per match and the sum
// saturates at 1.0.
const (
	titleSimilarityWeight = 0.3
	requiredSkillBonus    = 0.2
	techStackBonus        = 0.1
	industryKeywordBonus  = 0.1
)

// ScoreExperience computes the relevance of one work-history entry against
// a job profile and writes the result into exp.RelevanceScore. The in-place
// write is the documented contract: ranking and the composite scorer read
// the score back off the entry.
func ScoreExperience(exp *types.WorkExperience, job *types.JobProfile) float64 {
	if exp == nil || job == nil {
		return 0
	}

	blob := experienceText(exp)
	score := match.TitleSimilarity(exp.Position, job.Title) * titleSimilarityWeight

	for _, req := range job.RequiredSkills {
		if match.TextContains(blob, req.SkillName) {
			score += requiredSkillBonus
		}
	}
	for _, tech := range job.TechnologyStack {
		if match.TextContains(blob, tech) {
			score += techStackBonus
		}
	}
	for _, keyword := range job.IndustryKeywords {
		if match.TextContains(blob, keyword) {
			score += industryKeywordBonus
		}
	}

	if score > 1.0 {
		score = 1.0
	}

	exp.RelevanceScore = score
	return score
}

// ScoreProject computes a project's relevance against a job profile and
// writes it into proj.RelevanceScore. Projects reward matches more heavily
// than experience entries because their text is shorter.
func ScoreProject(proj *types.Project, job *types.JobProfile) float64 {
	if proj == nil || job == nil {
		return 0
	}

	blob := strings.ToLower(proj.Name + " " + proj.Description + " " + strings.Join(proj.Technologies, " "))
	score := 0.0

	for _, req := range job.RequiredSkills {
		if match.TextContains(blob, req.SkillName) {
			score += 0.3
		}
	}
	for _, tech := range job.TechnologyStack {
		if match.TextContains(blob, tech) {
			score += 0.2
		}
	}

	if score > 1.0 {
		score = 1.0
	}

	proj.RelevanceScore = score
	return score
}

// experienceText concatenates the entry's title, responsibilities and
// achievements into one lowercase blob for substring scanning.
func experienceText(exp *types.WorkExperience) string {
	var sb strings.Builder
	sb.WriteString(exp.Position)
	for _, d := range exp.Description {
		sb.WriteString(" ")
		sb.WriteString(d)
	}
	for _, a := range exp.Achievements {
		sb.WriteString(" ")
		sb.WriteString(a)
	}
	return strings.ToLower(sb.String())
}
