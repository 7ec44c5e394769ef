// Package selection provides ranking and truncation of scored resume content.
package selection

import (
	"sort"

	"github.com/jonathan/cv-optimizer/internal/types"
)

// Per-content-type output caps applied after ranking.
const (
	MaxTechnicalSkills = 15
	MaxSoftSkills      = 10
	MaxExperienceEntries = 8
	MaxProjects        = 5

	// ProjectAdmissionThreshold is a hard gate: projects scoring at or
	// below it are dropped before ranking, not merely hidden by the cap.
	ProjectAdmissionThreshold = 0.3
)

// TopByScore sorts items by score descending and truncates to maxCount.
// The sort is stable: items with equal scores keep their original relative
// order. A negative maxCount means no truncation. The input slice is not
// modified.
func TopByScore[T any](items []T, score func(T) float64, maxCount int) []T {
	ranked := make([]T, len(items))
	copy(ranked, items)

	sort.SliceStable(ranked, func(i, j int) bool {
		return score(ranked[i]) > score(ranked[j])
	})

	if maxCount >= 0 && len(ranked) > maxCount {
		ranked = ranked[:maxCount]
	}
	return ranked
}

// RankSkills orders skills by relevance and truncates to maxCount.
func RankSkills(skills []types.Skill, maxCount int) []types.Skill {
	return TopByScore(skills, func(s types.Skill) float64 { return s.RelevanceScore }, maxCount)
}

// RankExperience orders work history by relevance and truncates to maxCount.
func RankExperience(history []types.WorkExperience, maxCount int) []types.WorkExperience {
	return TopByScore(history, func(e types.WorkExperience) float64 { return e.RelevanceScore }, maxCount)
}

// RankProjects applies the admission gate, then orders the surviving
// projects by relevance and truncates to maxCount.
func RankProjects(projects []types.Project, maxCount int) []types.Project {
	admitted := make([]types.Project, 0, len(projects))
	for _, p := range projects {
		if p.RelevanceScore > ProjectAdmissionThreshold {
			admitted = append(admitted, p)
		}
	}
	return TopByScore(admitted, func(p types.Project) float64 { return p.RelevanceScore }, maxCount)
}
