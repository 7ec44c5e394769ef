// Package gaps identifies required skills missing from a candidate profile.
package gaps

import (
	"github.com/jonathan/cv-optimizer/internal/match"
	"github.com/jonathan/cv-optimizer/internal/types"
)

// MaxSkillsToAdd caps how many gap skills AddMissingSkills inserts.
const MaxSkillsToAdd = 5

// Identify returns the names of required skills with no match in the
// profile's skill and certification list, in posting order. Mentions in
// free text (summary, experience bullets) do not count: a skill the
// candidate never lists is a gap even if their achievements reference it.
func Identify(profile *types.CandidateProfile, job *types.JobProfile) []string {
	names := profile.AllSkillNames()
	var missing []string
	for _, req := range job.RequiredSkills {
		if !match.ContainsAny(req.SkillName, names) {
			missing = append(missing, req.SkillName)
		}
	}
	return missing
}

// AddMissingSkills inserts up to MaxSkillsToAdd gap skills into the
// profile at intermediate proficiency with full relevance, taking the
// category from the requirement. The added skills are unverified claims:
// callers must flag them in the improvements report rather than present
// them as established.
func AddMissingSkills(profile *types.CandidateProfile, job *types.JobProfile) []string {
	missing := Identify(profile, job)
	if len(missing) > MaxSkillsToAdd {
		missing = missing[:MaxSkillsToAdd]
	}

	added := make([]string, 0, len(missing))
	for _, name := range missing {
		category := types.CategoryTechnical
		if req := job.SkillRequirementByName(name); req != nil && req.Category != "" {
			category = req.Category
		}

		skill := types.Skill{
			Name:           name,
			Category:       category,
			Proficiency:    types.ProficiencyIntermediate,
			RelevanceScore: match.RelevanceRequired,
			Keywords:       []string{name},
		}
		if profile.AddSkill(skill) {
			added = append(added, name)
		}
	}
	return added
}
