package match

import (
	"github.com/jonathan/cv-optimizer/internal/types"
)

// Relevance tiers returned by SkillRelevance. A listed skill never scores
// zero: skills the job does not mention at all still get the baseline floor
// so they are ranked last rather than discarded outright.
const (
	RelevanceRequired  = 1.0
	RelevancePreferred = 0.8
	RelevanceTechStack = 0.7
	RelevanceKeyword   = 0.6
	RelevanceRelated   = 0.5
	RelevanceBaseline  = 0.1
)

// RelevanceModel scores candidate skill names against a job profile.
// The relationship table maps a canonical skill to skills commonly found
// alongside it; it is injected so tests can supply controlled tables.
// The model is read-only after construction and safe for concurrent use.
type RelevanceModel struct {
	relations map[string][]string
}

// NewRelevanceModel creates a model with the given relationship table.
// A nil table disables related-skill matching.
func NewRelevanceModel(relations map[string][]string) *RelevanceModel {
	return &RelevanceModel{relations: relations}
}

// DefaultSkillRelations returns the built-in skill relationship table.
func DefaultSkillRelations() map[string][]string {
	return map[string][]string{
		"python":           {"django", "flask", "fastapi", "pandas", "numpy"},
		"javascript":       {"react", "vue", "angular", "node.js", "typescript"},
		"aws":              {"ec2", "s3", "lambda", "cloudformation"},
		"docker":           {"kubernetes", "containerization"},
		"sql":              {"postgresql", "mysql", "sqlite", "database"},
		"git":              {"github", "gitlab", "version control"},
		"machine learning": {"tensorflow", "pytorch", "scikit-learn", "ml"},
	}
}

// SkillRelevance returns the relevance of a skill name against a job
// profile, in [0,1]. Matching is tiered: required skills win over
// preferred, preferred over technology stack, and so on. The first
// matching tier decides the score.
func (m *RelevanceModel) SkillRelevance(skillName string, job *types.JobProfile) float64 {
	if skillName == "" || job == nil {
		return RelevanceBaseline
	}

	for _, req := range job.RequiredSkills {
		if ContainsEither(skillName, req.SkillName) {
			return RelevanceRequired
		}
	}

	for _, pref := range job.PreferredSkills {
		if ContainsEither(skillName, pref.SkillName) {
			return RelevancePreferred
		}
	}

	if ContainsAny(skillName, job.TechnologyStack) {
		return RelevanceTechStack
	}

	if ContainsAny(skillName, job.Keywords) {
		return RelevanceKeyword
	}

	for _, related := range m.RelatedSkills(skillName) {
		for _, req := range job.RequiredSkills {
			if ContainsEither(related, req.SkillName) {
				return RelevanceRelated
			}
		}
		for _, pref := range job.PreferredSkills {
			if ContainsEither(related, pref.SkillName) {
				return RelevanceRelated
			}
		}
	}

	return RelevanceBaseline
}

// RelatedSkills returns the relationship-table entry matching the skill
// name. A skill matches an entry if it matches the canonical name or any
// of its related skills under the ContainsEither test.
func (m *RelevanceModel) RelatedSkills(skillName string) []string {
	if skillName == "" {
		return nil
	}
	for canonical, related := range m.relations {
		if ContainsEither(skillName, canonical) {
			return related
		}
		for _, r := range related {
			if ContainsEither(skillName, r) {
				return related
			}
		}
	}
	return nil
}
