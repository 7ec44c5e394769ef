package gaps

import (
	"fmt"
	"testing"

	"github.com/jonathan/cv-optimizer/internal/types"
	"github.com/stretchr/testify/assert"
)

func requiredSkills(names ...string) []types.SkillRequirement {
	reqs := make([]types.SkillRequirement, len(names))
	for i, name := range names {
		reqs[i] = types.SkillRequirement{SkillName: name, Category: types.CategoryTechnical, Required: true}
	}
	return reqs
}

func TestIdentify_MissingRequiredSkill(t *testing.T) {
	profile := &types.CandidateProfile{
		TechnicalSkills: []types.Skill{{Name: "A"}},
	}
	job := &types.JobProfile{RequiredSkills: requiredSkills("A", "B")}

	assert.Equal(t, []string{"B"}, Identify(profile, job))
}

func TestIdentify_FreeTextMentionDoesNotCount(t *testing.T) {
	// SQL appears in achievements but not in the skill list, so it is
	// still a gap. Gap analysis checks skills and certifications only.
	profile := &types.CandidateProfile{
		TechnicalSkills: []types.Skill{{Name: "Python"}},
		EmploymentHistory: []types.WorkExperience{
			{Achievements: []string{"Optimized SQL queries, cutting latency 40%"}},
		},
	}
	job := &types.JobProfile{RequiredSkills: requiredSkills("Python", "SQL")}

	assert.Equal(t, []string{"SQL"}, Identify(profile, job))
}

func TestIdentify_CertificationsSatisfyRequirements(t *testing.T) {
	profile := &types.CandidateProfile{
		Certifications: []string{"Certified Kubernetes Administrator"},
	}
	job := &types.JobProfile{RequiredSkills: requiredSkills("Kubernetes")}

	assert.Empty(t, Identify(profile, job))
}

func TestIdentify_PreservesPostingOrder(t *testing.T) {
	profile := &types.CandidateProfile{}
	job := &types.JobProfile{RequiredSkills: requiredSkills("Go", "Rust", "Zig")}

	assert.Equal(t, []string{"Go", "Rust", "Zig"}, Identify(profile, job))
}

func TestAddMissingSkills_InsertsWithDefaults(t *testing.T) {
	profile := &types.CandidateProfile{}
	job := &types.JobProfile{
		RequiredSkills: []types.SkillRequirement{
			{SkillName: "Terraform", Category: types.CategoryTechnical, Required: true},
			{SkillName: "Negotiation", Category: types.CategorySoft, Required: true},
		},
	}

	added := AddMissingSkills(profile, job)

	assert.Equal(t, []string{"Terraform", "Negotiation"}, added)
	assert.Len(t, profile.TechnicalSkills, 1)
	assert.Len(t, profile.SoftSkills, 1)
	assert.Equal(t, types.ProficiencyIntermediate, profile.TechnicalSkills[0].Proficiency)
	assert.Equal(t, 1.0, profile.TechnicalSkills[0].RelevanceScore)
}

func TestAddMissingSkills_CapsAtFive(t *testing.T) {
	profile := &types.CandidateProfile{}
	var reqs []types.SkillRequirement
	for i := 0; i < 8; i++ {
		reqs = append(reqs, types.SkillRequirement{
			SkillName: fmt.Sprintf("skill-%d", i),
			Category:  types.CategoryTechnical,
			Required:  true,
		})
	}
	job := &types.JobProfile{RequiredSkills: reqs}

	added := AddMissingSkills(profile, job)

	assert.Len(t, added, MaxSkillsToAdd)
	assert.Len(t, profile.TechnicalSkills, MaxSkillsToAdd)
}

func TestAddMissingSkills_ToolCategoryDefaultsToTechnical(t *testing.T) {
	profile := &types.CandidateProfile{}
	job := &types.JobProfile{
		RequiredSkills: []types.SkillRequirement{
			{SkillName: "Jira", Category: "tool", Required: true},
		},
	}

	AddMissingSkills(profile, job)

	assert.Len(t, profile.TechnicalSkills, 1)
}
