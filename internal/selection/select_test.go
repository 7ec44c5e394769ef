package selection

import (
	"testing"

	"github.com/jonathan/cv-optimizer/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestTopByScore_SortsDescendingAndTruncates(t *testing.T) {
	items := []types.Skill{
		{Name: "low", RelevanceScore: 0.1},
		{Name: "high", RelevanceScore: 0.9},
		{Name: "mid", RelevanceScore: 0.5},
	}

	ranked := RankSkills(items, 2)

	assert.Len(t, ranked, 2)
	assert.Equal(t, "high", ranked[0].Name)
	assert.Equal(t, "mid", ranked[1].Name)
}

func TestTopByScore_StableTieBreak(t *testing.T) {
	items := []types.Skill{
		{Name: "first", RelevanceScore: 0.5},
		{Name: "second", RelevanceScore: 0.5},
		{Name: "third", RelevanceScore: 0.5},
	}

	ranked := RankSkills(items, 3)

	// Equal scores keep original relative order.
	assert.Equal(t, "first", ranked[0].Name)
	assert.Equal(t, "second", ranked[1].Name)
	assert.Equal(t, "third", ranked[2].Name)
}

func TestTopByScore_NeverExceedsMax(t *testing.T) {
	items := make([]types.Skill, 30)
	ranked := RankSkills(items, MaxTechnicalSkills)
	assert.Len(t, ranked, MaxTechnicalSkills)
}

func TestTopByScore_NoDuplicatesIntroduced(t *testing.T) {
	items := []types.Skill{
		{Name: "a", RelevanceScore: 0.2},
		{Name: "b", RelevanceScore: 0.8},
	}

	ranked := RankSkills(items, 10)

	assert.Len(t, ranked, 2)
	seen := map[string]bool{}
	for _, s := range ranked {
		assert.False(t, seen[s.Name])
		seen[s.Name] = true
	}
}

func TestTopByScore_DoesNotMutateInput(t *testing.T) {
	items := []types.Skill{
		{Name: "low", RelevanceScore: 0.1},
		{Name: "high", RelevanceScore: 0.9},
	}

	_ = RankSkills(items, 1)

	assert.Equal(t, "low", items[0].Name)
}

func TestRankExperience_Caps(t *testing.T) {
	history := make([]types.WorkExperience, 12)
	for i := range history {
		history[i].RelevanceScore = float64(i) / 12
	}

	ranked := RankExperience(history, MaxExperienceEntries)

	assert.Len(t, ranked, MaxExperienceEntries)
	assert.InDelta(t, 11.0/12, ranked[0].RelevanceScore, 0.001)
}

func TestRankProjects_AdmissionGate(t *testing.T) {
	projects := []types.Project{
		{Name: "keep", RelevanceScore: 0.8},
		{Name: "drop", RelevanceScore: 0.2},
		{Name: "boundary", RelevanceScore: ProjectAdmissionThreshold},
	}

	ranked := RankProjects(projects, MaxProjects)

	assert.Len(t, ranked, 1)
	assert.Equal(t, "keep", ranked[0].Name)
}

func TestRankProjects_CapAfterGate(t *testing.T) {
	projects := make([]types.Project, 9)
	for i := range projects {
		projects[i].RelevanceScore = 0.4 + float64(i)*0.05
	}

	ranked := RankProjects(projects, MaxProjects)

	assert.Len(t, ranked, MaxProjects)
}
