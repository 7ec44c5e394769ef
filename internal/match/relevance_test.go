package match

import (
	"testing"

	"github.com/jonathan/cv-optimizer/internal/types"
	"github.com/stretchr/testify/assert"
)

func jobWith(required, preferred, stack, keywords []string) *types.JobProfile {
	job := &types.JobProfile{
		TechnologyStack: stack,
		Keywords:        keywords,
	}
	for _, name := range required {
		job.RequiredSkills = append(job.RequiredSkills, types.SkillRequirement{SkillName: name, Required: true})
	}
	for _, name := range preferred {
		job.PreferredSkills = append(job.PreferredSkills, types.SkillRequirement{SkillName: name})
	}
	return job
}

func TestSkillRelevance_Tiers(t *testing.T) {
	model := NewRelevanceModel(DefaultSkillRelations())

	tests := []struct {
		name     string
		skill    string
		job      *types.JobProfile
		expected float64
	}{
		{
			name:     "required skill wins",
			skill:    "Python",
			job:      jobWith([]string{"Python"}, []string{"Python"}, nil, nil),
			expected: RelevanceRequired,
		},
		{
			name:     "preferred skill",
			skill:    "AWS",
			job:      jobWith([]string{"Python"}, []string{"AWS"}, nil, nil),
			expected: RelevancePreferred,
		},
		{
			name:     "technology stack",
			skill:    "Kafka",
			job:      jobWith(nil, nil, []string{"Kafka", "Redis"}, nil),
			expected: RelevanceTechStack,
		},
		{
			name:     "keyword",
			skill:    "Agile",
			job:      jobWith(nil, nil, nil, []string{"agile", "scrum"}),
			expected: RelevanceKeyword,
		},
		{
			name:     "baseline floor",
			skill:    "Watercolor",
			job:      jobWith([]string{"Python"}, nil, nil, nil),
			expected: RelevanceBaseline,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, model.SkillRelevance(tt.skill, tt.job), 0.001)
		})
	}
}

func TestSkillRelevance_RelatedTableMatch(t *testing.T) {
	model := NewRelevanceModel(DefaultSkillRelations())
	job := jobWith([]string{"Django"}, nil, nil, nil)

	// "Python" is related to "django" in the default table; the direct
	// containment tiers miss, so the table tier scores it.
	assert.InDelta(t, RelevanceRelated, model.SkillRelevance("Python", job), 0.001)
}

func TestSkillRelevance_SymmetricContainment(t *testing.T) {
	model := NewRelevanceModel(nil)
	job := jobWith([]string{"React.js"}, nil, nil, nil)

	assert.InDelta(t, RelevanceRequired, model.SkillRelevance("React", job), 0.001)
}

func TestSkillRelevance_EmptyInputs(t *testing.T) {
	model := NewRelevanceModel(nil)

	assert.InDelta(t, RelevanceBaseline, model.SkillRelevance("", jobWith(nil, nil, nil, nil)), 0.001)
	assert.InDelta(t, RelevanceBaseline, model.SkillRelevance("Go", nil), 0.001)
}

func TestSkillRelevance_InjectedTable(t *testing.T) {
	model := NewRelevanceModel(map[string][]string{
		"observability": {"prometheus", "grafana"},
	})
	job := jobWith([]string{"Prometheus"}, nil, nil, nil)

	assert.InDelta(t, RelevanceRelated, model.SkillRelevance("Observability", job), 0.001)
}

func TestRelatedSkills_MatchesViaRelatedEntry(t *testing.T) {
	model := NewRelevanceModel(DefaultSkillRelations())

	// "Flask" appears in python's related list, so it resolves to the
	// same group.
	related := model.RelatedSkills("Flask")
	assert.Contains(t, related, "django")

	assert.Nil(t, model.RelatedSkills("Basket Weaving"))
}
