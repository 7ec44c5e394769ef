package optimizer

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jonathan/cv-optimizer/internal/scoring"
	"github.com/jonathan/cv-optimizer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEnricher is a deterministic TextEnrichmentService for tests.
type fakeEnricher struct {
	summaryPrefix string
	failSummary   bool
	failRewrite   bool
}

func (f *fakeEnricher) RewriteSummary(_ context.Context, summary string, _ *types.JobProfile) (string, error) {
	if f.failSummary {
		return "", errors.New("service unavailable")
	}
	return f.summaryPrefix + summary, nil
}

func (f *fakeEnricher) GenerateSummary(_ context.Context, job *types.JobProfile) (string, error) {
	if f.failSummary {
		return "", errors.New("service unavailable")
	}
	return fmt.Sprintf("Professional targeting %s roles.", job.Title), nil
}

func (f *fakeEnricher) RewriteExperience(_ context.Context, exp *types.WorkExperience, _ *types.JobProfile) ([]string, []string, error) {
	if f.failRewrite {
		return nil, nil, errors.New("service unavailable")
	}
	description := make([]string, len(exp.Description))
	for i, d := range exp.Description {
		description[i] = "Enhanced: " + d
	}
	return description, exp.Achievements, nil
}

func scenarioProfile() *types.CandidateProfile {
	return &types.CandidateProfile{
		ContactInfo: types.ContactInfo{FullName: "Jordan Smith"},
		TechnicalSkills: []types.Skill{
			{Name: "Python", Category: types.CategoryTechnical},
			{Name: "Excel", Category: types.CategoryTechnical},
		},
		EmploymentHistory: []types.WorkExperience{
			{
				Company:      "DataCo",
				Position:     "Analyst",
				Achievements: []string{"Tuned SQL reports and ran agile sprints"},
			},
		},
	}
}

func scenarioJob() *types.JobProfile {
	return &types.JobProfile{
		Title:   "Data Engineer",
		Company: types.CompanyInfo{Name: "Acme"},
		RequiredSkills: []types.SkillRequirement{
			{SkillName: "Python", Category: types.CategoryTechnical, Required: true},
			{SkillName: "SQL", Category: types.CategoryTechnical, Required: true},
		},
		PreferredSkills: []types.SkillRequirement{
			{SkillName: "AWS", Category: types.CategoryTechnical},
		},
		Keywords: []string{"agile"},
	}
}

func TestOptimize_EndToEndScenario(t *testing.T) {
	// Job requires Python+SQL, prefers AWS, keyword "agile"; candidate
	// lists Python and Excel and mentions SQL only in achievements.
	opt := New(Options{})
	profile := scenarioProfile()

	result, err := opt.Optimize(context.Background(), profile, scenarioJob())
	require.NoError(t, err)

	// 1 of 2 required skills matched before backfill.
	assert.InDelta(t, 50.0, scoringSkillMatch(result.Original, scenarioJob()), 0.001)

	// SQL + agile matched in the experience blob.
	require.Len(t, result.Optimized.EmploymentHistory, 1)
	assert.Greater(t, result.Optimized.EmploymentHistory[0].RelevanceScore, 0.0)

	// SQL was backfilled into the skill list (unverified), so the final
	// gap list is empty, but the backfill itself is reported.
	assert.Empty(t, result.SkillGaps)
	assert.Contains(t, result.Improvements[0], "SQL")
	assert.NotNil(t, result.Optimized.SkillByName("SQL"))

	assert.GreaterOrEqual(t, result.Score, 0.0)
	assert.LessOrEqual(t, result.Score, 100.0)
	assert.Greater(t, result.ProcessingTime.Nanoseconds(), int64(0))
}

// scoringSkillMatch recomputes the skill-match sub-score for a snapshot.
func scoringSkillMatch(profile *types.CandidateProfile, job *types.JobProfile) float64 {
	return scoring.SkillMatchScore(profile, job)
}

func TestOptimize_NilInputs(t *testing.T) {
	opt := New(Options{})

	_, err := opt.Optimize(context.Background(), nil, scenarioJob())
	var inputErr *InputError
	require.ErrorAs(t, err, &inputErr)

	_, err = opt.Optimize(context.Background(), scenarioProfile(), nil)
	require.ErrorAs(t, err, &inputErr)
}

func TestOptimize_DeterministicWithFakeEnricher(t *testing.T) {
	enricher := &fakeEnricher{summaryPrefix: "Optimized: "}

	run := func() float64 {
		opt := New(Options{Enricher: enricher})
		profile := scenarioProfile()
		profile.Summary = "Analyst with Python experience"
		result, err := opt.Optimize(context.Background(), profile, scenarioJob())
		require.NoError(t, err)
		return result.Score
	}

	assert.Equal(t, run(), run())
}

func TestOptimize_SnapshotIndependence(t *testing.T) {
	opt := New(Options{Enricher: &fakeEnricher{summaryPrefix: "New: "}})
	profile := scenarioProfile()
	profile.Summary = "Original summary"

	result, err := opt.Optimize(context.Background(), profile, scenarioJob())
	require.NoError(t, err)

	// The original snapshot must not see any optimization mutations.
	assert.Equal(t, "Original summary", result.Original.Summary)
	assert.Equal(t, 0.0, result.Original.EmploymentHistory[0].RelevanceScore)
	assert.Len(t, result.Original.TechnicalSkills, 2)
	assert.Nil(t, result.Original.SkillByName("SQL"))

	// Mutating the optimized profile after the fact cannot leak back.
	result.Optimized.EmploymentHistory[0].Achievements[0] = "changed"
	assert.Equal(t, "Tuned SQL reports and ran agile sprints", result.Original.EmploymentHistory[0].Achievements[0])
}

func TestOptimize_EnrichmentFailureDegrades(t *testing.T) {
	opt := New(Options{Enricher: &fakeEnricher{failSummary: true, failRewrite: true}})
	profile := scenarioProfile()
	profile.Summary = "Keep me"

	result, err := opt.Optimize(context.Background(), profile, scenarioJob())
	require.NoError(t, err)

	assert.Equal(t, "Keep me", result.Optimized.Summary)
	assert.Equal(t, "Tuned SQL reports and ran agile sprints", result.Optimized.EmploymentHistory[0].Achievements[0])
}

func TestOptimize_EmptySummaryFallbackOnFailure(t *testing.T) {
	opt := New(Options{Enricher: &fakeEnricher{failSummary: true}})

	result, err := opt.Optimize(context.Background(), scenarioProfile(), scenarioJob())
	require.NoError(t, err)

	assert.NotEmpty(t, result.Optimized.Summary)
}

func TestOptimize_SkillRankingAndCaps(t *testing.T) {
	opt := New(Options{})
	profile := &types.CandidateProfile{}
	for i := 0; i < 20; i++ {
		profile.TechnicalSkills = append(profile.TechnicalSkills, types.Skill{
			Name:     fmt.Sprintf("skill-%d", i),
			Category: types.CategoryTechnical,
		})
	}
	// The one relevant skill must rank first despite being listed last.
	profile.TechnicalSkills = append(profile.TechnicalSkills, types.Skill{
		Name:     "Python",
		Category: types.CategoryTechnical,
	})

	result, err := opt.Optimize(context.Background(), profile, scenarioJob())
	require.NoError(t, err)

	assert.LessOrEqual(t, len(result.Optimized.TechnicalSkills), 16) // cap 15 + 1 backfilled gap skill
	assert.Equal(t, "Python", result.Optimized.TechnicalSkills[0].Name)
}

func TestOptimize_ProjectGate(t *testing.T) {
	opt := New(Options{})
	profile := scenarioProfile()
	profile.Projects = []types.Project{
		{Name: "ETL Pipeline", Description: "Python and SQL batch jobs"},
		{Name: "Knitting Patterns", Description: "A hobby site"},
	}

	result, err := opt.Optimize(context.Background(), profile, scenarioJob())
	require.NoError(t, err)

	require.Len(t, result.Optimized.Projects, 1)
	assert.Equal(t, "ETL Pipeline", result.Optimized.Projects[0].Name)
}

func TestOptimize_KeywordMatchesStored(t *testing.T) {
	opt := New(Options{})
	profile := scenarioProfile()
	profile.Summary = "Ran agile ceremonies"

	result, err := opt.Optimize(context.Background(), profile, scenarioJob())
	require.NoError(t, err)

	assert.Equal(t, 1, result.KeywordMatches["agile"])
	assert.Equal(t, result.KeywordMatches, result.Optimized.KeywordMatches)
}

func TestOptimize_TargetsRecordedOnProfile(t *testing.T) {
	opt := New(Options{})

	result, err := opt.Optimize(context.Background(), scenarioProfile(), scenarioJob())
	require.NoError(t, err)

	assert.Equal(t, "Data Engineer", result.Optimized.TargetJobTitle)
	assert.Equal(t, "Acme", result.Optimized.TargetCompany)
	require.NotNil(t, result.Optimized.OptimizationDate)
}

func TestStatistics(t *testing.T) {
	profile := &types.CandidateProfile{
		Summary: "Five words in this summary",
		EmploymentHistory: []types.WorkExperience{
			{StartDate: "2015", EndDate: "2019"},
			{StartDate: "Jan 2020", EndDate: "Present"},
			{StartDate: "unknown"},
		},
		TechnicalSkills: []types.Skill{{Name: "Go"}},
		SoftSkills:      []types.Skill{{Name: "Mentoring"}},
		Projects:        []types.Project{{Name: "P"}},
		Certifications:  []string{"Cert"},
	}

	stats := Statistics(profile)

	assert.Equal(t, 3, stats.TotalExperienceEntries)
	assert.Equal(t, 2, stats.TotalSkills)
	assert.Equal(t, 1, stats.TotalProjects)
	assert.Equal(t, 1, stats.TotalCertifications)
	assert.Equal(t, 5, stats.SummaryWordCount)
	assert.GreaterOrEqual(t, stats.EstimatedYearsExperience, 9.0)
}
