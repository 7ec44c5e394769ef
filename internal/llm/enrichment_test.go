package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonathan/cv-optimizer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubClient returns canned responses without hitting the network.
type stubClient struct {
	textResponse string
	jsonResponse string
	err          error
	lastPrompt   string
}

func (s *stubClient) GenerateText(_ context.Context, prompt string) (string, error) {
	s.lastPrompt = prompt
	return s.textResponse, s.err
}

func (s *stubClient) GenerateJSON(_ context.Context, prompt string) (string, error) {
	s.lastPrompt = prompt
	return s.jsonResponse, s.err
}

func (s *stubClient) Close() error { return nil }

func testJob() *types.JobProfile {
	return &types.JobProfile{
		Title:   "Backend Engineer",
		Company: types.CompanyInfo{Name: "Acme", Industry: "Logistics"},
		RequiredSkills: []types.SkillRequirement{
			{SkillName: "Go", Required: true},
		},
	}
}

func TestRewriteSummary_ReturnsModelText(t *testing.T) {
	stub := &stubClient{textResponse: "  Seasoned Go engineer.  "}
	enricher := NewEnricher(stub, time.Second)

	result, err := enricher.RewriteSummary(context.Background(), "Old summary", testJob())

	require.NoError(t, err)
	assert.Equal(t, "Seasoned Go engineer.", result)
	assert.Contains(t, stub.lastPrompt, "Old summary")
	assert.Contains(t, stub.lastPrompt, "Backend Engineer")
}

func TestRewriteSummary_EmptyResponseIsError(t *testing.T) {
	enricher := NewEnricher(&stubClient{textResponse: "   "}, time.Second)

	_, err := enricher.RewriteSummary(context.Background(), "Old", testJob())

	assert.Error(t, err)
}

func TestRewriteSummary_PropagatesClientError(t *testing.T) {
	enricher := NewEnricher(&stubClient{err: errors.New("quota exceeded")}, time.Second)

	_, err := enricher.RewriteSummary(context.Background(), "Old", testJob())

	assert.Error(t, err)
}

func TestGenerateSummary_IncludesResponsibilities(t *testing.T) {
	stub := &stubClient{textResponse: "Generated summary."}
	enricher := NewEnricher(stub, time.Second)
	job := testJob()
	job.Responsibilities = []string{"Design APIs", "Review code"}

	result, err := enricher.GenerateSummary(context.Background(), job)

	require.NoError(t, err)
	assert.Equal(t, "Generated summary.", result)
	assert.Contains(t, stub.lastPrompt, "Design APIs")
}

func TestRewriteExperience_ParsesJSON(t *testing.T) {
	stub := &stubClient{jsonResponse: `{"description": ["Led team"], "achievements": ["Shipped v2"]}`}
	enricher := NewEnricher(stub, time.Second)
	exp := &types.WorkExperience{
		Position:     "Engineer",
		Description:  []string{"old description"},
		Achievements: []string{"old achievement"},
	}

	description, achievements, err := enricher.RewriteExperience(context.Background(), exp, testJob())

	require.NoError(t, err)
	assert.Equal(t, []string{"Led team"}, description)
	assert.Equal(t, []string{"Shipped v2"}, achievements)
}

func TestRewriteExperience_MissingFieldsFallBack(t *testing.T) {
	stub := &stubClient{jsonResponse: `{"description": ["Led team"]}`}
	enricher := NewEnricher(stub, time.Second)
	exp := &types.WorkExperience{Achievements: []string{"kept achievement"}}

	_, achievements, err := enricher.RewriteExperience(context.Background(), exp, testJob())

	require.NoError(t, err)
	assert.Equal(t, []string{"kept achievement"}, achievements)
}

func TestRewriteExperience_MalformedJSON(t *testing.T) {
	enricher := NewEnricher(&stubClient{jsonResponse: "not json"}, time.Second)

	_, _, err := enricher.RewriteExperience(context.Background(), &types.WorkExperience{}, testJob())

	assert.Error(t, err)
}
