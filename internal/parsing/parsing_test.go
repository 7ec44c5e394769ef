package parsing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-optimizer/internal/schemas"
	"github.com/jonathan/cv-optimizer/internal/types"
)

// stubClient returns canned responses without touching the network.
type stubClient struct {
	jsonResponse string
	err          error
	lastPrompt   string
}

func (s *stubClient) GenerateText(_ context.Context, prompt string) (string, error) {
	s.lastPrompt = prompt
	return s.jsonResponse, s.err
}

func (s *stubClient) GenerateJSON(_ context.Context, prompt string) (string, error) {
	s.lastPrompt = prompt
	return s.jsonResponse, s.err
}

func (s *stubClient) Close() error { return nil }

const sampleCVJSON = `{
	"contact_info": {"full_name": "Jane Doe", "email": "jane@example.com"},
	"summary": "Backend engineer with five years of experience.",
	"employment_history": [
		{
			"company": "Initech",
			"position": "  Software Engineer ",
			"start_date": "2019",
			"end_date": "Present",
			"description": ["Built billing services"],
			"achievements": ["Cut query latency 40%"],
			"technologies": ["Python", "PostgreSQL"]
		}
	],
	"technical_skills": [
		{"name": "python", "category": "soft", "proficiency": "advanced"},
		{"name": "postgres"}
	],
	"soft_skills": [{"name": "Communication", "category": "technical"}],
	"certifications": ["AWS Solutions Architect"]
}`

func TestParseCandidateProfile(t *testing.T) {
	client := &stubClient{jsonResponse: sampleCVJSON}

	profile, err := ParseCandidateProfile(context.Background(), client, "Jane Doe\nBackend engineer...")
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", profile.ContactInfo.FullName)
	assert.Contains(t, client.lastPrompt, "Jane Doe\nBackend engineer...")

	// Categories follow the list the skill arrived in, not the model's label.
	require.Len(t, profile.TechnicalSkills, 2)
	assert.Equal(t, "Python", profile.TechnicalSkills[0].Name)
	assert.Equal(t, types.CategoryTechnical, profile.TechnicalSkills[0].Category)
	assert.Equal(t, "PostgreSQL", profile.TechnicalSkills[1].Name)
	assert.Equal(t, types.ProficiencyIntermediate, profile.TechnicalSkills[1].Proficiency)
	require.Len(t, profile.SoftSkills, 1)
	assert.Equal(t, types.CategorySoft, profile.SoftSkills[0].Category)

	require.Len(t, profile.EmploymentHistory, 1)
	assert.Equal(t, "Software Engineer", profile.EmploymentHistory[0].Position)
}

func TestParseCandidateProfile_FencedResponse(t *testing.T) {
	client := &stubClient{jsonResponse: "```json\n" + sampleCVJSON + "\n```"}

	profile, err := ParseCandidateProfile(context.Background(), client, "cv text")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", profile.ContactInfo.FullName)
}

func TestParseCandidateProfile_EmptyInput(t *testing.T) {
	_, err := ParseCandidateProfile(context.Background(), &stubClient{}, "   ")

	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestParseCandidateProfile_ClientError(t *testing.T) {
	client := &stubClient{err: assert.AnError}

	_, err := ParseCandidateProfile(context.Background(), client, "cv text")

	var apiErr *APICallError
	require.ErrorAs(t, err, &apiErr)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestParseCandidateProfile_SchemaViolation(t *testing.T) {
	client := &stubClient{jsonResponse: `{"summary": 42}`}

	_, err := ParseCandidateProfile(context.Background(), client, "cv text")

	var validationErr *schemas.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

const sampleJobJSON = `{
	"title": " Senior Backend Engineer ",
	"company": {"name": "Globex", "industry": "Fintech"},
	"required_skills": [
		{"skill_name": "golang", "category": "technical", "required": false},
		{"skill_name": "Go", "category": "technical", "level": "advanced"},
		{"skill_name": "SQL", "category": "technical"}
	],
	"preferred_skills": [
		{"skill_name": "k8s", "category": "tool", "required": true}
	],
	"keywords": ["Microservices", " microservices ", "gRPC"],
	"technology_stack": ["Go", "PostgreSQL"]
}`

func TestParseJobProfile(t *testing.T) {
	client := &stubClient{jsonResponse: sampleJobJSON}

	job, err := ParseJobProfile(context.Background(), client, "We are hiring...")
	require.NoError(t, err)

	assert.Equal(t, "Senior Backend Engineer", job.Title)

	// golang and Go collapse to one requirement, keeping the merged level.
	require.Len(t, job.RequiredSkills, 2)
	assert.Equal(t, "Go", job.RequiredSkills[0].SkillName)
	assert.Equal(t, "advanced", job.RequiredSkills[0].Level)
	assert.True(t, job.RequiredSkills[0].Required)
	assert.Equal(t, types.ProficiencyIntermediate, job.RequiredSkills[1].Level)

	require.Len(t, job.PreferredSkills, 1)
	assert.Equal(t, "Kubernetes", job.PreferredSkills[0].SkillName)
	assert.False(t, job.PreferredSkills[0].Required)

	assert.Equal(t, []string{"microservices", "grpc"}, job.Keywords)
}

func TestParseJobProfile_MissingTitle(t *testing.T) {
	client := &stubClient{jsonResponse: `{"company": {"name": "Globex"}}`}

	_, err := ParseJobProfile(context.Background(), client, "posting")

	var validationErr *schemas.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestParseJobProfile_MalformedJSON(t *testing.T) {
	client := &stubClient{jsonResponse: "not json at all"}

	_, err := ParseJobProfile(context.Background(), client, "posting")
	assert.Error(t, err)
}

func TestNormalizeSkillName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"golang", "Go"},
		{"  js ", "JavaScript"},
		{"React.JS", "React"},
		{"python", "Python"},
		{"Node.js", "Node.js"},
		{"machine learning", "machine learning"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeSkillName(tt.in), "input %q", tt.in)
	}
}
