package observability

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/cv-optimizer/internal/types"
)

func TestPrintJobProfile(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	profile := &types.JobProfile{
		Title:   "Senior Engineer",
		Company: types.CompanyInfo{Name: "Acme Corp"},
		RequiredSkills: []types.SkillRequirement{
			{SkillName: "Go", Level: "expert"},
			{SkillName: "Kubernetes"},
		},
		PreferredSkills: []types.SkillRequirement{
			{SkillName: "Rust"},
		},
	}

	p.PrintJobProfile(profile)
	output := buf.String()

	assert.Contains(t, output, "PARSED JOB PROFILE")
	assert.Contains(t, output, "Acme Corp")
	assert.Contains(t, output, "Senior Engineer")
	assert.Contains(t, output, "Go")
	assert.Contains(t, output, "expert")
	assert.Contains(t, output, "Rust")
}

func TestPrintJobProfile_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintJobProfile(nil)

	assert.Empty(t, buf.String())
}

func TestPrintCandidateProfile(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	profile := &types.CandidateProfile{
		ContactInfo: types.ContactInfo{FullName: "Jane Doe"},
		Summary:     "Backend engineer focused on data pipelines and APIs in regulated industries",
		EmploymentHistory: []types.WorkExperience{
			{Company: "Initech", Position: "Engineer"},
		},
		TechnicalSkills: []types.Skill{{Name: "Go"}},
	}

	p.PrintCandidateProfile(profile)
	output := buf.String()

	assert.Contains(t, output, "PARSED CANDIDATE PROFILE")
	assert.Contains(t, output, "Jane Doe")
	assert.Contains(t, output, "1 technical")
	// Long summary is truncated with an ellipsis.
	assert.Contains(t, output, "...")
}

func TestPrintOptimizationResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := &types.OptimizationResult{
		Score:          72.5,
		Improvements:   []string{"Rewrote professional summary"},
		SkillGaps:      []string{"Terraform"},
		KeywordMatches: map[string]int{"python": 3},
		ProcessingTime: 1500 * time.Millisecond,
	}

	p.PrintOptimizationResult(result)
	output := buf.String()

	assert.Contains(t, output, "OPTIMIZATION RESULT")
	assert.Contains(t, output, "72.5 / 100")
	assert.Contains(t, output, "Rewrote professional summary")
	assert.Contains(t, output, "Terraform")
	assert.Contains(t, output, "Keyword matches: 1")
}

func TestPrintOptimizationResult_NoGaps(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintOptimizationResult(&types.OptimizationResult{Score: 90})

	assert.Contains(t, buf.String(), "No remaining skill gaps")
}

func TestPrintStatistics(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	stats := &types.ProfileStatistics{
		TotalExperienceEntries:   3,
		TotalSkills:              12,
		TotalProjects:            2,
		TotalEducationEntries:    1,
		SummaryWordCount:         40,
		EstimatedYearsExperience: 6.5,
	}

	p.PrintStatistics(stats)
	output := buf.String()

	assert.Contains(t, output, "CV STATISTICS")
	assert.Contains(t, output, "3 entries")
	assert.Contains(t, output, "6.5 years")
	assert.Contains(t, output, "Summary words:   40")
}

func TestPrintBox_LongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	profile := &types.JobProfile{
		Title:   "Senior Staff Principal Distinguished Engineer Level 99",
		Company: types.CompanyInfo{Name: "A Very Long Company Name That Should Be Truncated To Fit"},
	}

	p.PrintJobProfile(profile)
	output := buf.String()

	assert.True(t, strings.Contains(output, "┌"))
	assert.True(t, strings.Contains(output, "└"))
	assert.True(t, strings.Contains(output, "│"))
}
