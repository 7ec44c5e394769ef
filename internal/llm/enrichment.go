package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jonathan/cv-optimizer/internal/types"
)

// DefaultCallTimeout bounds each enrichment call so one hanging request
// cannot stall a whole optimization run.
const DefaultCallTimeout = 30 * time.Second

// FallbackSummary is used when summary generation fails and there is no
// prior summary to keep.
const FallbackSummary = "Experienced professional with strong technical skills and proven track record of delivering results."

// TextEnrichmentService rewrites CV content toward a job profile. All
// methods are best-effort from the caller's perspective: the optimizer
// keeps the original content on any error. Implementations must be safe
// for concurrent use by independent requests.
type TextEnrichmentService interface {
	// RewriteSummary returns the summary rewritten for the job.
	RewriteSummary(ctx context.Context, summary string, job *types.JobProfile) (string, error)
	// GenerateSummary writes a new summary from job context alone, for
	// profiles that have none.
	GenerateSummary(ctx context.Context, job *types.JobProfile) (string, error)
	// RewriteExperience returns rewritten responsibility and achievement
	// text for one work-history entry.
	RewriteExperience(ctx context.Context, exp *types.WorkExperience, job *types.JobProfile) (description, achievements []string, err error)
}

// Enricher implements TextEnrichmentService on top of a Client.
type Enricher struct {
	client      Client
	callTimeout time.Duration
}

// NewEnricher wraps a client with per-call timeouts.
func NewEnricher(client Client, callTimeout time.Duration) *Enricher {
	if callTimeout <= 0 {
		callTimeout = DefaultCallTimeout
	}
	return &Enricher{client: client, callTimeout: callTimeout}
}

// RewriteSummary optimizes an existing professional summary for the job.
func (e *Enricher) RewriteSummary(ctx context.Context, summary string, job *types.JobProfile) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, e.callTimeout)
	defer cancel()

	prompt := summaryRewritePrompt(summary, job)
	rewritten, err := e.client.GenerateText(ctx, prompt)
	if err != nil {
		return "", err
	}
	rewritten = strings.TrimSpace(rewritten)
	if rewritten == "" {
		return "", fmt.Errorf("empty summary from model")
	}
	return rewritten, nil
}

// GenerateSummary produces a summary from job context alone.
func (e *Enricher) GenerateSummary(ctx context.Context, job *types.JobProfile) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, e.callTimeout)
	defer cancel()

	prompt := summaryGeneratePrompt(job)
	generated, err := e.client.GenerateText(ctx, prompt)
	if err != nil {
		return "", err
	}
	generated = strings.TrimSpace(generated)
	if generated == "" {
		return "", fmt.Errorf("empty summary from model")
	}
	return generated, nil
}

// experienceRewrite is the JSON shape the model returns for an
// experience rewrite.
type experienceRewrite struct {
	Description  []string `json:"description"`
	Achievements []string `json:"achievements"`
}

// RewriteExperience rewrites one entry's responsibility and achievement
// text. Missing fields in the response fall back to the entry's current
// text rather than erroring.
func (e *Enricher) RewriteExperience(ctx context.Context, exp *types.WorkExperience, job *types.JobProfile) ([]string, []string, error) {
	ctx, cancel := context.WithTimeout(ctx, e.callTimeout)
	defer cancel()

	prompt := experienceRewritePrompt(exp, job)
	raw, err := e.client.GenerateJSON(ctx, prompt)
	if err != nil {
		return nil, nil, err
	}

	var rewrite experienceRewrite
	if err := json.Unmarshal([]byte(raw), &rewrite); err != nil {
		return nil, nil, fmt.Errorf("malformed rewrite response: %w", err)
	}

	description := rewrite.Description
	if len(description) == 0 {
		description = exp.Description
	}
	achievements := rewrite.Achievements
	if len(achievements) == 0 {
		achievements = exp.Achievements
	}
	return description, achievements, nil
}

func jobContext(job *types.JobProfile) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Job Title: %s\n", job.Title)
	fmt.Fprintf(&sb, "Company: %s\n", job.Company.Name)
	fmt.Fprintf(&sb, "Required Skills: %s\n", strings.Join(job.RequiredSkillNames(), ", "))
	fmt.Fprintf(&sb, "Preferred Skills: %s\n", strings.Join(job.PreferredSkillNames(), ", "))
	fmt.Fprintf(&sb, "Experience Level: %s\n", job.ExperienceLevel)
	fmt.Fprintf(&sb, "Industry: %s\n", job.Company.Industry)
	return sb.String()
}

func summaryRewritePrompt(summary string, job *types.JobProfile) string {
	var sb strings.Builder
	sb.WriteString(`You are an expert CV writer. Optimize the provided professional summary to better match the job requirements.

Guidelines:
1. Keep it concise (2-3 sentences, max 200 words)
2. Highlight relevant skills and experience
3. Use action verbs and keywords from the job description
4. Emphasize achievements and impact
5. Include industry-specific terminology

Return only the optimized summary text.

`)
	sb.WriteString("Job Context:\n")
	sb.WriteString(jobContext(job))
	sb.WriteString("\nCurrent Summary:\n")
	sb.WriteString(summary)
	return sb.String()
}

func summaryGeneratePrompt(job *types.JobProfile) string {
	var sb strings.Builder
	sb.WriteString(`Generate a compelling professional summary for a CV that matches the job requirements.

Guidelines:
1. 2-3 sentences, max 200 words
2. Highlight relevant skills and experience
3. Use action verbs and keywords from the job description
4. Include industry-specific terminology

Return only the summary text.

`)
	sb.WriteString("Job Context:\n")
	sb.WriteString(jobContext(job))
	if len(job.Responsibilities) > 0 {
		limit := min(len(job.Responsibilities), 5)
		sb.WriteString("Responsibilities: ")
		sb.WriteString(strings.Join(job.Responsibilities[:limit], "; "))
		sb.WriteString("\n")
	}
	return sb.String()
}

func experienceRewritePrompt(exp *types.WorkExperience, job *types.JobProfile) string {
	var sb strings.Builder
	sb.WriteString(`Optimize the job description and achievements to better match the job requirements.

Guidelines:
1. Use action verbs from the job description
2. Include relevant keywords and skills
3. Quantify achievements where possible
4. Keep descriptions concise and impactful

Return as JSON:
{
  "description": ["optimized description 1", "optimized description 2"],
  "achievements": ["optimized achievement 1", "optimized achievement 2"]
}

`)
	sb.WriteString("Job Context:\n")
	sb.WriteString(jobContext(job))
	fmt.Fprintf(&sb, "Technology Stack: %s\n", strings.Join(job.TechnologyStack, ", "))
	sb.WriteString("\nCurrent Position:\n")
	fmt.Fprintf(&sb, "Position: %s\n", exp.Position)
	fmt.Fprintf(&sb, "Company: %s\n", exp.Company)
	fmt.Fprintf(&sb, "Current Description: %s\n", strings.Join(exp.Description, "; "))
	fmt.Fprintf(&sb, "Current Achievements: %s\n", strings.Join(exp.Achievements, "; "))
	return sb.String()
}
