package optimizer

import (
	"context"
	"log"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/cv-optimizer/internal/gaps"
	"github.com/jonathan/cv-optimizer/internal/llm"
	"github.com/jonathan/cv-optimizer/internal/match"
	"github.com/jonathan/cv-optimizer/internal/scoring"
	"github.com/jonathan/cv-optimizer/internal/selection"
	"github.com/jonathan/cv-optimizer/internal/types"
)

// maxRewriteConcurrency bounds the fan-out of per-entry enrichment calls.
const maxRewriteConcurrency = 4

// maxSkillKeywords caps the keyword list attached to each retained skill.
const maxSkillKeywords = 5

// Options configures an Optimizer.
type Options struct {
	// Relations overrides the skill relationship table. Nil uses the
	// built-in table.
	Relations map[string][]string
	// Enricher rewrites summary and experience text. Nil disables
	// enrichment entirely; scoring and ranking still run.
	Enricher llm.TextEnrichmentService
	// RewriteConcurrency bounds parallel experience rewrites. Zero or
	// negative uses the default.
	RewriteConcurrency int
	// Verbose enables step logging.
	Verbose bool
}

// Optimizer re-weights a candidate profile toward a job's requirements
// and produces a fit score. Safe for concurrent use: each Optimize call
// works on its own profile/job pair and the relevance model is read-only.
type Optimizer struct {
	relevance          *match.RelevanceModel
	enricher           llm.TextEnrichmentService
	rewriteConcurrency int
	verbose            bool
}

// New creates an Optimizer.
func New(opts Options) *Optimizer {
	relations := opts.Relations
	if relations == nil {
		relations = match.DefaultSkillRelations()
	}
	concurrency := opts.RewriteConcurrency
	if concurrency <= 0 {
		concurrency = maxRewriteConcurrency
	}
	return &Optimizer{
		relevance:          match.NewRelevanceModel(relations),
		enricher:           opts.Enricher,
		rewriteConcurrency: concurrency,
		verbose:            opts.Verbose,
	}
}

// Optimize runs the full pipeline: snapshot, summary rewrite, skill and
// experience scoring/ranking, project gating, gap backfill, keyword
// counting, composite scoring. The input profile is mutated in place and
// becomes the optimized profile; the returned result also carries a deep
// pre-optimization snapshot. Enrichment failures degrade to keeping the
// original text and never fail the run.
func (o *Optimizer) Optimize(ctx context.Context, profile *types.CandidateProfile, job *types.JobProfile) (*types.OptimizationResult, error) {
	if profile == nil {
		return nil, &InputError{Message: "candidate profile is required"}
	}
	if job == nil {
		return nil, &InputError{Message: "job profile is required"}
	}

	start := time.Now()

	// Deep snapshot: later mutation of the working profile must not leak
	// into the "before" view.
	original := profile.Clone()

	o.optimizeSummary(ctx, profile, job)
	o.optimizeSkills(profile, job)
	experienceChanged := o.optimizeExperience(ctx, profile, job)
	o.optimizeProjects(profile, job)

	addedSkills := gaps.AddMissingSkills(profile, job)

	profile.KeywordMatches = scoring.KeywordMatchCounts(profile, job)
	profile.SkillGaps = gaps.Identify(profile, job)

	score := scoring.CompositeScore(profile, job)
	profile.OptimizationScore = score

	now := time.Now()
	profile.OptimizationDate = &now
	profile.TargetJobTitle = job.Title
	profile.TargetCompany = job.Company.Name

	improvements := buildImprovements(original, profile, addedSkills, experienceChanged)

	return &types.OptimizationResult{
		Original:       original,
		Optimized:      profile,
		Score:          score,
		Improvements:   improvements,
		SkillGaps:      profile.SkillGaps,
		KeywordMatches: profile.KeywordMatches,
		ProcessingTime: time.Since(start),
	}, nil
}

// optimizeSummary rewrites (or generates) the professional summary.
// On enricher failure the existing summary is kept; an empty summary
// with a failed generation gets the static fallback.
func (o *Optimizer) optimizeSummary(ctx context.Context, profile *types.CandidateProfile, job *types.JobProfile) {
	if o.enricher == nil {
		return
	}

	if profile.Summary == "" {
		generated, err := o.enricher.GenerateSummary(ctx, job)
		if err != nil {
			o.logf("summary generation failed, using fallback: %v", err)
			profile.Summary = llm.FallbackSummary
			return
		}
		profile.Summary = generated
		return
	}

	rewritten, err := o.enricher.RewriteSummary(ctx, profile.Summary, job)
	if err != nil {
		o.logf("summary rewrite failed, keeping original: %v", err)
		return
	}
	profile.Summary = rewritten
}

// optimizeSkills recomputes relevance for technical and soft skills,
// ranks each category, applies its cap, and attaches job keywords to the
// retained skills.
func (o *Optimizer) optimizeSkills(profile *types.CandidateProfile, job *types.JobProfile) {
	for i := range profile.TechnicalSkills {
		profile.TechnicalSkills[i].RelevanceScore = o.relevance.SkillRelevance(profile.TechnicalSkills[i].Name, job)
	}
	for i := range profile.SoftSkills {
		profile.SoftSkills[i].RelevanceScore = o.relevance.SkillRelevance(profile.SoftSkills[i].Name, job)
	}

	profile.TechnicalSkills = selection.RankSkills(profile.TechnicalSkills, selection.MaxTechnicalSkills)
	profile.SoftSkills = selection.RankSkills(profile.SoftSkills, selection.MaxSoftSkills)

	for i := range profile.TechnicalSkills {
		profile.TechnicalSkills[i].Keywords = skillKeywords(profile.TechnicalSkills[i].Name, job)
	}
	for i := range profile.SoftSkills {
		profile.SoftSkills[i].Keywords = skillKeywords(profile.SoftSkills[i].Name, job)
	}
}

// optimizeExperience scores every entry, ranks and truncates the history,
// then rewrites the retained entries' text best-effort. Returns whether
// any retained entry's text changed.
func (o *Optimizer) optimizeExperience(ctx context.Context, profile *types.CandidateProfile, job *types.JobProfile) bool {
	for i := range profile.EmploymentHistory {
		scoring.ScoreExperience(&profile.EmploymentHistory[i], job)
	}
	profile.EmploymentHistory = selection.RankExperience(profile.EmploymentHistory, selection.MaxExperienceEntries)

	if o.enricher == nil {
		return false
	}

	changed := make([]bool, len(profile.EmploymentHistory))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.rewriteConcurrency)

	for i := range profile.EmploymentHistory {
		g.Go(func() error {
			exp := &profile.EmploymentHistory[i]
			description, achievements, err := o.enricher.RewriteExperience(gctx, exp, job)
			if err != nil {
				// Degrade: keep the entry's original text, never drop it.
				o.logf("experience rewrite failed for %q, keeping original: %v", exp.Position, err)
				return nil
			}
			if !equalStrings(description, exp.Description) || !equalStrings(achievements, exp.Achievements) {
				changed[i] = true
			}
			exp.Description = description
			exp.Achievements = achievements
			return nil
		})
	}
	// Workers only return nil; Wait is for synchronization.
	_ = g.Wait()

	for _, c := range changed {
		if c {
			return true
		}
	}
	return false
}

// optimizeProjects scores projects, applies the admission gate and cap.
func (o *Optimizer) optimizeProjects(profile *types.CandidateProfile, job *types.JobProfile) {
	for i := range profile.Projects {
		scoring.ScoreProject(&profile.Projects[i], job)
	}
	profile.Projects = selection.RankProjects(profile.Projects, selection.MaxProjects)
}

// skillKeywords collects up to maxSkillKeywords job keywords associated
// with a skill name, always including the name itself.
func skillKeywords(skillName string, job *types.JobProfile) []string {
	keywords := []string{skillName}
	seen := map[string]bool{strings.ToLower(skillName): true}
	for _, keyword := range job.Keywords {
		if len(keywords) >= maxSkillKeywords {
			break
		}
		if !match.ContainsEither(skillName, keyword) {
			continue
		}
		lower := strings.ToLower(keyword)
		if seen[lower] {
			continue
		}
		seen[lower] = true
		keywords = append(keywords, keyword)
	}
	return keywords
}

// buildImprovements emits a human-readable entry per detected change.
// Each condition is independent; zero to four entries.
func buildImprovements(original, optimized *types.CandidateProfile, addedSkills []string, experienceChanged bool) []string {
	improvements := []string{}

	if original.Summary != optimized.Summary {
		improvements = append(improvements, "Professional summary optimized for job requirements")
	}
	if len(addedSkills) > 0 {
		improvements = append(improvements,
			"Added missing required skills (unverified): "+strings.Join(addedSkills, ", "))
	}
	if experienceChanged {
		improvements = append(improvements, "Experience descriptions enhanced with relevant keywords and achievements")
	}
	if len(optimized.KeywordMatches) > 0 {
		improvements = append(improvements, "Improved keyword distribution for ATS optimization")
	}

	return improvements
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func (o *Optimizer) logf(format string, args ...any) {
	if o.verbose {
		log.Printf("[optimizer] "+format, args...)
	}
}
