// Package pipeline provides the high-level orchestration for a CV
// optimization run.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/cv-optimizer/internal/ingestion"
	"github.com/jonathan/cv-optimizer/internal/llm"
	"github.com/jonathan/cv-optimizer/internal/observability"
	"github.com/jonathan/cv-optimizer/internal/optimizer"
	"github.com/jonathan/cv-optimizer/internal/parsing"
	"github.com/jonathan/cv-optimizer/internal/rendering"
	"github.com/jonathan/cv-optimizer/internal/store"
	"github.com/jonathan/cv-optimizer/internal/types"
)

// enrichmentCallTimeout bounds each individual LLM rewrite call.
const enrichmentCallTimeout = 60 * time.Second

// RunOptions holds configuration for running the pipeline
type RunOptions struct {
	CVPath         string
	JobPath        string
	JobURL         string
	Template       string
	Format         string
	OutputDir      string
	APIKey         string
	UseBrowser     bool
	SkipEnrichment bool
	Verbose        bool
	DatabaseURL    string

	// Client overrides APIKey when set. Used by tests.
	Client llm.Client
}

// RunPipeline orchestrates the full optimization run: ingest -> parse ->
// optimize -> persist -> render. It returns the path of the rendered CV.
func RunPipeline(ctx context.Context, opts RunOptions) (string, error) {
	printer := observability.NewPrinter(os.Stdout)

	client := opts.Client
	if client == nil {
		geminiClient, err := llm.NewGeminiClient(ctx, opts.APIKey, llm.DefaultOptions())
		if err != nil {
			return "", fmt.Errorf("failed to create LLM client: %w", err)
		}
		client = geminiClient
		defer func() { _ = geminiClient.Close() }()
	}

	// Database persistence is optional; a connection failure degrades
	// to running without it.
	var st *store.Store
	if opts.DatabaseURL != "" {
		var err error
		st, err = store.Connect(ctx, opts.DatabaseURL)
		if err != nil {
			fmt.Printf("Warning: Failed to connect to database: %v\n", err)
			fmt.Printf("Continuing without database persistence...\n")
		} else {
			defer st.Close()
			if err := st.EnsureSchema(ctx); err != nil {
				fmt.Printf("Warning: Failed to ensure database schema: %v\n", err)
				st = nil
			} else if opts.Verbose {
				fmt.Printf("[VERBOSE] Connected to database\n")
			}
		}
	}

	fmt.Printf("Step 1/6: Ingesting CV from file: %s...\n", opts.CVPath)
	cvText, _, err := ingestion.IngestCVFromFile(opts.CVPath)
	if err != nil {
		return "", fmt.Errorf("CV ingestion failed: %w", err)
	}

	var jobText string
	if opts.JobURL != "" {
		fmt.Printf("Step 2/6: Ingesting job posting from URL: %s...\n", opts.JobURL)
		jobText, _, err = ingestion.IngestJobFromURL(ctx, opts.JobURL, opts.UseBrowser, opts.Verbose)
		if err != nil {
			return "", fmt.Errorf("job ingestion from URL failed: %w", err)
		}
	} else {
		fmt.Printf("Step 2/6: Ingesting job posting from file: %s...\n", opts.JobPath)
		jobText, _, err = ingestion.IngestJobFromFile(opts.JobPath)
		if err != nil {
			return "", fmt.Errorf("job ingestion from file failed: %w", err)
		}
	}

	// The two extractions are independent LLM calls; run them in parallel.
	fmt.Printf("Step 3/6: Parsing CV and job posting...\n")
	var profile *types.CandidateProfile
	var job *types.JobProfile

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var parseErr error
		profile, parseErr = parsing.ParseCandidateProfile(gCtx, client, cvText)
		if parseErr != nil {
			return fmt.Errorf("CV parsing failed: %w", parseErr)
		}
		return nil
	})
	g.Go(func() error {
		var parseErr error
		job, parseErr = parsing.ParseJobProfile(gCtx, client, jobText)
		if parseErr != nil {
			return fmt.Errorf("job parsing failed: %w", parseErr)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return "", err
	}

	if opts.Verbose {
		printer.PrintCandidateProfile(profile)
		printer.PrintJobProfile(job)
	}

	var runID uuid.UUID
	if st != nil {
		runID, err = st.CreateRun(ctx, profile.ContactInfo.FullName, job.Title, job.Company.Name, jobSource(opts))
		if err != nil {
			fmt.Printf("Warning: Failed to create database run: %v\n", err)
		} else {
			if opts.Verbose {
				fmt.Printf("[VERBOSE] Created database run: %s\n", runID)
			}
			_ = st.SaveArtifact(ctx, runID, store.ArtifactOriginalProfile, profile)
			_ = st.SaveArtifact(ctx, runID, store.ArtifactJobProfile, job)
		}
	}

	fmt.Printf("Step 4/6: Optimizing CV for %s at %s...\n", job.Title, job.Company.Name)
	var enricher llm.TextEnrichmentService
	if !opts.SkipEnrichment {
		enricher = llm.NewEnricher(client, enrichmentCallTimeout)
	}

	opt := optimizer.New(optimizer.Options{
		Enricher: enricher,
		Verbose:  opts.Verbose,
	})
	result, err := opt.Optimize(ctx, profile, job)
	if err != nil {
		if st != nil && runID != uuid.Nil {
			_ = st.FailRun(ctx, runID)
		}
		return "", fmt.Errorf("optimization failed: %w", err)
	}

	printer.PrintOptimizationResult(result)
	if opts.Verbose {
		stats := optimizer.Statistics(result.Optimized)
		printer.PrintStatistics(&stats)
	}

	fmt.Printf("Step 5/6: Saving run artifacts...\n")
	if st != nil && runID != uuid.Nil {
		_ = st.SaveArtifact(ctx, runID, store.ArtifactOptimizedProfile, result.Optimized)
		_ = st.SaveArtifact(ctx, runID, store.ArtifactResult, result)
		if err := st.CompleteRun(ctx, runID, store.StatusCompleted, result.Score); err != nil {
			fmt.Printf("Warning: Failed to complete database run: %v\n", err)
		}
	}

	fmt.Printf("Step 6/6: Rendering optimized CV...\n")
	renderer := rendering.NewRenderer(opts.Template)
	filename := rendering.OutputFilename(result.Optimized.ContactInfo.FullName, job.Title, opts.Format)
	outputPath := filepath.Join(opts.OutputDir, filename)

	if err := renderer.RenderToFile(ctx, result.Optimized, opts.Format, outputPath); err != nil {
		// The optimization itself succeeded and is already persisted.
		return "", fmt.Errorf("rendering failed: %w", err)
	}

	if st != nil && runID != uuid.Nil && opts.Format == rendering.FormatText {
		if text, renderErr := rendering.RenderText(result.Optimized); renderErr == nil {
			_ = st.SaveTextArtifact(ctx, runID, store.ArtifactRenderedCV, text)
		}
	}

	fmt.Printf("\n✅ Optimized CV written to: %s\n", outputPath)
	return outputPath, nil
}

func jobSource(opts RunOptions) string {
	if opts.JobURL != "" {
		return opts.JobURL
	}
	return opts.JobPath
}
