package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-optimizer/internal/config"
	"github.com/jonathan/cv-optimizer/internal/pipeline"
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Optimize a CV for a job posting",
	Long: `Runs the full optimization pipeline: ingestion -> extraction -> scoring -> re-weighting -> rendering.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runOptimizeCmd,
}

var (
	optConfigPath     string
	optCV             string
	optJob            string
	optJobURL         string
	optOutputDir      string
	optTemplate       string
	optFormat         string
	optAPIKey         string
	optDatabaseURL    string
	optUseBrowser     bool
	optSkipEnrichment bool
	optVerbose        bool
)

func init() {
	// Config file flag (processed first)
	optimizeCmd.Flags().StringVar(&optConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	optimizeCmd.Flags().StringVar(&optCV, "cv", "", "Path to CV file (.pdf, .docx, .txt, .md)")
	optimizeCmd.Flags().StringVarP(&optJob, "job", "j", "", "Path to job posting text file (mutually exclusive with --job-url)")
	optimizeCmd.Flags().StringVar(&optJobURL, "job-url", "", "URL to fetch job posting from (mutually exclusive with --job)")
	optimizeCmd.Flags().StringVarP(&optOutputDir, "output-dir", "o", "", "Directory for the rendered CV")
	optimizeCmd.Flags().StringVarP(&optTemplate, "template", "t", "", "Template style: modern, professional, creative")
	optimizeCmd.Flags().StringVarP(&optFormat, "format", "f", "", "Output format: txt, pdf, docx")
	optimizeCmd.Flags().BoolVar(&optUseBrowser, "use-browser", false, "Use headless browser for SPA sites (requires Chrome)")
	optimizeCmd.Flags().BoolVar(&optSkipEnrichment, "skip-enrichment", false, "Skip LLM rewriting of summary and experience text")
	optimizeCmd.Flags().BoolVarP(&optVerbose, "verbose", "v", false, "Print detailed debug information")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	optimizeCmd.Flags().StringVar(&optAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	// Database URL for run persistence
	optimizeCmd.Flags().StringVar(&optDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(optimizeCmd)
}

func runOptimizeCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if optConfigPath != "" {
		loadedCfg, err := config.LoadConfig(optConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return err
		}

		cfg = *loadedCfg
		if optVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", optConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("cv") {
		cfg.CV = optCV
	}
	if cmd.Flags().Changed("job") {
		cfg.Job = optJob
	}
	if cmd.Flags().Changed("job-url") {
		cfg.JobURL = optJobURL
	}
	if cmd.Flags().Changed("output-dir") {
		cfg.OutputDir = optOutputDir
	}
	if cmd.Flags().Changed("template") {
		cfg.Template = optTemplate
	}
	if cmd.Flags().Changed("format") {
		cfg.Format = optFormat
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = optAPIKey
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = optDatabaseURL
	}
	if cmd.Flags().Changed("use-browser") {
		cfg.UseBrowser = optUseBrowser
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = optVerbose
	}

	// Step 3: Apply defaults for unset values
	defaults := config.Config{
		OutputDir: "output",
		Template:  "modern",
		Format:    "pdf",
	}
	cfg = cfg.MergeWithDefaults(defaults)

	// Step 4: Validate required fields
	if cfg.CV == "" {
		return fmt.Errorf("--cv is required (via flag or config)")
	}
	if cfg.Job == "" && cfg.JobURL == "" {
		return fmt.Errorf("either --job or --job-url must be provided (via flag or config)")
	}
	if cfg.Job != "" && cfg.JobURL != "" {
		return fmt.Errorf("--job and --job-url are mutually exclusive; provide only one")
	}

	// Step 5: API Key handling
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable or --api-key flag is required")
	}

	// Step 6: Database URL handling (optional)
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	opts := pipeline.RunOptions{
		CVPath:         cfg.CV,
		JobPath:        cfg.Job,
		JobURL:         cfg.JobURL,
		Template:       cfg.Template,
		Format:         cfg.Format,
		OutputDir:      cfg.OutputDir,
		APIKey:         cfg.APIKey,
		UseBrowser:     cfg.UseBrowser,
		SkipEnrichment: optSkipEnrichment,
		Verbose:        cfg.Verbose,
		DatabaseURL:    cfg.DatabaseURL,
	}

	_, err := pipeline.RunPipeline(ctx, opts)
	return err
}
