// Package main provides the entry point for the CV optimizer.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cv_optimizer",
	Short: "AI-assisted CV optimization",
	Long:  "CV Optimizer analyzes a CV against a job posting, re-weights its content toward the job's requirements, scores the fit, and renders a tailored CV as text, PDF, or DOCX.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
