// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jonathan/cv-optimizer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintJobProfile outputs a human-readable summary of the parsed job profile.
func (p *Printer) PrintJobProfile(profile *types.JobProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Company:  %s\n", profile.Company.Name))
	sb.WriteString(fmt.Sprintf("Role:     %s\n", profile.Title))
	sb.WriteString("\n")

	if len(profile.RequiredSkills) > 0 {
		sb.WriteString("Required Skills:\n")
		count := min(len(profile.RequiredSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			req := profile.RequiredSkills[i]
			sb.WriteString(fmt.Sprintf("  • %s", req.SkillName))
			if req.Level != "" {
				sb.WriteString(fmt.Sprintf(" (%s)", req.Level))
			}
			sb.WriteString("\n")
		}
		if len(profile.RequiredSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.RequiredSkills)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(profile.PreferredSkills) > 0 {
		sb.WriteString("Preferred Skills:\n")
		count := min(len(profile.PreferredSkills), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", profile.PreferredSkills[i].SkillName))
		}
		if len(profile.PreferredSkills) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.PreferredSkills)-3))
		}
	}

	p.printBox("PARSED JOB PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCandidateProfile outputs a short summary of the parsed CV.
func (p *Printer) PrintCandidateProfile(profile *types.CandidateProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:        %s\n", profile.ContactInfo.FullName))
	sb.WriteString(fmt.Sprintf("Experience:  %d entries\n", len(profile.EmploymentHistory)))
	sb.WriteString(fmt.Sprintf("Skills:      %d technical, %d soft\n",
		len(profile.TechnicalSkills), len(profile.SoftSkills)))
	sb.WriteString(fmt.Sprintf("Projects:    %d\n", len(profile.Projects)))

	if profile.Summary != "" {
		summary := profile.Summary
		if len(summary) > 50 {
			summary = summary[:47] + "..."
		}
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("Summary: %s\n", summary))
	}

	p.printBox("PARSED CANDIDATE PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintOptimizationResult outputs the score, improvements, and remaining
// skill gaps from an optimization run.
func (p *Printer) PrintOptimizationResult(result *types.OptimizationResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score:      %.1f / 100\n", result.Score))
	sb.WriteString(fmt.Sprintf("Duration:   %s\n", result.ProcessingTime.Round(time.Millisecond)))
	sb.WriteString("\n")

	if len(result.Improvements) > 0 {
		sb.WriteString("Improvements:\n")
		count := min(len(result.Improvements), maxItemsToShow)
		for i := 0; i < count; i++ {
			improvement := result.Improvements[i]
			if len(improvement) > 50 {
				improvement = improvement[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", improvement))
		}
		sb.WriteString("\n")
	}

	if len(result.SkillGaps) > 0 {
		sb.WriteString("Remaining Skill Gaps:\n")
		count := min(len(result.SkillGaps), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  ⚠ %s\n", result.SkillGaps[i]))
		}
		if len(result.SkillGaps) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.SkillGaps)-maxItemsToShow))
		}
	} else {
		sb.WriteString("✅ No remaining skill gaps\n")
	}

	if len(result.KeywordMatches) > 0 {
		sb.WriteString(fmt.Sprintf("\nKeyword matches: %d\n", len(result.KeywordMatches)))
	}

	p.printBox("OPTIMIZATION RESULT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintStatistics outputs profile statistics.
func (p *Printer) PrintStatistics(stats *types.ProfileStatistics) {
	if stats == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Experience:      %d entries (~%.1f years)\n",
		stats.TotalExperienceEntries, stats.EstimatedYearsExperience))
	sb.WriteString(fmt.Sprintf("Skills:          %d\n", stats.TotalSkills))
	sb.WriteString(fmt.Sprintf("Projects:        %d\n", stats.TotalProjects))
	sb.WriteString(fmt.Sprintf("Education:       %d\n", stats.TotalEducationEntries))
	sb.WriteString(fmt.Sprintf("Certifications:  %d\n", stats.TotalCertifications))
	sb.WriteString(fmt.Sprintf("Summary words:   %d\n", stats.SummaryWordCount))

	p.printBox("CV STATISTICS", strings.TrimSuffix(sb.String(), "\n"))
}
