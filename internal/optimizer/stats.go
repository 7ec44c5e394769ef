package optimizer

import (
	"strings"
	"time"

	"github.com/jonathan/cv-optimizer/internal/types"
)

// Statistics summarizes a profile for reporting: entry counts, summary
// length, and a rough years-of-experience estimate from the work history.
func Statistics(profile *types.CandidateProfile) types.ProfileStatistics {
	return types.ProfileStatistics{
		TotalExperienceEntries:   len(profile.EmploymentHistory),
		TotalSkills:              len(profile.TechnicalSkills) + len(profile.SoftSkills) + len(profile.Languages),
		TotalProjects:            len(profile.Projects),
		TotalEducationEntries:    len(profile.Education),
		TotalCertifications:      len(profile.Certifications),
		SummaryWordCount:         len(strings.Fields(profile.Summary)),
		EstimatedYearsExperience: estimateYears(profile.EmploymentHistory),
	}
}

// estimateYears sums the span of each entry with a parseable start year.
// Free-text dates that don't contain a year contribute nothing; "Present"
// and empty end dates count up to the current year.
func estimateYears(history []types.WorkExperience) float64 {
	currentYear := time.Now().Year()
	total := 0.0
	for _, exp := range history {
		start, ok := extractYear(exp.StartDate)
		if !ok {
			continue
		}
		end := currentYear
		if y, ok := extractYear(exp.EndDate); ok {
			end = y
		}
		if end >= start {
			total += float64(end - start)
		}
	}
	return total
}

// extractYear finds the first 4-digit year in a free-text date.
func extractYear(date string) (int, bool) {
	runes := []rune(date)
	for i := 0; i+4 <= len(runes); i++ {
		if isDigit(runes[i]) && isDigit(runes[i+1]) && isDigit(runes[i+2]) && isDigit(runes[i+3]) {
			year := 0
			for _, r := range runes[i : i+4] {
				year = year*10 + int(r-'0')
			}
			if year >= 1900 && year <= 2100 {
				return year, true
			}
		}
	}
	return 0, false
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }
