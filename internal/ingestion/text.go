// Package ingestion turns input documents into cleaned plain text ready
// for LLM parsing: CV files via the extraction package, job postings from
// files or URLs.
package ingestion

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/cv-optimizer/internal/extraction"
)

// Document kinds recorded in metadata
const (
	KindCV  = "cv"
	KindJob = "job"
)

// CleanText cleans and normalizes text content while preserving structure
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleanedLines := make([]string, 0, len(lines))
	for _, line := range lines {
		cleanedLines = append(cleanedLines, cleanLine(line))
	}

	result := strings.Join(cleanedLines, "\n")
	result = removeExcessiveBlankLines(result)
	return strings.TrimSpace(result)
}

// cleanLine cleans a single line while preserving structure
func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t")

	if strings.TrimSpace(line) == "" {
		return ""
	}

	// Keep markdown headings as-is, normalize leading spaces to 0
	trimmed := strings.TrimLeft(line, " \t")
	if strings.HasPrefix(trimmed, "#") {
		return trimmed
	}

	// Preserve indentation before bullets
	if strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") {
		indent := len(line) - len(trimmed)
		if indent > 0 {
			return strings.Repeat(" ", indent) + trimmed
		}
		return trimmed
	}

	// Regular lines: collapse runs of whitespace, keep leading indentation
	leadingSpace := len(line) - len(trimmed)
	content := regexp.MustCompile(`\s+`).ReplaceAllString(strings.TrimSpace(line), " ")
	if leadingSpace > 0 {
		return strings.Repeat(" ", leadingSpace) + content
	}
	return content
}

// removeExcessiveBlankLines reduces consecutive blank lines to max 2
func removeExcessiveBlankLines(content string) string {
	re := regexp.MustCompile(`\n\n\n+`)
	return re.ReplaceAllString(content, "\n\n")
}

// IngestCVFromFile extracts text from a CV document (PDF, DOCX, TXT, MD),
// cleans it, and returns the cleaned text with metadata.
func IngestCVFromFile(path string) (string, *Metadata, error) {
	raw, err := extraction.NewExtractor().ExtractText(path)
	if err != nil {
		return "", nil, fmt.Errorf("failed to extract CV text: %w", err)
	}

	cleanedText := CleanText(raw)
	if cleanedText == "" {
		return "", nil, fmt.Errorf("no text content in CV file %s", path)
	}

	return cleanedText, NewMetadata(cleanedText, path, KindCV), nil
}

// IngestJobFromFile reads a job posting from a text file, cleans it, and
// returns the cleaned text with metadata.
func IngestJobFromFile(path string) (string, *Metadata, error) {
	raw, err := extraction.NewExtractor().ExtractText(path)
	if err != nil {
		return "", nil, fmt.Errorf("failed to read job posting: %w", err)
	}

	cleanedText := CleanText(raw)
	if cleanedText == "" {
		return "", nil, fmt.Errorf("no text content in job posting file %s", path)
	}

	return cleanedText, NewMetadata(cleanedText, path, KindJob), nil
}
