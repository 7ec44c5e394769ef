package rendering

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/jonathan/cv-optimizer/internal/types"
)

// Output formats
const (
	FormatText = "txt"
	FormatPDF  = "pdf"
	FormatDocx = "docx"
)

// FormatNames returns the supported output formats.
func FormatNames() []string {
	return []string{FormatText, FormatPDF, FormatDocx}
}

// Renderer generates CV documents in a chosen template style
type Renderer struct {
	Style Style
}

// NewRenderer returns a Renderer using the named template style, falling
// back to modern for unknown names.
func NewRenderer(templateName string) *Renderer {
	return &Renderer{Style: StyleByName(templateName)}
}

// Render produces the CV document in the requested format.
func (r *Renderer) Render(ctx context.Context, profile *types.CandidateProfile, format string) ([]byte, error) {
	switch format {
	case FormatText:
		text, err := RenderText(profile)
		if err != nil {
			return nil, err
		}
		return []byte(text), nil
	case FormatPDF:
		return RenderPDF(ctx, profile, r.Style)
	case FormatDocx:
		return RenderDocx(profile)
	default:
		return nil, &RenderError{Message: fmt.Sprintf("unsupported output format %q", format)}
	}
}

// RenderToFile writes the rendered document to path, creating parent
// directories as needed. The write goes through a temp file so a failed
// render never leaves a truncated document behind.
func (r *Renderer) RenderToFile(ctx context.Context, profile *types.CandidateProfile, format, path string) error {
	content, err := r.Render(ctx, profile, format)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return &RenderError{Message: "failed to create output directory", Cause: err}
		}
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0644); err != nil {
		return &RenderError{Message: "failed to write output file", Cause: err}
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return &RenderError{Message: "failed to finalize output file", Cause: err}
	}
	return nil
}

var unsafeFilenameChars = regexp.MustCompile(`[<>:"/\\|?*]`)

// SanitizeFilename replaces characters that are unsafe in filenames.
func SanitizeFilename(name string) string {
	sanitized := unsafeFilenameChars.ReplaceAllString(name, "_")
	sanitized = strings.Trim(sanitized, ". ")
	if len(sanitized) > 255 {
		ext := filepath.Ext(sanitized)
		sanitized = sanitized[:255-len(ext)] + ext
	}
	return sanitized
}

// OutputFilename builds a timestamped output filename from the candidate
// name, the target job title, and the format extension.
func OutputFilename(baseName, jobTitle, format string) string {
	safeBase := SanitizeFilename(strings.ReplaceAll(baseName, " ", "_"))
	if safeBase == "" {
		safeBase = "cv"
	}

	name := safeBase
	if jobTitle != "" {
		name += "_" + SanitizeFilename(strings.ReplaceAll(jobTitle, " ", "_"))
	}

	return fmt.Sprintf("%s_%d.%s", name, time.Now().Unix(), format)
}
