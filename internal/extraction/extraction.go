// Package extraction reads candidate documents (PDF, DOCX, plain text,
// Markdown) and produces their plain-text content for downstream parsing.
package extraction

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// DefaultMaxFileSize caps input documents at 10MB
const DefaultMaxFileSize = 10 * 1024 * 1024

// supportedExtensions lists the file types the extractor can handle
var supportedExtensions = []string{".pdf", ".docx", ".txt", ".md"}

// Extractor validates and extracts text from candidate documents
type Extractor struct {
	MaxFileSize int64
}

// NewExtractor returns an Extractor with the default size limit
func NewExtractor() *Extractor {
	return &Extractor{MaxFileSize: DefaultMaxFileSize}
}

// ValidateFile checks that the file exists, is within the size limit, and
// has a supported extension.
func (e *Extractor) ValidateFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &FileError{Path: path, Message: "file does not exist"}
		}
		return &FileError{Path: path, Message: "cannot stat file", Cause: err}
	}

	if info.IsDir() {
		return &FileError{Path: path, Message: "path is a directory"}
	}

	if info.Size() > e.MaxFileSize {
		return &FileError{
			Path:    path,
			Message: fmt.Sprintf("file size (%d bytes) exceeds maximum allowed size (%d bytes)", info.Size(), e.MaxFileSize),
		}
	}

	ext := strings.ToLower(filepath.Ext(path))
	if !IsSupportedExtension(ext) {
		return &UnsupportedFormatError{Path: path, Extension: ext}
	}

	return nil
}

// ExtractText validates the file and returns its plain-text content.
func (e *Extractor) ExtractText(path string) (string, error) {
	if err := e.ValidateFile(path); err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".pdf":
		return extractPDF(path)
	case ".docx":
		return extractDocx(path)
	case ".txt", ".md":
		return extractPlainText(path)
	default:
		return "", &UnsupportedFormatError{Path: path, Extension: ext}
	}
}

// IsSupportedExtension reports whether the extractor handles the given
// lowercase file extension.
func IsSupportedExtension(ext string) bool {
	for _, supported := range supportedExtensions {
		if ext == supported {
			return true
		}
	}
	return false
}

// SupportedExtensions returns the handled file extensions.
func SupportedExtensions() []string {
	out := make([]string, len(supportedExtensions))
	copy(out, supportedExtensions)
	return out
}

func extractPDF(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", &FileError{Path: path, Message: "failed to open PDF", Cause: err}
	}
	defer func() { _ = f.Close() }()

	var builder strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			// Skip unreadable pages rather than failing the whole document.
			continue
		}
		if pageText != "" {
			builder.WriteString(pageText)
			builder.WriteString("\n\n")
		}
	}

	text := strings.TrimSpace(builder.String())
	if text == "" {
		return "", &FileError{Path: path, Message: "no extractable text in PDF"}
	}
	return text, nil
}

func extractPlainText(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", &FileError{Path: path, Message: "failed to read file", Cause: err}
	}
	return strings.TrimSpace(string(content)), nil
}
