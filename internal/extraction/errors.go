package extraction

import "fmt"

// FileError represents a failure to read or validate an input document
type FileError struct {
	Path    string
	Message string
	Cause   error
}

func (e *FileError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("file error (%s): %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("file error (%s): %s", e.Path, e.Message)
}

func (e *FileError) Unwrap() error {
	return e.Cause
}

// UnsupportedFormatError indicates a file extension the extractor cannot handle
type UnsupportedFormatError struct {
	Path      string
	Extension string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file format %q for %s", e.Extension, e.Path)
}
