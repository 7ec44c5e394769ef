package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The cases run in order against the shared command tree, so each case
// sets every flag it depends on explicitly.
func TestOptimizeCommand_Validation(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("DATABASE_URL", "")

	tests := []struct {
		name        string
		args        []string
		errorString string
	}{
		{
			name:        "missing --cv",
			args:        []string{"optimize"},
			errorString: "--cv is required",
		},
		{
			name:        "missing job source",
			args:        []string{"optimize", "--cv", "cv.txt", "--job", "", "--job-url", ""},
			errorString: "either --job or --job-url must be provided",
		},
		{
			name:        "mutually exclusive job sources",
			args:        []string{"optimize", "--cv", "cv.txt", "--job", "job.txt", "--job-url", "https://example.com/job"},
			errorString: "mutually exclusive",
		},
		{
			name:        "missing API key",
			args:        []string{"optimize", "--cv", "cv.txt", "--job", "job.txt", "--job-url", ""},
			errorString: "GEMINI_API_KEY",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rootCmd.SetArgs(tt.args)
			err := rootCmd.Execute()

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorString)
		})
	}
}

func TestServeCommand_RequiresAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	rootCmd.SetArgs([]string{"serve"})
	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}
