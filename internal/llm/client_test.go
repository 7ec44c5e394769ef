package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModelTierMapping(t *testing.T) {
	assert.Equal(t, "gemini-2.5-flash-lite", TierLite.Model())
	assert.Equal(t, "gemini-2.5-flash", TierStandard.Model())
	assert.Equal(t, "gemini-2.5-pro", TierAdvanced.Model())

	// Unknown tiers fall back to the default model.
	assert.Equal(t, DefaultModel, ModelTier("").Model())
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	assert.Equal(t, TierStandard, opts.Tier)
	assert.Equal(t, DefaultModel, opts.Model)
	assert.InDelta(t, 0.1, float64(opts.Temperature), 0.001)
}

func TestNewGeminiClient_RequiresAPIKey(t *testing.T) {
	_, err := NewGeminiClient(context.Background(), "", nil)
	assert.Error(t, err)
}
