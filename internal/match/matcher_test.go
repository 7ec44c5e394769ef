package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainsEither_Symmetric(t *testing.T) {
	assert.True(t, ContainsEither("React", "React.js"))
	assert.True(t, ContainsEither("React.js", "React"))
	assert.True(t, ContainsEither("PYTHON", "python"))
	assert.False(t, ContainsEither("Rust", "Python"))
}

func TestContainsEither_ShortTokenFalsePositive(t *testing.T) {
	// Documented limitation of symmetric substring matching.
	assert.True(t, ContainsEither("Go", "Good communication"))
}

func TestContainsEither_Empty(t *testing.T) {
	assert.False(t, ContainsEither("", "Python"))
	assert.False(t, ContainsEither("Python", ""))
	assert.False(t, ContainsEither("", ""))
}

func TestContainsAny(t *testing.T) {
	stack := []string{"PostgreSQL", "Redis", "Kafka"}

	assert.True(t, ContainsAny("postgres", stack))
	assert.False(t, ContainsAny("MongoDB", stack))
	assert.False(t, ContainsAny("MongoDB", nil))
}

func TestTextContains(t *testing.T) {
	text := "Led migration to Kubernetes across three teams"

	assert.True(t, TextContains(text, "kubernetes"))
	assert.False(t, TextContains(text, "terraform"))
	assert.False(t, TextContains(text, ""))
}

func TestTitleSimilarity_Identical(t *testing.T) {
	assert.Equal(t, 1.0, TitleSimilarity("Senior Engineer", "senior engineer"))
}

func TestTitleSimilarity_Empty(t *testing.T) {
	assert.Equal(t, 0.0, TitleSimilarity("", "Engineer"))
	assert.Equal(t, 0.0, TitleSimilarity("Engineer", ""))
}

func TestTitleSimilarity_PartialOverlap(t *testing.T) {
	score := TitleSimilarity("Software Engineer", "Senior Software Engineer")

	assert.Greater(t, score, 0.7)
	assert.Less(t, score, 1.0)
}

func TestTitleSimilarity_Unrelated(t *testing.T) {
	related := TitleSimilarity("Backend Developer", "Backend Engineer")
	unrelated := TitleSimilarity("Backend Developer", "Pastry Chef")

	assert.Greater(t, related, unrelated)
}
