package parsing

import (
	"strings"

	"github.com/jonathan/cv-optimizer/internal/types"
)

// skillNormalizations maps common skill name variants to canonical names
var skillNormalizations = map[string]string{
	"golang":     "Go",
	"go lang":    "Go",
	"javascript": "JavaScript",
	"js":         "JavaScript",
	"typescript": "TypeScript",
	"ts":         "TypeScript",
	"k8s":        "Kubernetes",
	"kubernetes": "Kubernetes",
	"react.js":   "React",
	"reactjs":    "React",
	"vue.js":     "Vue",
	"vuejs":      "Vue",
	"node.js":    "Node.js",
	"nodejs":     "Node.js",
	"postgres":   "PostgreSQL",
	"py":         "Python",
}

// NormalizeSkillName maps a skill name variant to its canonical form.
// Unknown names keep their casing unless they are single all-lowercase
// words, which get an initial capital.
func NormalizeSkillName(skillName string) string {
	normalized := strings.TrimSpace(skillName)
	if normalized == "" {
		return ""
	}

	if canonical, ok := skillNormalizations[strings.ToLower(normalized)]; ok {
		return canonical
	}

	if normalized == strings.ToLower(normalized) && !strings.Contains(normalized, " ") {
		return strings.ToUpper(normalized[:1]) + normalized[1:]
	}

	return normalized
}

// NormalizeSkillRequirements canonicalizes skill names and drops duplicate
// requirements. When a duplicate carries a level and the first occurrence
// does not, the level is merged into the kept entry.
func NormalizeSkillRequirements(reqs []types.SkillRequirement) []types.SkillRequirement {
	if len(reqs) == 0 {
		return reqs
	}

	normalized := make([]types.SkillRequirement, 0, len(reqs))
	seen := make(map[string]int)

	for _, req := range reqs {
		name := NormalizeSkillName(req.SkillName)
		if name == "" {
			continue
		}

		key := strings.ToLower(name)
		if idx, exists := seen[key]; exists {
			if normalized[idx].Level == "" && req.Level != "" {
				normalized[idx].Level = req.Level
			}
			continue
		}

		req.SkillName = name
		normalized = append(normalized, req)
		seen[key] = len(normalized) - 1
	}

	return normalized
}

// normalizeKeywords lowercases, trims, and deduplicates keyword lists.
func normalizeKeywords(keywords []string) []string {
	normalized := make([]string, 0, len(keywords))
	seen := make(map[string]bool)
	for _, keyword := range keywords {
		k := strings.ToLower(strings.TrimSpace(keyword))
		if k != "" && !seen[k] {
			normalized = append(normalized, k)
			seen[k] = true
		}
	}
	return normalized
}
