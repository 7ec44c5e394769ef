package match

import "strings"

// TitleSimilarity returns a normalized similarity ratio between two job
// titles in [0,1], based on the length of their longest common
// subsequence relative to the combined length. Comparison is
// case-insensitive. Empty inputs score 0.
func TitleSimilarity(a, b string) float64 {
	la := strings.ToLower(strings.TrimSpace(a))
	lb := strings.ToLower(strings.TrimSpace(b))
	if la == "" || lb == "" {
		return 0
	}
	if la == lb {
		return 1
	}

	lcs := longestCommonSubsequence(la, lb)
	// Same shape as difflib's ratio: 2*M / T where M is the match length
	// and T the total length of both sequences.
	return float64(2*lcs) / float64(len(la)+len(lb))
}

// longestCommonSubsequence computes the LCS length with a rolling
// single-row table.
func longestCommonSubsequence(a, b string) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
			} else if prev[j] >= curr[j-1] {
				curr[j] = prev[j]
			} else {
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
