// Package utils provides minimal utility functions for common operations.
//
// Overview:
//   - Responsibility: Provide lightweight string and integer helpers
//   - Key Types: None, plain functions
//   - Concurrency Model: All functions are safe for concurrent use
//   - Error Semantics: No errors
//   - Performance Notes: Minimal allocations
//
// Usage:
//
//	keys := utils.Unique(keys)
//	best, ok := utils.Closest("TAB_SIZ", candidates, 3)
package utils

import "strings"

// Min returns the minimum of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the maximum of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Contains checks if a slice contains a specific string.
func Contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

// Unique removes duplicate strings from a slice, keeping first occurrences in order.
func Unique(slice []string) []string {
	keys := make(map[string]bool)
	var result []string

	for _, item := range slice {
		if !keys[item] {
			keys[item] = true
			result = append(result, item)
		}
	}

	return result
}

// Distance returns the Levenshtein edit distance between a and b.
func Distance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = Min(Min(prev[j]+1, curr[j-1]+1), prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

// Closest returns the candidate with the smallest case-insensitive edit
// distance to s, provided that distance is at most maxDistance.
// Ties keep the earlier candidate.
func Closest(s string, candidates []string, maxDistance int) (string, bool) {
	best, bestDist := "", maxDistance+1
	needle := strings.ToUpper(s)
	for _, c := range candidates {
		d := Distance(needle, strings.ToUpper(c))
		if d < bestDist {
			best, bestDist = c, d
		}
	}
	return best, bestDist <= maxDistance
}
