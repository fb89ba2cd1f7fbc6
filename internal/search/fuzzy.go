package search

import "strings"

const (
	// fuzzyThreshold is the minimum normalized similarity for two words to
	// count as a fuzzy match.
	fuzzyThreshold = 0.7

	// fuzzyMinLength guards against false positives on short tokens: both
	// the term and the candidate word must be at least this long.
	fuzzyMinLength = 3
)

// Levenshtein computes the classic edit distance between a and b with unit
// costs for insertion, deletion and substitution, using the full
// (len(b)+1) x (len(a)+1) dynamic-programming matrix.
func Levenshtein(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)

	matrix := make([][]int, len(rb)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(ra)+1)
	}
	for i := 0; i <= len(rb); i++ {
		matrix[i][0] = i
	}
	for j := 0; j <= len(ra); j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len(rb); i++ {
		for j := 1; j <= len(ra); j++ {
			if rb[i-1] == ra[j-1] {
				matrix[i][j] = matrix[i-1][j-1]
			} else {
				matrix[i][j] = 1 + min(
					matrix[i][j-1],   // insertion
					matrix[i-1][j],   // deletion
					matrix[i-1][j-1], // substitution
				)
			}
		}
	}

	return matrix[len(rb)][len(ra)]
}

// Similarity returns the normalized similarity of two strings:
// 1 - editDistance(longer, shorter) / len(longer). Two empty strings are
// fully similar.
func Similarity(a, b string) float64 {
	longer, shorter := a, b
	if len([]rune(b)) > len([]rune(a)) {
		longer, shorter = b, a
	}

	longerLen := len([]rune(longer))
	if longerLen == 0 {
		return 1.0
	}

	return 1.0 - float64(Levenshtein(longer, shorter))/float64(longerLen)
}

// FuzzyMatch reports whether term approximately matches any whitespace
// separated word of text. Words and terms shorter than three characters
// never match.
func FuzzyMatch(term, text string) bool {
	if len([]rune(term)) < fuzzyMinLength {
		return false
	}

	for _, word := range strings.Fields(text) {
		if len([]rune(word)) < fuzzyMinLength {
			continue
		}
		if Similarity(term, word) > fuzzyThreshold {
			return true
		}
	}
	return false
}
