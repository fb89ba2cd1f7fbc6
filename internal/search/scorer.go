package search

import "strings"

// Weights parametrizes the relevance scorer. The two retrieval variants use
// different tables, so the weights travel with the call instead of being
// baked into the scoring code.
type Weights struct {
	// Title is added once per query term found in the entry title.
	Title int
	// Description is added once per query term found in the descriptive field.
	Description int
	// WholeText is added once per query term found anywhere in the joined
	// string fields of the entry. Zero disables the whole-entry scan.
	WholeText int
	// FuzzyBonus is added once per query term that fuzzy-matches a word of
	// the combined title and description. Zero disables fuzzy matching.
	FuzzyBonus int
	// PhraseBonus is added once when the combined title and description
	// contains the original query as a contiguous substring. Zero disables
	// the bonus.
	PhraseBonus int
}

// PlainWeights is the weight table of the plain search variant.
var PlainWeights = Weights{Title: 5, Description: 3, WholeText: 1}

// IntelligentWeights is the weight table of the synonym-enhanced variant.
var IntelligentWeights = Weights{Title: 5, Description: 2, FuzzyBonus: 1, PhraseBonus: 10}

// Score computes the relevance of an entry against a query. The phrase bonus
// is checked against the original query; per-term weights run over the terms
// of the enhanced query. Missing fields score as empty strings. The returned
// relevance is the score normalized by the number of terms.
func Score(e Entry, query, enhancedQuery string, w Weights) (int, float64) {
	title := strings.ToLower(e.Title())
	description := strings.ToLower(e.Description())
	combined := title + " " + description

	score := 0

	if w.PhraseBonus > 0 {
		phrase := strings.ToLower(strings.TrimSpace(query))
		if phrase != "" && strings.Contains(combined, phrase) {
			score += w.PhraseBonus
		}
	}

	var wholeText string
	if w.WholeText > 0 {
		wholeText = strings.ToLower(e.AllText())
	}

	terms := strings.Fields(strings.ToLower(enhancedQuery))
	for _, term := range terms {
		if strings.Contains(title, term) {
			score += w.Title
		}
		if strings.Contains(description, term) {
			score += w.Description
		}
		if w.WholeText > 0 && strings.Contains(wholeText, term) {
			score += w.WholeText
		}
		if w.FuzzyBonus > 0 && FuzzyMatch(term, combined) {
			score += w.FuzzyBonus
		}
	}

	relevance := float64(score) / float64(max(len(terms), 1))

	return score, relevance
}
