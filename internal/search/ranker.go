package search

import "sort"

// ScoreFunc computes the score and normalized relevance of a single entry.
type ScoreFunc func(Entry) (int, float64)

// Rank scores every entry, discards those that scored zero, stable-sorts the
// rest descending by score and truncates to maxResults. Ties keep the fetch
// order. A non-positive maxResults yields an empty result.
func Rank(entries []Entry, scoreFn ScoreFunc, maxResults int) []Result {
	if maxResults <= 0 {
		return nil
	}

	scored := make([]Result, 0, len(entries))
	for _, e := range entries {
		score, relevance := scoreFn(e)
		if score <= 0 {
			continue
		}
		scored = append(scored, Result{Entry: e, Score: score, Relevance: relevance})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > maxResults {
		scored = scored[:maxResults]
	}

	return scored
}

// Head returns the first maxResults entries in fetch order, unscored. Used
// when the query is empty and ranking degenerates to "first N".
func Head(entries []Entry, maxResults int) []Result {
	if maxResults <= 0 {
		return nil
	}
	if len(entries) > maxResults {
		entries = entries[:maxResults]
	}

	results := make([]Result, 0, len(entries))
	for _, e := range entries {
		results = append(results, Result{Entry: e})
	}
	return results
}
