package search

import "strings"

// synonymRule maps a trigger word to the related terms appended to a query
// when the trigger occurs anywhere in the lowercased query text.
type synonymRule struct {
	trigger  string
	synonyms []string
}

// synonymRules fire in declaration order. Only the trigger keys are matched:
// a query containing "tour" alone does not fire the travel rule even though
// "tour" is one of its synonyms.
var synonymRules = []synonymRule{
	{"travel", []string{"trip", "journey", "vacation", "tour"}},
	{"food", []string{"cuisine", "dining", "restaurant", "meal"}},
	{"hotel", []string{"accommodation", "stay", "lodging", "resort"}},
	{"activity", []string{"experience", "adventure", "excursion", "attraction"}},
}

// Enhance expands a raw query with domain synonyms. For every rule whose
// trigger is a substring of the lowercased query, the rule's synonyms are
// appended space-joined to the original query. Queries without triggers are
// returned unchanged.
func Enhance(query string) string {
	lowered := strings.ToLower(query)

	enhanced := query
	for _, rule := range synonymRules {
		if strings.Contains(lowered, rule.trigger) {
			enhanced += " " + strings.Join(rule.synonyms, " ")
		}
	}
	return enhanced
}
