package search

import (
	"sort"
	"strings"
)

// Entry is a single record from the external content store. Entries are
// schemaless: beyond the title the field set varies per content type, so
// values are accessed through probing helpers instead of a fixed struct.
type Entry map[string]any

// descriptionFields is the ordered list of field names probed for the
// descriptive text of an entry. The first present string field wins.
var descriptionFields = []string{
	"description",
	"details",
	"content",
	"body",
	"summary",
	"text",
}

// Title returns the entry title, or the empty string when absent.
func (e Entry) Title() string {
	s, _ := e.stringField("title")
	return s
}

// Description returns the first present descriptive field, or the empty
// string when none of the candidates is set.
func (e Entry) Description() string {
	for _, field := range descriptionFields {
		if s, ok := e.stringField(field); ok {
			return s
		}
	}
	return ""
}

// AllText joins every string-valued field of the entry with single spaces.
// Keys are visited in sorted order so the result is deterministic.
func (e Entry) AllText() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		if _, ok := e[k].(string); ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, e[k].(string))
	}
	return strings.Join(parts, " ")
}

func (e Entry) stringField(key string) (string, bool) {
	v, ok := e[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// Result is an entry annotated with its relevance for a single search call.
// The annotation lives on a copy; the fetched entry itself is never mutated.
type Result struct {
	Entry     Entry   `json:"entry"`
	Score     int     `json:"score"`
	Relevance float64 `json:"relevance"`
}
