package entity

type SearchResultItem struct {
	Entry     map[string]any `json:"entry"`
	Score     int            `json:"score"`
	Relevance float64        `json:"relevance"`
}

type SearchResponse struct {
	Results []SearchResultItem `json:"results"`
	Count   int                `json:"count"`
}

type ListEntriesResponse struct {
	Entries []map[string]any `json:"entries"`
	Count   int              `json:"count"`
}
