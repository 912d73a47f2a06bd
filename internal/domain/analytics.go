package domain

// ContentTypeCount is the number of history items of one content type.
type ContentTypeCount struct {
	ContentType ContentType `json:"content_type"`
	Label       string      `json:"label"`
	Count       int         `json:"count"`
}

// KeywordCount is the frequency of one keyword across history inputs.
type KeywordCount struct {
	Keyword string `json:"keyword"`
	Count   int    `json:"count"`
}

// AnalyticsSnapshot is derived on demand from history and clients and never
// persisted. MostUsed is empty when there is no history.
type AnalyticsSnapshot struct {
	TotalGenerations int                `json:"total_generations"`
	TotalClients     int                `json:"total_clients"`
	MostUsed         ContentType        `json:"most_used,omitempty"`
	ByContentType    []ContentTypeCount `json:"by_content_type"`
	TopKeywords      []KeywordCount     `json:"top_keywords"`
}
