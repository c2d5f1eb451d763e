package model

import "time"

// SearchEvent represents a single search event for analytics tracking
type SearchEvent struct {
	Collection   string        `json:"collection"` // Empty for ad-hoc searches over posted items
	Query        string        `json:"query"`
	ResponseTime time.Duration `json:"response_time"`
	Candidates   int           `json:"candidates"`
	ResultCount  int           `json:"result_count"`
	Timestamp    time.Time     `json:"timestamp"`
}

// PopularSearch represents aggregated data for popular search terms
type PopularSearch struct {
	Query       string `json:"query"`
	SearchCount int    `json:"search_count"`
}

// CollectionStats represents statistics for a specific collection
type CollectionStats struct {
	Collection    string `json:"collection"`
	DocumentCount int    `json:"document_count"`
	SearchCount   int    `json:"search_count"`
}

// ResponseTimeDistribution represents response time distribution buckets
type ResponseTimeDistribution struct {
	Bucket0To1ms    int `json:"bucket_0_1ms"`
	Bucket1To10ms   int `json:"bucket_1_10ms"`
	Bucket10To100ms int `json:"bucket_10_100ms"`
	Bucket100msPlus int `json:"bucket_100ms_plus"`
}

// AnalyticsDashboard contains the aggregated search analytics
type AnalyticsDashboard struct {
	TotalSearches            int                      `json:"total_searches"`
	ZeroResultSearches       int                      `json:"zero_result_searches"`
	AvgResponseTimeMs        float64                  `json:"avg_response_time_ms"`
	TotalDocuments           int                      `json:"total_documents"`
	ActiveCollections        int                      `json:"active_collections"`
	PopularSearches          []PopularSearch          `json:"popular_searches"`
	CollectionUsage          []CollectionStats        `json:"collection_usage"`
	ResponseTimeDistribution ResponseTimeDistribution `json:"response_time_distribution"`
}
