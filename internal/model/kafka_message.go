package model

// StatsIngestedMessage is the per-year snapshot event published to Kafka
// after a successful contribution ingestion.
type StatsIngestedMessage struct {
	Year               int    `json:"year"`
	Username           string `json:"username"`
	ContributionsCount int    `json:"contributions_count"`
	TotalContributions int    `json:"total_contributions"`
	LastUpdated        string `json:"last_updated"`
}
