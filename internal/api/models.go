package api

type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Days    []int  `json:"days"`
}

// DayInput is the body of the per-day solve route.
type DayInput struct {
	RequestID string   `json:"request_id"`
	Lines     []string `json:"lines"`
}
