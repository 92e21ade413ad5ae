package domain

import "time"

// HistoryRecord is one logged invocation. The log belongs to the surrounding
// CLI; it is never fed back into prompts.
type HistoryRecord struct {
	Timestamp time.Time `json:"timestamp"`
	Query     string    `json:"query"`
	Command   string    `json:"command"`
	Provider  string    `json:"provider"`
	Model     string    `json:"model"`
	Raw       bool      `json:"raw"`
}
