package workspace

import "time"

// Report holds metadata for one saved analysis report.
type Report struct {
	ID          string    `json:"id"`
	Source      string    `json:"source"`
	Path        string    `json:"path"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Columns     int       `json:"columns"`
	AddedAt     time.Time `json:"added_at"`
}
