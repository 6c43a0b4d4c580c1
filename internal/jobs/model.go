// Package jobs manages job-application records scoped to their owner.
package jobs

import "time"

// Status tracks where an application stands.
type Status string

const (
	StatusPending   Status = "pending"
	StatusInterview Status = "interview"
	StatusDeclined  Status = "declined"
)

// Job is one job-application record. CreatedBy scopes every read and write:
// records are invisible across users.
type Job struct {
	ID        string    `json:"id"`
	Company   string    `json:"company"`
	Position  string    `json:"position"`
	Status    Status    `json:"status"`
	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
