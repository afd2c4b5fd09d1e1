package domain

import "time"

// Log is an append-only audit record. Never mutated or deleted.
type Log struct {
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
	Link      *string   `json:"link,omitempty"`
	LinkTitle *string   `json:"link_title,omitempty"`
}
