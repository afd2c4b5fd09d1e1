package domain

import (
	"time"

	"github.com/google/uuid"
)

// Board is immutable after creation. There is no removal operation:
// boards are permanent.
type Board struct {
	Uuid        uuid.UUID `json:"uuid"`
	CreatedAt   time.Time `json:"created_at"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}

type BoardCreationData struct {
	Name        string
	Description string
}
