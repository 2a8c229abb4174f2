package shared

import (
	"time"

	"github.com/google/uuid"
)

// Minimal snapshots for command-side validation reads.

type UserSnapshot struct {
	ID      int64
	Name    string
	Contact string
	Role    string
}

type SpaceSnapshot struct {
	ID         int64
	Name       string
	Location   string
	Category   string
	PriceCents int64
	Capacity   int
	Occupied   int
	Policy     string
	Active     bool
}

type IdempotencyRecord struct {
	Key                 uuid.UUID
	UserID              int64
	Endpoint            string
	RequestHash         string
	Status              string
	ResultReservationID *int64
	ExpiresAt           time.Time
}

const (
	IdempotencyStatusProcessing = "processing"
	IdempotencyStatusCompleted  = "completed"
)
