package shared

import (
	"time"

	"github.com/google/uuid"
)

type UserSnapshot struct {
	ID       uuid.UUID
	Name     string
	Email    string
	IsActive bool
}

// SpaceSnapshot is the write-side view of a space. It is cached, so it carries json tags.
type SpaceSnapshot struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Type            string    `json:"type"`
	Capacity        int       `json:"capacity"`
	HourlyRateCents int64     `json:"hourly_rate_cents"`
	IsActive        bool      `json:"is_active"`
	Deleted         bool      `json:"deleted"`
}

func (s *SpaceSnapshot) IsBookable() bool {
	return s.IsActive && !s.Deleted
}

type NotificationJob struct {
	ID       uuid.UUID
	Kind     string
	Topic    string
	Payload  []byte
	RunAt    time.Time
	Attempts int32
}
