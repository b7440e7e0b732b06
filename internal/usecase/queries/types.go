package queries

import (
	"time"

	"github.com/google/uuid"
)

// BookingView is a booking joined with its space and user summaries.
type BookingView struct {
	ID                 uuid.UUID  `json:"id"`
	UserID             uuid.UUID  `json:"user_id"`
	UserName           string     `json:"user_name"`
	UserEmail          string     `json:"user_email"`
	SpaceID            uuid.UUID  `json:"space_id"`
	SpaceName          string     `json:"space_name"`
	SpaceType          string     `json:"space_type"`
	BookingDate        string     `json:"booking_date"`
	StartTime          string     `json:"start_time"`
	EndTime            string     `json:"end_time"`
	Status             string     `json:"status"`
	PaymentStatus      string     `json:"payment_status"`
	DurationHours      float64    `json:"duration_hours"`
	TotalPriceCents    int64      `json:"total_price_cents"`
	Notes              *string    `json:"notes,omitempty"`
	CancellationReason *string    `json:"cancellation_reason,omitempty"`
	CancelledAt        *time.Time `json:"cancelled_at,omitempty"`
	CheckInTime        *time.Time `json:"check_in_time,omitempty"`
	CheckOutTime       *time.Time `json:"check_out_time,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

type SpaceView struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Type            string    `json:"type"`
	Description     *string   `json:"description,omitempty"`
	Capacity        int32     `json:"capacity"`
	HourlyRateCents int64     `json:"hourly_rate_cents"`
	IsActive        bool      `json:"is_active"`
	Amenities       []string  `json:"amenities"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type SpaceSummary struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Type            string    `json:"type"`
	Capacity        int       `json:"capacity"`
	HourlyRateCents int64     `json:"hourly_rate_cents"`
}

type RequestedSlot struct {
	BookingDate string `json:"booking_date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
}

type ConflictView struct {
	ID        uuid.UUID `json:"id"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	Status    string    `json:"status"`
}

type AvailabilityView struct {
	Available           bool           `json:"available"`
	Space               SpaceSummary   `json:"space"`
	RequestedSlot       RequestedSlot  `json:"requested_slot"`
	ConflictingBookings []ConflictView `json:"conflicting_bookings"`
	Message             string         `json:"message"`
}

type Pagination struct {
	Total       int64 `json:"total"`
	Page        int   `json:"page"`
	Limit       int   `json:"limit"`
	TotalPages  int   `json:"totalPages"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}

type BookingPage struct {
	Data       []*BookingView `json:"data"`
	Pagination Pagination     `json:"pagination"`
}
