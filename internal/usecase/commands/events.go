package commands

import (
	"encoding/json"
	"time"

	"gym-booking/internal/domain/booking"

	"github.com/google/uuid"
)

// Outbox job kinds. The relay publishes each kind under the same routing key.
const (
	EventBookingCreated   = "booking.created"
	EventBookingUpdated   = "booking.updated"
	EventBookingCancelled = "booking.cancelled"
)

type BookingEvent struct {
	BookingID          uuid.UUID `json:"booking_id"`
	UserID             uuid.UUID `json:"user_id"`
	SpaceID            uuid.UUID `json:"space_id"`
	BookingDate        string    `json:"booking_date"`
	StartTime          string    `json:"start_time"`
	EndTime            string    `json:"end_time"`
	Status             string    `json:"status"`
	PaymentStatus      string    `json:"payment_status"`
	TotalPriceCents    int64     `json:"total_price_cents"`
	CancellationReason *string   `json:"cancellation_reason,omitempty"`
	OccurredAt         time.Time `json:"occurred_at"`
}

func newBookingEvent(b *booking.Booking, at time.Time) BookingEvent {
	return BookingEvent{
		BookingID:          b.ID(),
		UserID:             b.UserID(),
		SpaceID:            b.SpaceID(),
		BookingDate:        b.Date().String(),
		StartTime:          b.Slot().Start().String(),
		EndTime:            b.Slot().End().String(),
		Status:             b.Status().String(),
		PaymentStatus:      b.PaymentStatus().String(),
		TotalPriceCents:    b.TotalPrice().Cents(),
		CancellationReason: b.CancellationReason(),
		OccurredAt:         at,
	}
}

func (e BookingEvent) Marshal() ([]byte, error) {
	return json.Marshal(e)
}
