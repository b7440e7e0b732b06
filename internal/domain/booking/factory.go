package booking

import (
	"time"

	"gym-booking/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	OpeningTime = NewTimeOfDay(8, 0, 0)
	ClosingTime = NewTimeOfDay(22, 0, 0)

	MinDuration = 30 * time.Minute
	MaxDuration = 4 * time.Hour
)

// Request is the raw, already presence-checked input of a new booking.
type Request struct {
	UserID    uuid.UUID
	SpaceID   uuid.UUID
	Date      string
	StartTime string
	EndTime   string
	Notes     *string
}

type Factory struct {
	Clock           clock.Clock
	PriceCalculator PriceCalculator
	Location        *time.Location
}

func NewFactory(clock clock.Clock, priceCalculator PriceCalculator, loc *time.Location) *Factory {
	if loc == nil {
		loc = time.Local
	}
	return &Factory{
		Clock:           clock,
		PriceCalculator: priceCalculator,
		Location:        loc,
	}
}

// Today is the current calendar date in the factory's location.
func (f *Factory) Today() Date {
	return DateOf(clock.NowIn(f.Clock, f.Location))
}

// NewBooking validates date, times, business hours and duration in that
// order and returns a pending, unpaid booking priced at hourlyRate.
func (f *Factory) NewBooking(req Request, hourlyRate Money) (*Booking, error) {
	date, err := ParseDate(req.Date)
	if err != nil {
		return nil, err
	}
	if date.Before(f.Today()) {
		return nil, ErrInvalidDate
	}

	slot, err := ParseSlot(req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	if err := ValidateBusinessHours(slot); err != nil {
		return nil, err
	}
	if err := ValidateDuration(slot); err != nil {
		return nil, err
	}

	notes, err := NormalizeNotes(req.Notes)
	if err != nil {
		return nil, err
	}

	price := f.PriceCalculator.CalculatePrice(hourlyRate, slot)
	if price.cents < 0 {
		return nil, ErrNegativePrice
	}

	now := f.Clock.Now()
	return &Booking{
		id:            uuid.New(),
		userID:        req.UserID,
		spaceID:       req.SpaceID,
		date:          date,
		slot:          slot,
		status:        StatusPending,
		paymentStatus: PaymentUnpaid,
		durationHours: slot.Hours(),
		totalPrice:    price,
		notes:         notes,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// Reprice recomputes the total of a booking that has not been persisted yet.
func (f *Factory) Reprice(b *Booking, hourlyRate Money) error {
	price := f.PriceCalculator.CalculatePrice(hourlyRate, b.slot)
	if price.cents < 0 {
		return ErrNegativePrice
	}
	b.totalPrice = price
	return nil
}

// ParseSlot parses both times before comparing them, so a malformed end time
// is reported as a format error rather than an ordering error.
func ParseSlot(start, end string) (TimeSlot, error) {
	s, err := ParseTimeOfDay(start)
	if err != nil {
		return TimeSlot{}, err
	}
	e, err := ParseTimeOfDay(end)
	if err != nil {
		return TimeSlot{}, err
	}
	return NewTimeSlot(s, e)
}

func ValidateBusinessHours(slot TimeSlot) error {
	if slot.start < OpeningTime || slot.end > ClosingTime {
		return ErrOutsideBusinessHours
	}
	return nil
}

func ValidateDuration(slot TimeSlot) error {
	d := slot.Duration()
	if d < MinDuration || d > MaxDuration {
		return ErrDurationOutOfRange
	}
	return nil
}
