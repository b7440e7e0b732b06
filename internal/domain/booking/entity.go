package booking

import (
	"time"

	"gym-booking/internal/pkg/patch"

	"github.com/google/uuid"
)

const (
	DefaultCancellationReason = "User cancelled"

	FullRefundWindow = 24 * time.Hour
)

type Booking struct {
	id                 uuid.UUID
	userID             uuid.UUID
	spaceID            uuid.UUID
	date               Date
	slot               TimeSlot
	status             Status
	paymentStatus      PaymentStatus
	durationHours      float64
	totalPrice         Money
	notes              *string
	cancellationReason *string
	cancelledAt        *time.Time
	checkInTime        *time.Time
	checkOutTime       *time.Time
	createdAt          time.Time
	updatedAt          time.Time
}

type ReconstructParams struct {
	ID                 uuid.UUID
	UserID             uuid.UUID
	SpaceID            uuid.UUID
	Date               Date
	Slot               TimeSlot
	Status             Status
	PaymentStatus      PaymentStatus
	DurationHours      float64
	TotalPrice         Money
	Notes              *string
	CancellationReason *string
	CancelledAt        *time.Time
	CheckInTime        *time.Time
	CheckOutTime       *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func Reconstruct(p ReconstructParams) *Booking {
	return &Booking{
		id:                 p.ID,
		userID:             p.UserID,
		spaceID:            p.SpaceID,
		date:               p.Date,
		slot:               p.Slot,
		status:             p.Status,
		paymentStatus:      p.PaymentStatus,
		durationHours:      p.DurationHours,
		totalPrice:         p.TotalPrice,
		notes:              p.Notes,
		cancellationReason: p.CancellationReason,
		cancelledAt:        p.CancelledAt,
		checkInTime:        p.CheckInTime,
		checkOutTime:       p.CheckOutTime,
		createdAt:          p.CreatedAt,
		updatedAt:          p.UpdatedAt,
	}
}

// TransitionTo moves the booking along the status table, stamping the
// timestamps that belong to the target status.
func (b *Booking) TransitionTo(to Status, at time.Time, reason *string) error {
	if !b.status.CanTransitionTo(to) {
		return NewInvalidTransitionError(b.status, to)
	}

	switch to {
	case StatusCheckedIn:
		b.checkInTime = &at
	case StatusCompleted:
		b.checkOutTime = &at
		b.paymentStatus = PaymentPaid
	case StatusCancelled:
		b.cancelledAt = &at
		b.cancellationReason = cancellationReasonOrDefault(reason)
	}
	b.status = to
	b.updatedAt = at
	return nil
}

func (b *Booking) CheckIn(at time.Time) error {
	if b.status != StatusConfirmed {
		return NewInvalidTransitionError(b.status, StatusCheckedIn)
	}
	return b.TransitionTo(StatusCheckedIn, at, nil)
}

func (b *Booking) CheckOut(at time.Time) error {
	if b.status != StatusCheckedIn {
		return NewInvalidTransitionError(b.status, StatusCompleted)
	}
	return b.TransitionTo(StatusCompleted, at, nil)
}

type Update struct {
	Status             *Status
	Notes              *string
	CheckInTime        *time.Time
	CheckOutTime       *time.Time
	CancellationReason *string
}

// ApplyUpdate applies a partial update. An explicit status wins; otherwise the
// check-in and check-out timestamps drive the implicit transitions.
func (b *Booking) ApplyUpdate(u Update, now time.Time) error {
	if b.status.IsTerminal() {
		return NewInvalidTransitionError(b.status, patch.Coalesce(u.Status, ""))
	}

	notes, err := NormalizeNotes(u.Notes)
	if err != nil {
		return err
	}

	if u.Status != nil {
		at := now
		switch *u.Status {
		case StatusCheckedIn:
			at = patch.Coalesce(u.CheckInTime, now)
		case StatusCompleted:
			at = patch.Coalesce(u.CheckOutTime, now)
		}
		if err := b.TransitionTo(*u.Status, at, u.CancellationReason); err != nil {
			return err
		}
	} else {
		if u.CheckInTime != nil {
			if err := b.CheckIn(*u.CheckInTime); err != nil {
				return err
			}
		}
		if u.CheckOutTime != nil {
			if err := b.CheckOut(*u.CheckOutTime); err != nil {
				return err
			}
		}
	}

	if u.Notes != nil {
		b.notes = notes
	}
	b.updatedAt = now
	return nil
}

// Cancel cancels a non-terminal booking and applies the refund policy to paid bookings.
// The booking start is interpreted in loc.
func (b *Booking) Cancel(reason *string, now time.Time, loc *time.Location) error {
	if b.status.IsTerminal() {
		return ErrAlreadyTerminal
	}

	if b.paymentStatus == PaymentPaid {
		if b.StartsAt(loc).Sub(now) >= FullRefundWindow {
			b.paymentStatus = PaymentRefunded
		} else {
			b.paymentStatus = PaymentPartiallyRefunded
		}
	}

	b.status = StatusCancelled
	b.cancelledAt = &now
	b.cancellationReason = cancellationReasonOrDefault(reason)
	b.updatedAt = now
	return nil
}

func (b *Booking) StartsAt(loc *time.Location) time.Time {
	return b.date.At(b.slot.start, loc)
}

func (b *Booking) OverlapsWith(date Date, slot TimeSlot) bool {
	return b.status.IsActive() && b.date == date && b.slot.Overlaps(slot)
}

func cancellationReasonOrDefault(reason *string) *string {
	r := DefaultCancellationReason
	if reason != nil && *reason != "" {
		r = *reason
	}
	return &r
}

func (b *Booking) ID() uuid.UUID                { return b.id }
func (b *Booking) UserID() uuid.UUID            { return b.userID }
func (b *Booking) SpaceID() uuid.UUID           { return b.spaceID }
func (b *Booking) Date() Date                   { return b.date }
func (b *Booking) Slot() TimeSlot               { return b.slot }
func (b *Booking) Status() Status               { return b.status }
func (b *Booking) PaymentStatus() PaymentStatus { return b.paymentStatus }
func (b *Booking) DurationHours() float64       { return b.durationHours }
func (b *Booking) TotalPrice() Money            { return b.totalPrice }
func (b *Booking) Notes() *string               { return b.notes }
func (b *Booking) CancellationReason() *string  { return b.cancellationReason }
func (b *Booking) CancelledAt() *time.Time      { return b.cancelledAt }
func (b *Booking) CheckInTime() *time.Time      { return b.checkInTime }
func (b *Booking) CheckOutTime() *time.Time     { return b.checkOutTime }
func (b *Booking) CreatedAt() time.Time         { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time         { return b.updatedAt }
