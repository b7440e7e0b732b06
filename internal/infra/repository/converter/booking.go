package converter

import (
	"gym-booking/internal/domain/booking"
	sqlc "gym-booking/internal/infra/sqlc/generated"
	"gym-booking/internal/pkg/pgconv"
)

func BookingToCreateParams(b *booking.Booking) sqlc.CreateBookingParams {
	return sqlc.CreateBookingParams{
		ID:              b.ID(),
		UserID:          b.UserID(),
		SpaceID:         b.SpaceID(),
		BookingDate:     pgconv.DateToPgtype(b.Date().Time()),
		StartTime:       pgconv.SecondsToPgtypeTime(b.Slot().Start().Seconds()),
		EndTime:         pgconv.SecondsToPgtypeTime(b.Slot().End().Seconds()),
		Status:          b.Status().String(),
		PaymentStatus:   b.PaymentStatus().String(),
		DurationHours:   pgconv.Float64ToNumeric(b.DurationHours()),
		TotalPriceCents: b.TotalPrice().Cents(),
		Notes:           pgconv.StringPtrToPgtype(b.Notes()),
		CreatedAt:       pgconv.TimeToPgtype(b.CreatedAt()),
		UpdatedAt:       pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

// BookingToUpdateParams carries only the columns a booking may change after creation.
func BookingToUpdateParams(b *booking.Booking) sqlc.UpdateBookingParams {
	return sqlc.UpdateBookingParams{
		ID:                 b.ID(),
		Status:             b.Status().String(),
		PaymentStatus:      b.PaymentStatus().String(),
		Notes:              pgconv.StringPtrToPgtype(b.Notes()),
		CancellationReason: pgconv.StringPtrToPgtype(b.CancellationReason()),
		CancelledAt:        pgconv.TimePtrToPgtype(b.CancelledAt()),
		CheckInTime:        pgconv.TimePtrToPgtype(b.CheckInTime()),
		CheckOutTime:       pgconv.TimePtrToPgtype(b.CheckOutTime()),
		UpdatedAt:          pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}
