//go:build unit || e2e

package builder

import (
	"time"

	"gym-booking/internal/domain/booking"
	reqdto "gym-booking/internal/handler/dto/request"
	sqlc "gym-booking/internal/infra/sqlc/generated"
	"gym-booking/internal/pkg/clock"
	"gym-booking/internal/pkg/pgconv"
	"gym-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

// DefaultNow is the fixed clock used by booking fixtures: a Sunday morning in UTC.
var DefaultNow = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

type BookingBuilder struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	UserName        string
	UserEmail       string
	SpaceID         uuid.UUID
	SpaceName       string
	SpaceType       string
	HourlyRateCents int64
	Date            string
	StartTime       string
	EndTime         string
	Notes           *string
	Status          booking.Status
	PaymentStatus   booking.PaymentStatus
	Now             time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:              uuid.New(),
		UserID:          uuid.New(),
		UserName:        "Test Member",
		UserEmail:       "member@example.com",
		SpaceID:         uuid.New(),
		SpaceName:       "Studio A",
		SpaceType:       "class_studio",
		HourlyRateCents: 2000,
		Date:            "2025-06-02",
		StartTime:       "14:00:00",
		EndTime:         "15:30:00",
		Status:          booking.StatusPending,
		PaymentStatus:   booking.PaymentUnpaid,
		Now:             DefaultNow,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) Factory() *booking.Factory {
	return booking.NewFactory(clock.NewMockClock(b.Now), booking.NewHourlyPriceCalculator(), time.UTC)
}

func (b *BookingBuilder) Request() booking.Request {
	return booking.Request{
		UserID:    b.UserID,
		SpaceID:   b.SpaceID,
		Date:      b.Date,
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
		Notes:     b.Notes,
	}
}

func (b *BookingBuilder) HourlyRate() booking.Money {
	rate, _ := booking.NewMoney(b.HourlyRateCents)
	return rate
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	return b.Factory().NewBooking(b.Request(), b.HourlyRate())
}

// BuildReconstructed skips creation rules and yields a booking in b.Status / b.PaymentStatus.
func (b *BookingBuilder) BuildReconstructed() *booking.Booking {
	date, err := booking.ParseDate(b.Date)
	if err != nil {
		panic(err)
	}
	slot, err := booking.ParseSlot(b.StartTime, b.EndTime)
	if err != nil {
		panic(err)
	}
	price := booking.NewHourlyPriceCalculator().CalculatePrice(b.HourlyRate(), slot)
	return booking.Reconstruct(booking.ReconstructParams{
		ID:            b.ID,
		UserID:        b.UserID,
		SpaceID:       b.SpaceID,
		Date:          date,
		Slot:          slot,
		Status:        b.Status,
		PaymentStatus: b.PaymentStatus,
		DurationHours: slot.Hours(),
		TotalPrice:    price,
		Notes:         b.Notes,
		CreatedAt:     b.Now,
		UpdatedAt:     b.Now,
	})
}

// BuildInfra returns the bookings table row matching BuildReconstructed.
func (b *BookingBuilder) BuildInfra() sqlc.Bookings {
	d := b.BuildReconstructed()
	return sqlc.Bookings{
		ID:              d.ID(),
		UserID:          d.UserID(),
		SpaceID:         d.SpaceID(),
		BookingDate:     pgconv.DateToPgtype(d.Date().Time()),
		StartTime:       pgconv.SecondsToPgtypeTime(d.Slot().Start().Seconds()),
		EndTime:         pgconv.SecondsToPgtypeTime(d.Slot().End().Seconds()),
		Status:          d.Status().String(),
		PaymentStatus:   d.PaymentStatus().String(),
		DurationHours:   pgconv.Float64ToNumeric(d.DurationHours()),
		TotalPriceCents: d.TotalPrice().Cents(),
		Notes:           pgconv.StringPtrToPgtype(d.Notes()),
		CreatedAt:       pgconv.TimeToPgtype(d.CreatedAt()),
		UpdatedAt:       pgconv.TimeToPgtype(d.UpdatedAt()),
	}
}

func (b *BookingBuilder) BuildDetailRow() sqlc.GetBookingDetailByIDRow {
	row := b.BuildInfra()
	return sqlc.GetBookingDetailByIDRow{
		ID:                 row.ID,
		UserID:             row.UserID,
		UserName:           b.UserName,
		UserEmail:          b.UserEmail,
		SpaceID:            row.SpaceID,
		SpaceName:          b.SpaceName,
		SpaceType:          b.SpaceType,
		BookingDate:        row.BookingDate,
		StartTime:          row.StartTime,
		EndTime:            row.EndTime,
		Status:             row.Status,
		PaymentStatus:      row.PaymentStatus,
		DurationHours:      row.DurationHours,
		TotalPriceCents:    row.TotalPriceCents,
		Notes:              row.Notes,
		CancellationReason: row.CancellationReason,
		CancelledAt:        row.CancelledAt,
		CheckInTime:        row.CheckInTime,
		CheckOutTime:       row.CheckOutTime,
		CreatedAt:          row.CreatedAt,
		UpdatedAt:          row.UpdatedAt,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	d := b.BuildReconstructed()
	return &queries.BookingView{
		ID:              d.ID(),
		UserID:          d.UserID(),
		UserName:        b.UserName,
		UserEmail:       b.UserEmail,
		SpaceID:         d.SpaceID(),
		SpaceName:       b.SpaceName,
		SpaceType:       b.SpaceType,
		BookingDate:     d.Date().String(),
		StartTime:       d.Slot().Start().String(),
		EndTime:         d.Slot().End().String(),
		Status:          d.Status().String(),
		PaymentStatus:   d.PaymentStatus().String(),
		DurationHours:   d.DurationHours(),
		TotalPriceCents: d.TotalPrice().Cents(),
		Notes:           d.Notes(),
		CreatedAt:       d.CreatedAt(),
		UpdatedAt:       d.UpdatedAt(),
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		UserID:      b.UserID.String(),
		SpaceID:     b.SpaceID.String(),
		BookingDate: b.Date,
		StartTime:   b.StartTime,
		EndTime:     b.EndTime,
		Notes:       b.Notes,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithSlot(start, end string) *BookingBuilder {
	b.StartTime = start
	b.EndTime = end
	return b
}

func (b *BookingBuilder) WithDate(date string) *BookingBuilder {
	b.Date = date
	return b
}

func (b *BookingBuilder) WithStatus(status booking.Status) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) WithPaymentStatus(status booking.PaymentStatus) *BookingBuilder {
	b.PaymentStatus = status
	return b
}

func (b *BookingBuilder) WithHourlyRateCents(cents int64) *BookingBuilder {
	b.HourlyRateCents = cents
	return b
}

func (b *BookingBuilder) WithNotes(notes string) *BookingBuilder {
	b.Notes = &notes
	return b
}

func (b *BookingBuilder) WithNow(now time.Time) *BookingBuilder {
	b.Now = now
	return b
}

func (b *BookingBuilder) WithUserID(id uuid.UUID) *BookingBuilder {
	b.UserID = id
	return b
}

func (b *BookingBuilder) WithSpaceID(id uuid.UUID) *BookingBuilder {
	b.SpaceID = id
	return b
}
