package readstore

import (
	"context"

	"gym-booking/internal/domain/booking"
	"gym-booking/internal/infra"
	sqlc "gym-booking/internal/infra/sqlc/generated"
	"gym-booking/internal/pkg/pgconv"
	"gym-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingViewQueries interface {
	GetBookingDetailByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetBookingDetailByIDRow, error)
	GetBookingForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bookings, error)
	ListBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsParams) ([]sqlc.ListBookingsRow, error)
	CountBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.CountBookingsParams) (int64, error)
	ListUpcomingBookingsByUser(ctx context.Context, db sqlc.DBTX, arg sqlc.ListUpcomingBookingsByUserParams) ([]sqlc.ListUpcomingBookingsByUserRow, error)
	FindOverlappingBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.FindOverlappingBookingsParams) ([]sqlc.FindOverlappingBookingsRow, error)
}

type BookingReadStore struct {
	queries BookingViewQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingViewQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingDetailByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	return rowToBookingView(row)
}

// FindForUpdate locks the booking row when r.db is a transaction.
func (r *BookingReadStore) FindForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBookingForUpdate(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load booking", err)
	}

	return BookingToDomain(row)
}

func (r *BookingReadStore) List(ctx context.Context, db sqlc.DBTX, p queries.BookingListParams) ([]*queries.BookingView, int64, error) {
	statuses := p.Statuses
	if statuses == nil {
		// a NULL array would filter out every row
		statuses = []string{}
	}

	countParams := sqlc.CountBookingsParams{
		UserID:    pgconv.UUIDPtrToPgtype(p.UserID),
		SpaceID:   pgconv.UUIDPtrToPgtype(p.SpaceID),
		Statuses:  statuses,
		StartDate: datePtrToPgtype(p.StartDate),
		EndDate:   datePtrToPgtype(p.EndDate),
	}

	total, err := r.queries.CountBookings(ctx, db, countParams)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count bookings", err)
	}

	rows, err := r.queries.ListBookings(ctx, db, sqlc.ListBookingsParams{
		UserID:    countParams.UserID,
		SpaceID:   countParams.SpaceID,
		Statuses:  statuses,
		StartDate: countParams.StartDate,
		EndDate:   countParams.EndDate,
		SortBy:    p.SortBy,
		SortDesc:  p.SortDesc,
		Limit:     p.Limit,
		Offset:    p.Offset,
	})
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list bookings", err)
	}

	result := make([]*queries.BookingView, len(rows))
	for i, row := range rows {
		view, err := rowToBookingView(sqlc.GetBookingDetailByIDRow(row))
		if err != nil {
			return nil, 0, err
		}
		result[i] = view
	}

	return result, total, nil
}

func (r *BookingReadStore) ListUpcoming(ctx context.Context, userID uuid.UUID, from booking.Date) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListUpcomingBookingsByUser(ctx, r.db, sqlc.ListUpcomingBookingsByUserParams{
		UserID:   userID,
		FromDate: pgconv.DateToPgtype(from.Time()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list upcoming bookings", err)
	}

	result := make([]*queries.BookingView, len(rows))
	for i, row := range rows {
		view, err := rowToBookingView(sqlc.GetBookingDetailByIDRow(row))
		if err != nil {
			return nil, err
		}
		result[i] = view
	}

	return result, nil
}

func (r *BookingReadStore) FindConflicts(ctx context.Context, spaceID uuid.UUID, date booking.Date, slot booking.TimeSlot, excludeID *uuid.UUID) ([]booking.Conflict, error) {
	rows, err := r.queries.FindOverlappingBookings(ctx, r.db, sqlc.FindOverlappingBookingsParams{
		SpaceID:     spaceID,
		BookingDate: pgconv.DateToPgtype(date.Time()),
		StartTime:   pgconv.SecondsToPgtypeTime(slot.Start().Seconds()),
		EndTime:     pgconv.SecondsToPgtypeTime(slot.End().Seconds()),
		ExcludeID:   pgconv.UUIDPtrToPgtype(excludeID),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find overlapping bookings", err)
	}

	conflicts := make([]booking.Conflict, len(rows))
	for i, row := range rows {
		conflicts[i] = booking.Conflict{
			ID:        row.ID,
			StartTime: booking.TimeOfDay(pgconv.SecondsFromPgtypeTime(row.StartTime)),
			EndTime:   booking.TimeOfDay(pgconv.SecondsFromPgtypeTime(row.EndTime)),
			Status:    booking.Status(row.Status),
		}
	}
	return conflicts, nil
}

func rowToBookingView(row sqlc.GetBookingDetailByIDRow) (*queries.BookingView, error) {
	duration, err := pgconv.Float64FromNumeric(row.DurationHours)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid duration_hours", err)
	}

	return &queries.BookingView{
		ID:                 row.ID,
		UserID:             row.UserID,
		UserName:           row.UserName,
		UserEmail:          row.UserEmail,
		SpaceID:            row.SpaceID,
		SpaceName:          row.SpaceName,
		SpaceType:          row.SpaceType,
		BookingDate:        booking.DateOf(pgconv.DateFromPgtype(row.BookingDate)).String(),
		StartTime:          booking.TimeOfDay(pgconv.SecondsFromPgtypeTime(row.StartTime)).String(),
		EndTime:            booking.TimeOfDay(pgconv.SecondsFromPgtypeTime(row.EndTime)).String(),
		Status:             row.Status,
		PaymentStatus:      row.PaymentStatus,
		DurationHours:      duration,
		TotalPriceCents:    row.TotalPriceCents,
		Notes:              pgconv.StringPtrFromPgtype(row.Notes),
		CancellationReason: pgconv.StringPtrFromPgtype(row.CancellationReason),
		CancelledAt:        pgconv.TimePtrFromPgtype(row.CancelledAt),
		CheckInTime:        pgconv.TimePtrFromPgtype(row.CheckInTime),
		CheckOutTime:       pgconv.TimePtrFromPgtype(row.CheckOutTime),
		CreatedAt:          pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:          pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

// BookingToDomain rebuilds the aggregate from its table row.
func BookingToDomain(row sqlc.Bookings) (*booking.Booking, error) {
	duration, err := pgconv.Float64FromNumeric(row.DurationHours)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid duration_hours", err)
	}
	slot, err := booking.NewTimeSlot(
		booking.TimeOfDay(pgconv.SecondsFromPgtypeTime(row.StartTime)),
		booking.TimeOfDay(pgconv.SecondsFromPgtypeTime(row.EndTime)),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid stored time slot", err)
	}
	price, err := booking.NewMoney(row.TotalPriceCents)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid stored price", err)
	}

	return booking.Reconstruct(booking.ReconstructParams{
		ID:                 row.ID,
		UserID:             row.UserID,
		SpaceID:            row.SpaceID,
		Date:               booking.DateOf(pgconv.DateFromPgtype(row.BookingDate)),
		Slot:               slot,
		Status:             booking.Status(row.Status),
		PaymentStatus:      booking.PaymentStatus(row.PaymentStatus),
		DurationHours:      duration,
		TotalPrice:         price,
		Notes:              pgconv.StringPtrFromPgtype(row.Notes),
		CancellationReason: pgconv.StringPtrFromPgtype(row.CancellationReason),
		CancelledAt:        pgconv.TimePtrFromPgtype(row.CancelledAt),
		CheckInTime:        pgconv.TimePtrFromPgtype(row.CheckInTime),
		CheckOutTime:       pgconv.TimePtrFromPgtype(row.CheckOutTime),
		CreatedAt:          pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:          pgconv.TimeFromPgtype(row.UpdatedAt),
	}), nil
}

func datePtrToPgtype(d *booking.Date) pgtype.Date {
	if d == nil {
		return pgtype.Date{Valid: false}
	}
	return pgconv.DateToPgtype(d.Time())
}
