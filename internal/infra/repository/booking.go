package repository

import (
	"context"

	"gym-booking/internal/domain/booking"
	"gym-booking/internal/infra"
	"gym-booking/internal/infra/repository/converter"
	sqlc "gym-booking/internal/infra/sqlc/generated"
	"gym-booking/internal/pkg/pgconv"
	"gym-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingWriteQueries interface {
	LockSpaceForBooking(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.LockSpaceForBookingRow, error)
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) error
	UpdateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingParams) error
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      sqlc.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db sqlc.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

// LockSpace returns the committed pricing and bookability of the locked row;
// only ID, HourlyRateCents, IsActive and Deleted are populated.
func (r *BookingRepository) LockSpace(ctx context.Context, tx sqlc.DBTX, spaceID uuid.UUID) (*shared.SpaceSnapshot, error) {
	row, err := r.queries.LockSpaceForBooking(ctx, tx, spaceID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("space not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock space", err)
	}
	return &shared.SpaceSnapshot{
		ID:              row.ID,
		HourlyRateCents: row.HourlyRateCents,
		IsActive:        row.IsActive,
		Deleted:         row.DeletedAt.Valid,
	}, nil
}

func (r *BookingRepository) Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error {
	if err := r.queries.CreateBooking(ctx, tx, converter.BookingToCreateParams(b)); err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) Update(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error {
	if err := r.queries.UpdateBooking(ctx, tx, converter.BookingToUpdateParams(b)); err != nil {
		return infra.WrapRepoErr("failed to update booking", err)
	}
	return nil
}
