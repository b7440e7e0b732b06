package commands

import (
	"context"
	"log/slog"
	"time"

	"gym-booking/internal/domain/booking"
	"gym-booking/internal/domain/space"
	"gym-booking/internal/infra"
	"gym-booking/internal/pkg/clock"
	"gym-booking/internal/pkg/errs"
	"gym-booking/internal/pkg/metrics"
	"gym-booking/internal/pkg/patch"
	"gym-booking/internal/usecase/queries"
	"gym-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// errInsertRaced marks an insert rejected by the overlap exclusion constraint.
var errInsertRaced = errs.New("booking insert lost a concurrent overlap race")

type CreateBookingCommand struct {
	UserID      uuid.UUID
	SpaceID     uuid.UUID
	BookingDate string
	StartTime   string
	EndTime     string
	Notes       *string
}

// UpdateBookingCommand is a partial update; nil fields are left untouched.
type UpdateBookingCommand struct {
	Status             *string
	Notes              *string
	CheckInTime        *time.Time
	CheckOutTime       *time.Time
	CancellationReason *string
}

type CancelBookingResult struct {
	ID                 uuid.UUID `json:"id"`
	Status             string    `json:"status"`
	PaymentStatus      string    `json:"payment_status"`
	CancellationReason *string   `json:"cancellation_reason"`
}

type BookingCommands interface {
	Create(ctx context.Context, cmd CreateBookingCommand) (*queries.BookingView, error)
	Update(ctx context.Context, id uuid.UUID, cmd UpdateBookingCommand) (*queries.BookingView, error)
	Cancel(ctx context.Context, id uuid.UUID, reason *string) (*CancelBookingResult, error)
}

type bookingCommandsImpl struct {
	uow      shared.UnitOfWork
	catalog  shared.SpaceCatalog
	factory  *booking.Factory
	bookings queries.BookingQueries
	clock    clock.Clock
	loc      *time.Location
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	catalog shared.SpaceCatalog,
	factory *booking.Factory,
	bookings queries.BookingQueries,
	clk clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:      uow,
		catalog:  catalog,
		factory:  factory,
		bookings: bookings,
		clock:    clk,
		loc:      factory.Location,
	}
}

func (uc *bookingCommandsImpl) Create(ctx context.Context, cmd CreateBookingCommand) (*queries.BookingView, error) {
	if cmd.UserID == uuid.Nil || cmd.SpaceID == uuid.Nil ||
		cmd.BookingDate == "" || cmd.StartTime == "" || cmd.EndTime == "" {
		return nil, booking.ErrMissingFields
	}

	if _, err := uc.uow.CommandReads().UserByID(ctx, cmd.UserID); err != nil {
		return nil, err
	}

	snapshot, err := uc.catalog.ActiveSpace(ctx, cmd.SpaceID)
	if err != nil {
		return nil, err
	}
	rate, err := booking.NewMoney(snapshot.HourlyRateCents)
	if err != nil {
		return nil, err
	}

	b, err := uc.factory.NewBooking(booking.Request{
		UserID:    cmd.UserID,
		SpaceID:   cmd.SpaceID,
		Date:      cmd.BookingDate,
		StartTime: cmd.StartTime,
		EndTime:   cmd.EndTime,
		Notes:     cmd.Notes,
	}, rate)
	if err != nil {
		return nil, err
	}

	// the cached snapshot only gates the request; the locked row decides
	var staleSnapshot bool
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		locked, err := tx.Bookings().LockSpace(ctx, tx.DB(), b.SpaceID())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				staleSnapshot = true
				return space.ErrSpaceNotBookable
			}
			return err
		}
		if !locked.IsBookable() {
			staleSnapshot = true
			return space.ErrSpaceNotBookable
		}
		if locked.HourlyRateCents != snapshot.HourlyRateCents {
			staleSnapshot = true
			lockedRate, err := booking.NewMoney(locked.HourlyRateCents)
			if err != nil {
				return err
			}
			if err := uc.factory.Reprice(b, lockedRate); err != nil {
				return err
			}
		}

		conflicts, err := tx.Reads().OverlappingBookings(ctx, b.SpaceID(), b.Date(), b.Slot(), nil)
		if err != nil {
			return err
		}
		if len(conflicts) > 0 {
			return booking.NewConflictError(conflicts)
		}

		if err := tx.Bookings().Create(ctx, tx.DB(), b); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errInsertRaced
			}
			return err
		}
		return uc.enqueue(ctx, tx, EventBookingCreated, b)
	})
	if staleSnapshot {
		if invErr := uc.catalog.Invalidate(ctx, cmd.SpaceID); invErr != nil {
			slog.WarnContext(ctx, "failed to drop stale space snapshot", "space_id", cmd.SpaceID, "error", invErr.Error())
		}
	}
	if errs.Is(err, errInsertRaced) {
		err = uc.racedConflict(ctx, b)
	}
	if err != nil {
		if errs.Is(err, errs.ErrConflict) {
			metrics.IncBookingConflict()
		}
		return nil, err
	}

	metrics.IncBookingCreated(snapshot.Type)
	return uc.bookings.GetByID(ctx, b.ID())
}

// racedConflict reports the booking that won a concurrent insert. The failed
// transaction is already rolled back, so the lookup runs on the pool.
func (uc *bookingCommandsImpl) racedConflict(ctx context.Context, b *booking.Booking) error {
	conflicts, err := uc.uow.CommandReads().OverlappingBookings(ctx, b.SpaceID(), b.Date(), b.Slot(), nil)
	if err != nil {
		slog.WarnContext(ctx, "failed to load conflicting booking", "space_id", b.SpaceID(), "error", err.Error())
	}
	return booking.NewConflictError(conflicts)
}

func (uc *bookingCommandsImpl) Update(ctx context.Context, id uuid.UUID, cmd UpdateBookingCommand) (*queries.BookingView, error) {
	update := booking.Update{
		// unknown values fail as illegal transitions
		Status:             patch.Map(cmd.Status, func(s string) booking.Status { return booking.Status(s) }),
		Notes:              cmd.Notes,
		CheckInTime:        cmd.CheckInTime,
		CheckOutTime:       cmd.CheckOutTime,
		CancellationReason: cmd.CancellationReason,
	}

	var from, to booking.Status
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Reads().BookingForUpdate(ctx, id)
		if err != nil {
			return err
		}

		from = b.Status()
		if err := b.ApplyUpdate(update, uc.clock.Now()); err != nil {
			return err
		}
		to = b.Status()

		if err := tx.Bookings().Update(ctx, tx.DB(), b); err != nil {
			return err
		}
		return uc.enqueue(ctx, tx, EventBookingUpdated, b)
	})
	if err != nil {
		return nil, err
	}

	if from != to {
		metrics.IncBookingTransition(to.String())
	}
	return uc.bookings.GetByID(ctx, id)
}

func (uc *bookingCommandsImpl) Cancel(ctx context.Context, id uuid.UUID, reason *string) (*CancelBookingResult, error) {
	var result *CancelBookingResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Reads().BookingForUpdate(ctx, id)
		if err != nil {
			return err
		}

		if err := b.Cancel(reason, uc.clock.Now(), uc.loc); err != nil {
			return err
		}

		if err := tx.Bookings().Update(ctx, tx.DB(), b); err != nil {
			return err
		}
		if err := uc.enqueue(ctx, tx, EventBookingCancelled, b); err != nil {
			return err
		}

		result = &CancelBookingResult{
			ID:                 b.ID(),
			Status:             b.Status().String(),
			PaymentStatus:      b.PaymentStatus().String(),
			CancellationReason: b.CancellationReason(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.IncBookingCancelled(result.PaymentStatus)
	return result, nil
}

func (uc *bookingCommandsImpl) enqueue(ctx context.Context, tx shared.Tx, kind string, b *booking.Booking) error {
	now := uc.clock.Now()
	payload, err := newBookingEvent(b, now).Marshal()
	if err != nil {
		return errs.Wrap(err, "marshal booking event")
	}
	return tx.Notifications().CreateJob(ctx, tx.DB(), kind, kind, payload, now)
}
