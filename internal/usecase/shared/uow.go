package shared

import (
	"context"
	"time"

	"gym-booking/internal/domain/booking"
	sqlc "gym-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction so paged reads and their totals agree
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
	// BookingForUpdate loads the aggregate and, inside a transaction, locks its row.
	BookingForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	OverlappingBookings(ctx context.Context, spaceID uuid.UUID, date booking.Date, slot booking.TimeSlot, excludeID *uuid.UUID) ([]booking.Conflict, error)
}

type BookingRepository interface {
	// LockSpace serializes concurrent bookings of one space until the transaction ends
	// and returns the row's committed rate and bookability.
	LockSpace(ctx context.Context, tx sqlc.DBTX, spaceID uuid.UUID) (*SpaceSnapshot, error)
	Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
	Update(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error
	// ClaimDue locks up to limit pending jobs due at now; other relays skip them.
	ClaimDue(ctx context.Context, tx sqlc.DBTX, now time.Time, limit int32) ([]NotificationJob, error)
	MarkSent(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
	MarkFailed(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, lastError string, maxAttempts int32, retryAt time.Time) error
}

// SpaceCatalog answers whether a space can take new bookings.
type SpaceCatalog interface {
	ActiveSpace(ctx context.Context, id uuid.UUID) (*SpaceSnapshot, error)
	// Invalidate drops a snapshot found to disagree with the database.
	Invalidate(ctx context.Context, id uuid.UUID) error
}
