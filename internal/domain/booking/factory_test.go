//go:build unit

package booking_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"gym-booking/internal/domain/booking"
	"gym-booking/internal/pkg/errs"
	"gym-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.BookingBuilder)
	errIs  error
}

func TestFactory_NewBooking(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithNotes("  bring towels  ")
		actual, err := b.BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Equal(t, booking.StatusPending, actual.Status())
		assert.Equal(t, booking.PaymentUnpaid, actual.PaymentStatus())
		assert.Equal(t, b.UserID, actual.UserID())
		assert.Equal(t, b.SpaceID, actual.SpaceID())
		assert.Equal(t, "2025-06-02", actual.Date().String())
		assert.Equal(t, "14:00:00", actual.Slot().Start().String())
		assert.Equal(t, "15:30:00", actual.Slot().End().String())
		assert.InDelta(t, 1.5, actual.DurationHours(), 1e-9)
		require.NotNil(t, actual.Notes())
		assert.Equal(t, "bring towels", *actual.Notes())
		assert.Equal(t, builder.DefaultNow, actual.CreatedAt())
	})

	t.Run("price derivation", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().WithHourlyRateCents(2000).WithSlot("14:00:00", "15:30:00").BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, int64(3000), actual.TotalPrice().Cents())
		assert.Equal(t, "30.00", actual.TotalPrice().String())
	})

	t.Run("price rounds to the cent", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().WithHourlyRateCents(1999).WithSlot("10:00:00", "10:40:00").BuildDomain()
		require.NoError(t, err)
		// 19.99 * 2/3 = 13.3266...
		assert.Equal(t, int64(1333), actual.TotalPrice().Cents())
	})

	t.Run("date validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "today is accepted",
				mutate: func(b *builder.BookingBuilder) { b.WithDate("2025-06-01").WithSlot("12:00:00", "13:00:00") },
			},
			{
				name:   "yesterday is rejected regardless of times",
				mutate: func(b *builder.BookingBuilder) { b.WithDate("2025-05-31").WithSlot("12:00:00", "13:00:00") },
				errIs:  booking.ErrInvalidDate,
			},
			{
				name:   "malformed date",
				mutate: func(b *builder.BookingBuilder) { b.WithDate("2025-13-01") },
				errIs:  booking.ErrInvalidDate,
			},
			{
				name:   "past date is reported before bad time format",
				mutate: func(b *builder.BookingBuilder) { b.WithDate("2024-01-01").WithSlot("x", "y") },
				errIs:  booking.ErrInvalidDate,
			},
		})
	})

	t.Run("time validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "bad start format",
				mutate: func(b *builder.BookingBuilder) { b.WithSlot("9:00", "10:00:00") },
				errIs:  booking.ErrBadTimeFormat,
			},
			{
				name:   "bad end format",
				mutate: func(b *builder.BookingBuilder) { b.WithSlot("09:00:00", "25:00:00") },
				errIs:  booking.ErrBadTimeFormat,
			},
			{
				name:   "end before start",
				mutate: func(b *builder.BookingBuilder) { b.WithSlot("11:00:00", "10:00:00") },
				errIs:  booking.ErrEndBeforeStart,
			},
			{
				name:   "end equal to start",
				mutate: func(b *builder.BookingBuilder) { b.WithSlot("11:00:00", "11:00:00") },
				errIs:  booking.ErrEndBeforeStart,
			},
		})
	})

	t.Run("business hours", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "ending exactly at closing",
				mutate: func(b *builder.BookingBuilder) { b.WithSlot("21:00:00", "22:00:00") },
			},
			{
				name:   "ending after closing",
				mutate: func(b *builder.BookingBuilder) { b.WithSlot("21:30:00", "22:30:00") },
				errIs:  booking.ErrOutsideBusinessHours,
			},
			{
				name:   "starting at opening",
				mutate: func(b *builder.BookingBuilder) { b.WithSlot("08:00:00", "09:00:00") },
			},
			{
				name:   "starting before opening",
				mutate: func(b *builder.BookingBuilder) { b.WithSlot("07:59:59", "09:00:00") },
				errIs:  booking.ErrOutsideBusinessHours,
			},
			{
				name:   "outside hours is reported before duration",
				mutate: func(b *builder.BookingBuilder) { b.WithSlot("06:00:00", "06:10:00") },
				errIs:  booking.ErrOutsideBusinessHours,
			},
		})
	})

	t.Run("duration bounds", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "exactly 30 minutes",
				mutate: func(b *builder.BookingBuilder) { b.WithSlot("10:00:00", "10:30:00") },
			},
			{
				name:   "29 minutes",
				mutate: func(b *builder.BookingBuilder) { b.WithSlot("10:00:00", "10:29:00") },
				errIs:  booking.ErrDurationOutOfRange,
			},
			{
				name:   "exactly 4 hours",
				mutate: func(b *builder.BookingBuilder) { b.WithSlot("10:00:00", "14:00:00") },
			},
			{
				name:   "4 hours 1 minute",
				mutate: func(b *builder.BookingBuilder) { b.WithSlot("10:00:00", "14:01:00") },
				errIs:  booking.ErrDurationOutOfRange,
			},
		})
	})
}

func TestFactory_Notes(t *testing.T) {
	atLimit := strings.Repeat("a", booking.MaxNotesLength-1) + "é"

	t.Run("multi-byte character at the limit is kept whole", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().WithNotes(atLimit).BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual.Notes())
		assert.Equal(t, atLimit, *actual.Notes())
		assert.True(t, utf8.ValidString(*actual.Notes()))
	})

	t.Run("one character over the limit is rejected", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().WithNotes(atLimit + "b").BuildDomain()
		require.Nil(t, actual)
		require.ErrorIs(t, err, booking.ErrNotesTooLong)
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})

	t.Run("surrounding whitespace does not count", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().WithNotes("  " + atLimit + "\n").BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, atLimit, *actual.Notes())
	})

	t.Run("blank notes are absent", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().WithNotes("   ").BuildDomain()
		require.NoError(t, err)
		assert.Nil(t, actual.Notes())
	})
}

func TestFactory_Reprice(t *testing.T) {
	b := builder.NewBookingBuilder().WithHourlyRateCents(2000).WithSlot("14:00:00", "15:30:00")
	actual, err := b.BuildDomain()
	require.NoError(t, err)

	rate, err := booking.NewMoney(3000)
	require.NoError(t, err)
	require.NoError(t, b.Factory().Reprice(actual, rate))

	assert.Equal(t, int64(4500), actual.TotalPrice().Cents())
	assert.InDelta(t, 1.5, actual.DurationHours(), 1e-9)
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewBookingBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
				assert.True(t, errs.Is(err, errs.ErrValidation))
			}
		})
	}
}
