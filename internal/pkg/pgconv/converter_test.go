//go:build unit

package pgconv_test

import (
	"testing"
	"time"

	"gym-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateRoundTrip(t *testing.T) {
	in := time.Date(2025, 3, 14, 18, 30, 0, 0, time.FixedZone("JST", 9*3600))

	pd := pgconv.DateToPgtype(in)
	require.True(t, pd.Valid)

	out := pgconv.DateFromPgtype(pd)
	assert.Equal(t, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), out)
}

func TestSecondsRoundTrip(t *testing.T) {
	secs := 9*3600 + 30*60 + 15

	pt := pgconv.SecondsToPgtypeTime(secs)
	require.True(t, pt.Valid)
	assert.Equal(t, secs, pgconv.SecondsFromPgtypeTime(pt))
}

func TestFloat64ToNumeric(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{in: 1.5, want: 1.5},
		{in: 0.5, want: 0.5},
		{in: 2.0 / 3.0, want: 0.67},
	}

	for _, tt := range tests {
		got, err := pgconv.Float64FromNumeric(pgconv.Float64ToNumeric(tt.in))
		require.NoError(t, err)
		assert.InDelta(t, tt.want, got, 1e-9)
	}
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, pgconv.IsNoRows(pgx.ErrNoRows))
	assert.False(t, pgconv.IsNoRows(nil))
}
