//go:build unit

package response_test

import (
	"testing"

	"gym-booking/internal/handler/dto/response"
	"gym-booking/internal/usecase/commands"
	"gym-booking/internal/usecase/queries"
	"gym-booking/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/jinzhu/copier"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromBookingView(t *testing.T) {
	view := builder.NewBookingBuilder().BuildView()

	actual, err := response.FromBookingView(view)
	require.NoError(t, err)

	assert.Equal(t, view.ID, actual.ID)
	assert.Equal(t, view.StartTime, actual.StartTime)
	assert.Equal(t, view.TotalPriceCents, actual.TotalPriceCents)
	if diff := cmp.Diff(response.SpaceSummaryResponse{ID: view.SpaceID, Name: view.SpaceName, Type: view.SpaceType}, actual.Space); diff != "" {
		t.Errorf("space summary mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, view.UserEmail, actual.User.Email)
}

func TestFromBookingPage(t *testing.T) {
	page := &queries.BookingPage{
		Data:       []*queries.BookingView{builder.NewBookingBuilder().BuildView()},
		Pagination: queries.NewPagination(1, 1, 10),
	}

	actual, err := response.FromBookingPage(page)
	require.NoError(t, err)
	require.Len(t, actual.Data, 1)
	assert.Equal(t, page.Pagination, actual.Pagination)

	_, err = response.FromBookingPage(&queries.BookingPage{Data: []*queries.BookingView{nil}})
	assert.ErrorIs(t, err, copier.ErrInvalidCopyFrom)
}

func TestFromAvailabilityView(t *testing.T) {
	actual, err := response.FromAvailabilityView(&queries.AvailabilityView{Available: true})
	require.NoError(t, err)
	assert.True(t, actual.Available)
	assert.NotNil(t, actual.ConflictingBookings)
	assert.Empty(t, actual.ConflictingBookings)
}

func TestFromSpaceView(t *testing.T) {
	actual, err := response.FromSpaceView(&queries.SpaceView{Name: "Boxing Ring", HourlyRateCents: 3500})
	require.NoError(t, err)
	assert.Equal(t, "35.00", actual.HourlyRate)
	assert.Equal(t, []string{}, actual.Amenities)
}

func TestFromCancelResult(t *testing.T) {
	reason := "injured"
	result := &commands.CancelBookingResult{Status: "cancelled", PaymentStatus: "refunded", CancellationReason: &reason}

	actual, err := response.FromCancelResult(result)
	require.NoError(t, err)
	assert.Equal(t, "refunded", actual.PaymentStatus)
	assert.Equal(t, &reason, actual.CancellationReason)

	_, err = response.FromCancelResult(nil)
	assert.ErrorIs(t, err, copier.ErrInvalidCopyFrom)
}
