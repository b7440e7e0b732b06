//go:build e2e

package booking_test

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"gym-booking/internal/domain/user"
	"gym-booking/internal/handler/dto/response"
	"gym-booking/internal/usecase/commands"
	"gym-booking/internal/usecase/queries"
	"gym-booking/tests/common/authtest"
	"gym-booking/tests/common/builder"
	"gym-booking/tests/common/dbtest"
	"gym-booking/tests/common/httptest"
	"gym-booking/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	bookingsURL     = "/api/bookings"
	bookingURL      = "/api/bookings/%s"
	availabilityURL = "/api/bookings/availability?space_id=%s&booking_date=%s&start_time=%s&end_time=%s"
	upcomingURL     = "/api/bookings/upcoming"
	spacesURL       = "/api/spaces"
)

type BookingSuite struct {
	e2e.SharedSuite
}

func (s *BookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

// a week out keeps every booking in the future regardless of when the suite runs
func futureDate() string {
	return time.Now().UTC().AddDate(0, 0, 7).Format("2006-01-02")
}

func (s *BookingSuite) memberToken(t *testing.T, email string) (uuid.UUID, string) {
	t.Helper()
	userID := dbtest.CreateTestUser(t, s.DB, "Member", email, string(user.RoleMember))
	token := authtest.NewJWTHelper(s.Config.JWT).GenerateToken(t, userID, user.RoleMember)
	return userID, token
}

func (s *BookingSuite) createBooking(t *testing.T, token string, b *builder.BookingBuilder) *response.BookingResponse {
	t.Helper()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, b.BuildCreateRequestDTO(), token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created response.BookingResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
	return &created
}

var ignoreBookingMeta = cmpopts.IgnoreFields(response.BookingResponse{},
	"ID", "CreatedAt", "UpdatedAt", "CancelledAt", "CheckInTime", "CheckOutTime")

// =============================================================================
// TestCreateBooking
// =============================================================================

func (s *BookingSuite) TestCreateBooking() {
	s.Run("Normal case: booking is created, priced and readable", func() {
		t := s.T()
		userID, token := s.memberToken(t, "create@example.com")
		spaceID := dbtest.SpaceIDByName(t, s.DB, "Studio A")
		date := futureDate()

		b := builder.NewBookingBuilder().
			WithUserID(userID).
			WithSpaceID(spaceID).
			WithDate(date).
			WithSlot("14:00:00", "15:30:00").
			WithNotes("bring mats")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, b.BuildCreateRequestDTO(), token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		httptest.AssertLocation(t, w, bookingsURL, created.ID)

		notes := "bring mats"
		expected := &response.BookingResponse{
			UserID:          userID,
			SpaceID:         spaceID,
			BookingDate:     date,
			StartTime:       "14:00:00",
			EndTime:         "15:30:00",
			Status:          "pending",
			PaymentStatus:   "unpaid",
			DurationHours:   1.5,
			TotalPrice:      "30.00",
			TotalPriceCents: 3000,
			Notes:           &notes,
			Space:           response.SpaceSummaryResponse{ID: spaceID, Name: "Studio A", Type: "class_studio"},
			User:            response.UserSummaryResponse{ID: userID, Name: "Member", Email: "create@example.com"},
		}
		if diff := cmp.Diff(expected, &created, ignoreBookingMeta); diff != "" {
			t.Errorf("created booking mismatch (-want +got):\n%s", diff)
		}

		var fetched response.BookingResponse
		httptest.GetJSON(t, s.Router, fmt.Sprintf(bookingURL, created.ID), "", &fetched)
		if diff := cmp.Diff(expected, &fetched, ignoreBookingMeta); diff != "" {
			t.Errorf("fetched booking mismatch (-want +got):\n%s", diff)
		}

		require.Equal(t, 1, dbtest.CountPendingJobs(t, s.DB, commands.EventBookingCreated))
	})

	s.Run("Normal case: user_id falls back to the token subject", func() {
		t := s.T()
		userID, token := s.memberToken(t, "fallback@example.com")
		spaceID := dbtest.SpaceIDByName(t, s.DB, "Boxing Ring")

		req := builder.NewBookingBuilder().WithSpaceID(spaceID).WithDate(futureDate()).BuildCreateRequestDTO()
		req.UserID = ""

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, req, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		require.Equal(t, userID, created.UserID)
	})

	s.Run("Error case: overlapping slot is a conflict", func() {
		t := s.T()
		userID, token := s.memberToken(t, "conflict@example.com")
		spaceID := dbtest.SpaceIDByName(t, s.DB, "Studio A")
		date := futureDate()

		first := s.createBooking(t, token, builder.NewBookingBuilder().
			WithUserID(userID).WithSpaceID(spaceID).WithDate(date).WithSlot("10:00:00", "11:00:00"))

		overlap := builder.NewBookingBuilder().
			WithUserID(userID).WithSpaceID(spaceID).WithDate(date).WithSlot("10:30:00", "11:30:00").
			BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, overlap, token)
		httptest.AssertErrorCode(t, w, http.StatusConflict, "BOOKING_CONFLICT")

		var body struct {
			Detail struct {
				ConflictingBookings []queries.ConflictView `json:"conflicting_bookings"`
			} `json:"detail"`
		}
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &body))
		expected := []queries.ConflictView{{ID: first.ID, StartTime: "10:00:00", EndTime: "11:00:00", Status: "pending"}}
		if diff := cmp.Diff(expected, body.Detail.ConflictingBookings); diff != "" {
			t.Errorf("conflict detail mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Normal case: back-to-back slots do not conflict", func() {
		t := s.T()
		userID, token := s.memberToken(t, "adjacent@example.com")
		spaceID := dbtest.SpaceIDByName(t, s.DB, "Studio A")
		date := futureDate()

		s.createBooking(t, token, builder.NewBookingBuilder().
			WithUserID(userID).WithSpaceID(spaceID).WithDate(date).WithSlot("10:00:00", "11:00:00"))
		s.createBooking(t, token, builder.NewBookingBuilder().
			WithUserID(userID).WithSpaceID(spaceID).WithDate(date).WithSlot("11:00:00", "12:00:00"))
	})

	s.Run("Error case: validation failures", func() {
		t := s.T()
		userID, token := s.memberToken(t, "invalid@example.com")
		spaceID := dbtest.SpaceIDByName(t, s.DB, "Studio A")

		cases := []struct {
			name   string
			mutate func(*builder.BookingBuilder)
		}{
			{"past date", func(b *builder.BookingBuilder) { b.WithDate("2020-01-01") }},
			{"before opening", func(b *builder.BookingBuilder) { b.WithSlot("06:00:00", "07:00:00") }},
			{"too long", func(b *builder.BookingBuilder) { b.WithSlot("09:00:00", "14:00:00") }},
			{"end before start", func(b *builder.BookingBuilder) { b.WithSlot("12:00:00", "11:00:00") }},
			{"bad time", func(b *builder.BookingBuilder) { b.WithSlot("noon", "13:00:00") }},
		}
		for _, tc := range cases {
			b := builder.NewBookingBuilder().WithUserID(userID).WithSpaceID(spaceID).WithDate(futureDate())
			tc.mutate(b)
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, b.BuildCreateRequestDTO(), token)
			require.Equal(t, http.StatusBadRequest, w.Code, tc.name)
			httptest.AssertErrorCode(t, w, http.StatusBadRequest, "VALIDATION_ERROR")
		}
	})

	s.Run("Error case: inactive space is not bookable", func() {
		t := s.T()
		userID, token := s.memberToken(t, "inactive@example.com")
		spaceID := dbtest.SpaceIDByName(t, s.DB, "Old Sauna")

		req := builder.NewBookingBuilder().WithUserID(userID).WithSpaceID(spaceID).WithDate(futureDate()).BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, req, token)
		httptest.AssertErrorCode(t, w, http.StatusNotFound, "NOT_FOUND")
	})

	s.Run("Error case: space deactivated while its snapshot is cached", func() {
		t := s.T()
		userID, token := s.memberToken(t, "stale@example.com")
		spaceID := dbtest.SpaceIDByName(t, s.DB, "Studio A")
		date := futureDate()

		// an availability check warms the space cache
		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(availabilityURL, spaceID, date, "10:00:00", "11:00:00"), nil, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		require.True(t, s.Redis.Exists("space:"+spaceID.String()))

		_, err := s.DB.Exec(context.Background(), `UPDATE spaces SET is_active = FALSE WHERE id = $1`, spaceID)
		require.NoError(t, err)

		req := builder.NewBookingBuilder().WithUserID(userID).WithSpaceID(spaceID).WithDate(date).BuildCreateRequestDTO()
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, req, token)
		httptest.AssertErrorCode(t, w, http.StatusNotFound, "NOT_FOUND")
		require.False(t, s.Redis.Exists("space:"+spaceID.String()))
		require.Equal(t, 0, dbtest.CountPendingJobs(t, s.DB, commands.EventBookingCreated))
	})

	s.Run("Normal case: rate changed while its snapshot is cached", func() {
		t := s.T()
		userID, token := s.memberToken(t, "reprice@example.com")
		spaceID := dbtest.SpaceIDByName(t, s.DB, "Studio A")
		date := futureDate()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(availabilityURL, spaceID, date, "10:00:00", "11:00:00"), nil, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		_, err := s.DB.Exec(context.Background(), `UPDATE spaces SET hourly_rate_cents = 3000 WHERE id = $1`, spaceID)
		require.NoError(t, err)

		created := s.createBooking(t, token, builder.NewBookingBuilder().
			WithUserID(userID).WithSpaceID(spaceID).WithDate(date).WithSlot("14:00:00", "15:30:00"))
		require.Equal(t, "45.00", created.TotalPrice)
		require.Equal(t, int64(4500), created.TotalPriceCents)
	})

	s.Run("Error case: notes over the limit", func() {
		t := s.T()
		userID, token := s.memberToken(t, "notes@example.com")
		spaceID := dbtest.SpaceIDByName(t, s.DB, "Studio A")

		req := builder.NewBookingBuilder().WithUserID(userID).WithSpaceID(spaceID).WithDate(futureDate()).
			WithNotes(strings.Repeat("é", 1001)).BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, req, token)
		httptest.AssertErrorCode(t, w, http.StatusBadRequest, "VALIDATION_ERROR")
	})

	s.Run("Error case: unknown user", func() {
		t := s.T()
		spaceID := dbtest.SpaceIDByName(t, s.DB, "Studio A")

		req := builder.NewBookingBuilder().WithSpaceID(spaceID).WithDate(futureDate()).BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, req, "")
		httptest.AssertErrorCode(t, w, http.StatusNotFound, "NOT_FOUND")
	})
}

// =============================================================================
// TestAvailability
// =============================================================================

func (s *BookingSuite) TestAvailability() {
	s.Run("Normal case: free slot, then taken, then freed by cancellation", func() {
		t := s.T()
		userID, token := s.memberToken(t, "avail@example.com")
		spaceID := dbtest.SpaceIDByName(t, s.DB, "Boxing Ring")
		date := futureDate()
		url := fmt.Sprintf(availabilityURL, spaceID, date, "09:00:00", "10:00:00")

		var free response.AvailabilityResponse
		httptest.GetJSON(t, s.Router, url, "", &free)
		require.True(t, free.Available)
		require.Empty(t, free.ConflictingBookings)
		require.Equal(t, "Boxing Ring", free.Space.Name)

		created := s.createBooking(t, token, builder.NewBookingBuilder().
			WithUserID(userID).WithSpaceID(spaceID).WithDate(date).WithSlot("09:30:00", "10:30:00"))

		var taken response.AvailabilityResponse
		httptest.GetJSON(t, s.Router, url, "", &taken)
		require.False(t, taken.Available)
		require.Len(t, taken.ConflictingBookings, 1)
		require.Equal(t, "Time slot conflicts with 1 existing booking(s)", taken.Message)

		var excluded response.AvailabilityResponse
		httptest.GetJSON(t, s.Router, url+"&exclude_booking_id="+created.ID.String(), "", &excluded)
		require.True(t, excluded.Available)

		cw := httptest.PerformRequest(t, s.Router, http.MethodDelete, fmt.Sprintf(bookingURL, created.ID), nil, token)
		require.Equal(t, http.StatusOK, cw.Code, cw.Body.String())

		var freed response.AvailabilityResponse
		httptest.GetJSON(t, s.Router, url, "", &freed)
		require.True(t, freed.Available)
	})

	s.Run("Error case: missing parameters", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/bookings/availability", nil, "")
		httptest.AssertErrorCode(t, w, http.StatusBadRequest, "VALIDATION_ERROR")
	})
}

// =============================================================================
// TestBookingLifecycle
// =============================================================================

func (s *BookingSuite) TestBookingLifecycle() {
	s.Run("Normal case: pending to confirmed to checked_in to completed", func() {
		t := s.T()
		userID, token := s.memberToken(t, "lifecycle@example.com")
		spaceID := dbtest.SpaceIDByName(t, s.DB, "Studio A")
		created := s.createBooking(t, token, builder.NewBookingBuilder().
			WithUserID(userID).WithSpaceID(spaceID).WithDate(futureDate()))
		url := fmt.Sprintf(bookingURL, created.ID)

		for _, status := range []string{"confirmed", "checked_in", "completed"} {
			w := httptest.PerformRequest(t, s.Router, http.MethodPut, url, map[string]any{"status": status}, token)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())

			var updated response.BookingResponse
			require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &updated))
			require.Equal(t, status, updated.Status)
		}

		var done response.BookingResponse
		httptest.GetJSON(t, s.Router, url, "", &done)
		require.NotNil(t, done.CheckInTime)
		require.NotNil(t, done.CheckOutTime)
		require.Equal(t, 3, dbtest.CountPendingJobs(t, s.DB, commands.EventBookingUpdated))
	})

	s.Run("Error case: skipping a state is an invalid transition", func() {
		t := s.T()
		userID, token := s.memberToken(t, "skip@example.com")
		spaceID := dbtest.SpaceIDByName(t, s.DB, "Studio A")
		created := s.createBooking(t, token, builder.NewBookingBuilder().
			WithUserID(userID).WithSpaceID(spaceID).WithDate(futureDate()))

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf(bookingURL, created.ID),
			map[string]any{"status": "completed"}, token)
		httptest.AssertErrorCode(t, w, http.StatusBadRequest, "INVALID_TRANSITION")
	})

	s.Run("Normal case: cancel with default reason, then cancel again fails", func() {
		t := s.T()
		userID, token := s.memberToken(t, "cancel@example.com")
		spaceID := dbtest.SpaceIDByName(t, s.DB, "Studio A")
		created := s.createBooking(t, token, builder.NewBookingBuilder().
			WithUserID(userID).WithSpaceID(spaceID).WithDate(futureDate()))
		url := fmt.Sprintf(bookingURL, created.ID)

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, url, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var cancelled response.CancelBookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &cancelled))
		reason := "User cancelled"
		expected := &response.CancelBookingResponse{
			ID:                 created.ID,
			Status:             "cancelled",
			PaymentStatus:      "unpaid",
			CancellationReason: &reason,
		}
		if diff := cmp.Diff(expected, &cancelled); diff != "" {
			t.Errorf("cancel response mismatch (-want +got):\n%s", diff)
		}
		require.Equal(t, 1, dbtest.CountPendingJobs(t, s.DB, commands.EventBookingCancelled))

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, url, map[string]any{"cancellation_reason": "again"}, token)
		httptest.AssertErrorCode(t, w, http.StatusBadRequest, "VALIDATION_ERROR")
	})

	s.Run("Error case: unknown booking", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(bookingURL, uuid.New()), nil, "")
		httptest.AssertErrorCode(t, w, http.StatusNotFound, "NOT_FOUND")
	})
}

// =============================================================================
// TestListBookings
// =============================================================================

func (s *BookingSuite) TestListBookings() {
	s.Run("Normal case: filter by user and paginate", func() {
		t := s.T()
		userID, token := s.memberToken(t, "list@example.com")
		otherID, otherToken := s.memberToken(t, "other@example.com")
		spaceID := dbtest.SpaceIDByName(t, s.DB, "Studio A")
		date := futureDate()

		for _, slot := range [][2]string{{"08:00:00", "09:00:00"}, {"09:00:00", "10:00:00"}, {"10:00:00", "11:00:00"}} {
			s.createBooking(t, token, builder.NewBookingBuilder().
				WithUserID(userID).WithSpaceID(spaceID).WithDate(date).WithSlot(slot[0], slot[1]))
		}
		s.createBooking(t, otherToken, builder.NewBookingBuilder().
			WithUserID(otherID).WithSpaceID(spaceID).WithDate(date).WithSlot("12:00:00", "13:00:00"))

		url := fmt.Sprintf("%s?user_id=%s&limit=2&page=1&sort_by=start_time&sort_order=asc", bookingsURL, userID)
		var page response.BookingListResponse
		httptest.GetJSON(t, s.Router, url, "", &page)

		expected := queries.Pagination{Total: 3, Page: 1, Limit: 2, TotalPages: 2, HasNextPage: true, HasPrevPage: false}
		if diff := cmp.Diff(expected, page.Pagination); diff != "" {
			t.Errorf("pagination mismatch (-want +got):\n%s", diff)
		}
		require.Len(t, page.Data, 2)
		require.Equal(t, "08:00:00", page.Data[0].StartTime)
		require.Equal(t, "09:00:00", page.Data[1].StartTime)
	})

	s.Run("Error case: page beyond the offset range", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"?page=300000000&limit=10", nil, "")
		httptest.AssertErrorCode(t, w, http.StatusBadRequest, "VALIDATION_ERROR")
	})

	s.Run("Error case: unknown status filter", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"?status=bogus", nil, "")
		httptest.AssertErrorCode(t, w, http.StatusBadRequest, "VALIDATION_ERROR")
	})

	s.Run("Normal case: upcoming bookings for the token user", func() {
		t := s.T()
		userID, token := s.memberToken(t, "upcoming@example.com")
		spaceID := dbtest.SpaceIDByName(t, s.DB, "Boxing Ring")
		kept := s.createBooking(t, token, builder.NewBookingBuilder().
			WithUserID(userID).WithSpaceID(spaceID).WithDate(futureDate()).WithSlot("16:00:00", "17:00:00"))
		dropped := s.createBooking(t, token, builder.NewBookingBuilder().
			WithUserID(userID).WithSpaceID(spaceID).WithDate(futureDate()).WithSlot("18:00:00", "19:00:00"))
		cw := httptest.PerformRequest(t, s.Router, http.MethodDelete, fmt.Sprintf(bookingURL, dropped.ID), nil, token)
		require.Equal(t, http.StatusOK, cw.Code)

		var upcoming []*response.BookingResponse
		httptest.GetJSON(t, s.Router, upcomingURL, token, &upcoming)
		require.Len(t, upcoming, 1)
		require.Equal(t, kept.ID, upcoming[0].ID)
	})
}

// =============================================================================
// TestSpaces
// =============================================================================

func (s *BookingSuite) TestSpaces() {
	s.Run("Normal case: active filter", func() {
		t := s.T()
		var spaces []*response.SpaceResponse
		httptest.GetJSON(t, s.Router, spacesURL+"?active=true", "", &spaces)

		names := make([]string, 0, len(spaces))
		for _, sp := range spaces {
			require.True(t, sp.IsActive)
			names = append(names, sp.Name)
		}
		if diff := cmp.Diff([]string{"Boxing Ring", "Studio A"}, names, cmpopts.SortSlices(func(a, b string) bool { return a < b })); diff != "" {
			t.Errorf("space names mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Normal case: space detail", func() {
		t := s.T()
		spaceID := dbtest.SpaceIDByName(t, s.DB, "Studio A")
		var sp response.SpaceResponse
		httptest.GetJSON(t, s.Router, spacesURL+"/"+spaceID.String(), "", &sp)
		description := "Sprung floor studio"
		expected := &response.SpaceResponse{
			ID:              spaceID,
			Name:            "Studio A",
			Type:            "class_studio",
			Description:     &description,
			Capacity:        20,
			HourlyRate:      "20.00",
			HourlyRateCents: 2000,
			IsActive:        true,
			Amenities:       []string{"mirrors", "sound_system"},
		}
		if diff := cmp.Diff(expected, &sp, cmpopts.IgnoreFields(response.SpaceResponse{}, "CreatedAt", "UpdatedAt")); diff != "" {
			t.Errorf("space mismatch (-want +got):\n%s", diff)
		}
	})
}
