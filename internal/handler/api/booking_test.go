//go:build unit

package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"gym-booking/internal/domain/booking"
	"gym-booking/internal/domain/space"
	"gym-booking/internal/domain/user"
	"gym-booking/internal/handler/api"
	resdto "gym-booking/internal/handler/dto/response"
	"gym-booking/internal/usecase/commands"
	"gym-booking/internal/usecase/queries"
	"gym-booking/tests/common/builder"
	"gym-booking/tests/common/httptest"
	"gym-booking/tests/common/testutil"
	commandsmock "gym-booking/tests/mock/commands"
	queriesmock "gym-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
	authUserID   uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)
	s.authUserID = uuid.New()

	// Mock optional authentication: a bearer token identifies s.authUserID
	optionalAuth := func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", s.authUserID)
			c.Set("user_role", user.RoleMember)
		}
		c.Next()
	}

	bookings := s.router.Group("/api/bookings", optionalAuth)
	bookings.POST("", s.handler.Create)
	bookings.GET("", s.handler.List)
	bookings.GET("/availability", s.handler.CheckAvailability)
	bookings.GET("/upcoming", s.handler.ListUpcoming)
	bookings.GET("/:id", s.handler.Get)
	bookings.PUT("/:id", s.handler.Update)
	bookings.DELETE("/:id", s.handler.Cancel)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

type errorCase struct {
	name       string
	err        error
	expectCode int
	errorCode  string
}

var ledgerErrorCases = []errorCase{
	{name: "validation", err: booking.ErrMissingFields, expectCode: http.StatusBadRequest, errorCode: "VALIDATION_ERROR"},
	{name: "past date", err: booking.ErrInvalidDate, expectCode: http.StatusBadRequest, errorCode: "VALIDATION_ERROR"},
	{name: "unknown user", err: user.ErrUserNotFound, expectCode: http.StatusNotFound, errorCode: "NOT_FOUND"},
	{name: "inactive space", err: space.ErrSpaceNotBookable, expectCode: http.StatusNotFound, errorCode: "NOT_FOUND"},
	{name: "unclassified", err: errors.New("connection refused"), expectCode: http.StatusInternalServerError, errorCode: "INTERNAL_ERROR"},
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/api/bookings"
	b := builder.NewBookingBuilder()
	reqBody := b.BuildCreateRequestDTO()
	view := b.BuildView()

	s.Run("success: returns 201 Created with the joined booking", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), commands.CreateBookingCommand{
			UserID:      b.UserID,
			SpaceID:     b.SpaceID,
			BookingDate: b.Date,
			StartTime:   b.StartTime,
			EndTime:     b.EndTime,
		}).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(view.ID, body.ID)
		s.Equal("30.00", body.TotalPrice)
		s.Equal(int64(3000), body.TotalPriceCents)
		s.Equal(1.5, body.DurationHours)
		s.Equal("pending", body.Status)
		s.Equal("unpaid", body.PaymentStatus)
		s.Equal("Studio A", body.Space.Name)
		s.Equal("member@example.com", body.User.Email)
		httptest.AssertLocation(s.T(), rec, "/api/bookings", view.ID)
	})

	s.Run("success: user_id defaults to the authenticated user", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, cmd commands.CreateBookingCommand) (*queries.BookingView, error) {
				s.Equal(s.authUserID, cmd.UserID)
				return view, nil
			}).Times(1)
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Without("user_id"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: missing user_id without token is left to the ledger", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, cmd commands.CreateBookingCommand) (*queries.BookingView, error) {
				s.Equal(uuid.Nil, cmd.UserID)
				return nil, booking.ErrMissingFields
			}).Times(1)
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Without("user_id"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")

		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "VALIDATION_ERROR")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "missing fields")
	})

	s.Run("error: 400 on malformed ids", func() {
		for _, field := range []string{"user_id", "space_id"} {
			s.Run(field, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field(field, "not-a-uuid"))

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")

				httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "VALIDATION_ERROR")
			})
		}
	})

	s.Run("error: 400 on malformed JSON", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, "not json", "")

		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "BAD_REQUEST")
	})

	s.Run("error: ledger errors map to status and code", func() {
		for _, tc := range ledgerErrorCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

				httptest.AssertErrorCode(s.T(), rec, tc.expectCode, tc.errorCode)
			})
		}
	})

	s.Run("error: 500 hides internal detail", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("pq: password authentication failed")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
		s.NotContains(rec.Body.String(), "password")
	})

	s.Run("error: 409 lists conflicting bookings", func() {
		conflictID := uuid.New()
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, booking.NewConflictError([]booking.Conflict{{
				ID:        conflictID,
				StartTime: booking.NewTimeOfDay(14, 0, 0),
				EndTime:   booking.NewTimeOfDay(15, 30, 0),
				Status:    booking.StatusConfirmed,
			}})).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		httptest.AssertErrorCode(s.T(), rec, http.StatusConflict, "BOOKING_CONFLICT")
		var body struct {
			Detail struct {
				ConflictingBookings []queries.ConflictView `json:"conflicting_bookings"`
			} `json:"detail"`
		}
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
		s.Equal([]queries.ConflictView{{
			ID: conflictID, StartTime: "14:00:00", EndTime: "15:30:00", Status: "confirmed",
		}}, body.Detail.ConflictingBookings)
	})
}

// ================================================================================
// TestCheckAvailability
// ================================================================================

func (s *BookingHandlerTestSuite) TestCheckAvailability() {
	spaceID := uuid.New()
	url := "/api/bookings/availability?space_id=" + spaceID.String() +
		"&booking_date=2025-06-02&start_time=15:30:00&end_time=16:30:00"
	view := &queries.AvailabilityView{
		Available:           true,
		Space:               queries.SpaceSummary{ID: spaceID, Name: "Studio A", Type: "class_studio", Capacity: 10, HourlyRateCents: 2000},
		RequestedSlot:       queries.RequestedSlot{BookingDate: "2025-06-02", StartTime: "15:30:00", EndTime: "16:30:00"},
		ConflictingBookings: []queries.ConflictView{},
		Message:             "Time slot is available",
	}

	s.Run("success: echoes the requested slot", func() {
		s.mockQueries.EXPECT().CheckAvailability(gomock.Any(), queries.AvailabilityRequest{
			SpaceID:   spaceID,
			Date:      "2025-06-02",
			StartTime: "15:30:00",
			EndTime:   "16:30:00",
		}).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var body resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Available)
		s.Equal(view.RequestedSlot, body.RequestedSlot)
		s.Equal(view.Space, body.Space)
		s.NotNil(body.ConflictingBookings)
		s.Equal("Time slot is available", body.Message)
	})

	s.Run("success: exclude_booking_id is forwarded", func() {
		excludeID := uuid.New()
		s.mockQueries.EXPECT().CheckAvailability(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req queries.AvailabilityRequest) (*queries.AvailabilityView, error) {
				s.Require().NotNil(req.ExcludeBookingID)
				s.Equal(excludeID, *req.ExcludeBookingID)
				return view, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"&exclude_booking_id="+excludeID.String(), nil, "")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 on malformed exclude_booking_id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"&exclude_booking_id=abc", nil, "")

		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "VALIDATION_ERROR")
	})

	s.Run("error: missing parameters", func() {
		s.mockQueries.EXPECT().CheckAvailability(gomock.Any(), gomock.Any()).
			Return(nil, booking.ErrMissingFields).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings/availability", nil, "")

		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "VALIDATION_ERROR")
	})

	s.Run("error: 404 for an inactive space", func() {
		s.mockQueries.EXPECT().CheckAvailability(gomock.Any(), gomock.Any()).
			Return(nil, space.ErrSpaceNotBookable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		httptest.AssertErrorCode(s.T(), rec, http.StatusNotFound, "NOT_FOUND")
	})
}

// ================================================================================
// TestList / TestListUpcoming
// ================================================================================

func (s *BookingHandlerTestSuite) TestList() {
	s.Run("success: forwards filters and wraps pagination", func() {
		userID := uuid.New()
		page := &queries.BookingPage{
			Data:       []*queries.BookingView{builder.NewBookingBuilder().BuildView()},
			Pagination: queries.NewPagination(11, 2, 5),
		}
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, f queries.BookingFilter) (*queries.BookingPage, error) {
				s.Equal(2, f.Page)
				s.Equal(5, f.Limit)
				s.Equal("pending,confirmed", f.Status)
				s.Equal("booking_date", f.SortBy)
				s.Equal("ASC", f.SortOrder)
				s.Require().NotNil(f.UserID)
				s.Equal(userID, *f.UserID)
				s.Nil(f.SpaceID)
				return page, nil
			}).Times(1)

		url := "/api/bookings?page=2&limit=5&status=pending,confirmed&sort_by=booking_date&sort_order=ASC&user_id=" + userID.String()
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var body resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Data, 1)
		s.Equal(queries.Pagination{Total: 11, Page: 2, Limit: 5, TotalPages: 3, HasNextPage: true, HasPrevPage: true}, body.Pagination)
	})

	s.Run("success: empty data is an array", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any()).
			Return(&queries.BookingPage{Data: []*queries.BookingView{}, Pagination: queries.NewPagination(0, 1, 10)}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings", nil, "")

		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"data":[]`)
	})

	s.Run("error: 400 on invalid status", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, booking.ErrInvalidStatus).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings?status=archived", nil, "")

		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "VALIDATION_ERROR")
	})

	s.Run("error: 400 on malformed space_id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings?space_id=42", nil, "")

		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "VALIDATION_ERROR")
	})

	s.Run("error: 400 on non-numeric page", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings?page=first", nil, "")

		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "BAD_REQUEST")
	})
}

func (s *BookingHandlerTestSuite) TestListUpcoming() {
	url := "/api/bookings/upcoming"

	s.Run("success: user_id query parameter", func() {
		userID := uuid.New()
		s.mockQueries.EXPECT().ListUpcoming(gomock.Any(), userID).Return([]*queries.BookingView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?user_id="+userID.String(), nil, "")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String())
	})

	s.Run("success: falls back to the authenticated user", func() {
		s.mockQueries.EXPECT().ListUpcoming(gomock.Any(), s.authUserID).Return([]*queries.BookingView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 without user_id", func() {
		s.mockQueries.EXPECT().ListUpcoming(gomock.Any(), uuid.Nil).Return(nil, queries.ErrUserIDRequired).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "user_id is required")
	})
}

// ================================================================================
// TestGet / TestUpdate / TestCancel
// ================================================================================

func (s *BookingHandlerTestSuite) TestGet() {
	view := builder.NewBookingBuilder().BuildView()

	s.Run("success", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings/"+view.ID.String(), nil, "")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID, body.ID)
		s.Equal("2025-06-02", body.BookingDate)
		s.Equal("14:00:00", body.StartTime)
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings/123", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID format")
	})

	s.Run("error: 404", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(nil, booking.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings/"+uuid.NewString(), nil, "")

		httptest.AssertErrorCode(s.T(), rec, http.StatusNotFound, "NOT_FOUND")
	})
}

func (s *BookingHandlerTestSuite) TestUpdate() {
	b := builder.NewBookingBuilder().WithStatus(booking.StatusConfirmed)
	view := b.BuildView()
	url := "/api/bookings/" + view.ID.String()

	s.Run("success: status change", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), view.ID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, cmd commands.UpdateBookingCommand) (*queries.BookingView, error) {
				s.Require().NotNil(cmd.Status)
				s.Equal("confirmed", *cmd.Status)
				s.Nil(cmd.CheckInTime)
				return view, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"status": "confirmed"}, "")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("confirmed", body.Status)
	})

	s.Run("success: check_in_time is parsed", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), view.ID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, cmd commands.UpdateBookingCommand) (*queries.BookingView, error) {
				s.Require().NotNil(cmd.CheckInTime)
				s.Equal("2025-06-02T14:02:00Z", cmd.CheckInTime.UTC().Format("2006-01-02T15:04:05Z07:00"))
				return view, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"check_in_time": "2025-06-02T14:02:00Z"}, "")

		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 on illegal transition", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), view.ID, gomock.Any()).
			Return(nil, booking.NewInvalidTransitionError(booking.StatusCompleted, booking.StatusPending)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"status": "pending"}, "")

		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "INVALID_TRANSITION")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid status transition from completed to pending")
	})

	s.Run("error: 404", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), view.ID, gomock.Any()).Return(nil, booking.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"notes": "bring gloves"}, "")

		httptest.AssertErrorCode(s.T(), rec, http.StatusNotFound, "NOT_FOUND")
	})
}

func (s *BookingHandlerTestSuite) TestCancel() {
	id := uuid.New()
	url := "/api/bookings/" + id.String()

	s.Run("success: without body", func() {
		reason := "User cancelled"
		s.mockCommands.EXPECT().Cancel(gomock.Any(), id, gomock.Nil()).
			Return(&commands.CancelBookingResult{ID: id, Status: "cancelled", PaymentStatus: "unpaid", CancellationReason: &reason}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")

		var body resdto.CancelBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(id, body.ID)
		s.Equal("cancelled", body.Status)
		s.Equal("unpaid", body.PaymentStatus)
		s.Require().NotNil(body.CancellationReason)
		s.Equal("User cancelled", *body.CancellationReason)
	})

	s.Run("success: reason is forwarded", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), id, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, reason *string) (*commands.CancelBookingResult, error) {
				s.Require().NotNil(reason)
				s.Equal("injured", *reason)
				return &commands.CancelBookingResult{ID: id, Status: "cancelled", PaymentStatus: "refunded", CancellationReason: reason}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, map[string]any{"cancellation_reason": "injured"}, "")

		var body resdto.CancelBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("refunded", body.PaymentStatus)
	})

	s.Run("error: 400 when already terminal", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), id, gomock.Any()).Return(nil, booking.ErrAlreadyTerminal).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "already terminal")
	})

	s.Run("error: 404", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), id, gomock.Any()).Return(nil, booking.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")

		httptest.AssertErrorCode(s.T(), rec, http.StatusNotFound, "NOT_FOUND")
	})
}
