//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"gym-booking/internal/domain/space"
	"gym-booking/internal/handler/api"
	resdto "gym-booking/internal/handler/dto/response"
	"gym-booking/internal/usecase/queries"
	"gym-booking/tests/common/httptest"
	queriesmock "gym-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SpaceHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockSpaceQueries
}

func (s *SpaceHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockSpaceQueries(s.mockCtrl)
	handler := api.NewSpaceHandler(s.mockQueries)

	s.router.GET("/api/spaces", handler.List)
	s.router.GET("/api/spaces/:id", handler.Get)
}

func TestSpaceHandlerSuite(t *testing.T) {
	suite.Run(t, new(SpaceHandlerTestSuite))
}

func sampleSpaceView() *queries.SpaceView {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return &queries.SpaceView{
		ID:              uuid.New(),
		Name:            "Boxing Ring",
		Type:            "boxing_ring",
		Capacity:        4,
		HourlyRateCents: 3550,
		IsActive:        true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func (s *SpaceHandlerTestSuite) TestList() {
	s.Run("success: type and active filters", func() {
		view := sampleSpaceView()
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, f queries.SpaceFilter) ([]*queries.SpaceView, error) {
				s.Require().NotNil(f.Type)
				s.Equal("boxing_ring", *f.Type)
				s.Require().NotNil(f.Active)
				s.True(*f.Active)
				return []*queries.SpaceView{view}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/spaces?type=boxing_ring&active=true", nil, "")

		var body []resdto.SpaceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal(view.ID, body[0].ID)
		s.Equal("35.50", body[0].HourlyRate)
		s.Equal([]string{}, body[0].Amenities)
	})

	s.Run("error: 400 on invalid active flag", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/spaces?active=maybe", nil, "")

		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "VALIDATION_ERROR")
	})

	s.Run("error: 400 on unknown type", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, space.ErrInvalidType).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/spaces?type=sauna", nil, "")

		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "VALIDATION_ERROR")
	})
}

func (s *SpaceHandlerTestSuite) TestGet() {
	s.Run("success", func() {
		view := sampleSpaceView()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/spaces/"+view.ID.String(), nil, "")

		var body resdto.SpaceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("Boxing Ring", body.Name)
	})

	s.Run("error: 404", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(nil, space.ErrSpaceNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/spaces/"+uuid.NewString(), nil, "")

		httptest.AssertErrorCode(s.T(), rec, http.StatusNotFound, "NOT_FOUND")
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/spaces/abc", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid space ID format")
	})
}
