package queries

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gym-booking/internal/domain/booking"
	"gym-booking/internal/infra"
	sqlc "gym-booking/internal/infra/sqlc/generated"
	"gym-booking/internal/pkg/clock"
	"gym-booking/internal/pkg/errs"
	"gym-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrUserIDRequired    = errs.NewValidation("user_id is required")
	ErrInvalidDateFilter = errs.NewValidation("invalid date filter")
)

const (
	SortByCreatedAt   = "created_at"
	SortByBookingDate = "booking_date"
	SortByStartTime   = "start_time"
	SortByTotalPrice  = "total_price"
)

var sortableFields = map[string]bool{
	SortByCreatedAt:   true,
	SortByBookingDate: true,
	SortByStartTime:   true,
	SortByTotalPrice:  true,
}

type BookingFilter struct {
	UserID    *uuid.UUID
	SpaceID   *uuid.UUID
	Status    string // single status or comma separated set
	StartDate string
	EndDate   string
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}

// BookingListParams is a validated BookingFilter.
type BookingListParams struct {
	UserID    *uuid.UUID
	SpaceID   *uuid.UUID
	Statuses  []string
	StartDate *booking.Date
	EndDate   *booking.Date
	SortBy    string
	SortDesc  bool
	Limit     int32
	Offset    int32
}

type AvailabilityRequest struct {
	SpaceID          uuid.UUID
	Date             string
	StartTime        string
	EndTime          string
	ExcludeBookingID *uuid.UUID
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	// List runs its count and page queries on db so both can share a snapshot.
	List(ctx context.Context, db sqlc.DBTX, params BookingListParams) ([]*BookingView, int64, error)
	ListUpcoming(ctx context.Context, userID uuid.UUID, from booking.Date) ([]*BookingView, error)
	FindConflicts(ctx context.Context, spaceID uuid.UUID, date booking.Date, slot booking.TimeSlot, excludeID *uuid.UUID) ([]booking.Conflict, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	List(ctx context.Context, filter BookingFilter) (*BookingPage, error)
	ListUpcoming(ctx context.Context, userID uuid.UUID) ([]*BookingView, error)
	CheckAvailability(ctx context.Context, req AvailabilityRequest) (*AvailabilityView, error)
}

type bookingQueriesImpl struct {
	store   BookingReadStore
	catalog shared.SpaceCatalog
	uow     shared.UnitOfWork
	clock   clock.Clock
	loc     *time.Location
}

func NewBookingQueries(store BookingReadStore, catalog shared.SpaceCatalog, uow shared.UnitOfWork, clk clock.Clock, loc *time.Location) BookingQueries {
	if loc == nil {
		loc = time.Local
	}
	return &bookingQueriesImpl{
		store:   store,
		catalog: catalog,
		uow:     uow,
		clock:   clk,
		loc:     loc,
	}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, booking.ErrBookingNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *bookingQueriesImpl) List(ctx context.Context, filter BookingFilter) (*BookingPage, error) {
	params, page, limit, err := normalizeFilter(filter)
	if err != nil {
		return nil, err
	}

	var (
		rows  []*BookingView
		total int64
	)
	err = q.uow.WithinReadOnly(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var err error
		rows, total, err = q.store.List(ctx, db, params)
		return err
	})
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []*BookingView{}
	}

	return &BookingPage{
		Data:       rows,
		Pagination: NewPagination(total, page, limit),
	}, nil
}

func normalizeFilter(f BookingFilter) (BookingListParams, int, int, error) {
	page := ValidatePage(f.Page)
	limit := ValidateLimit(f.Limit)
	offset, err := Offset(page, limit)
	if err != nil {
		return BookingListParams{}, 0, 0, err
	}

	params := BookingListParams{
		UserID:   f.UserID,
		SpaceID:  f.SpaceID,
		Statuses: []string{},
		SortBy:   SortByCreatedAt,
		SortDesc: true,
		Limit:    int32(limit),
		Offset:   offset,
	}

	for _, raw := range strings.Split(f.Status, ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		status, err := booking.NewStatus(raw)
		if err != nil {
			return BookingListParams{}, 0, 0, err
		}
		params.Statuses = append(params.Statuses, status.String())
	}

	if f.StartDate != "" {
		d, err := booking.ParseDate(f.StartDate)
		if err != nil {
			return BookingListParams{}, 0, 0, ErrInvalidDateFilter
		}
		params.StartDate = &d
	}
	if f.EndDate != "" {
		d, err := booking.ParseDate(f.EndDate)
		if err != nil {
			return BookingListParams{}, 0, 0, ErrInvalidDateFilter
		}
		params.EndDate = &d
	}

	if sortableFields[f.SortBy] {
		params.SortBy = f.SortBy
	}
	switch strings.ToUpper(f.SortOrder) {
	case "ASC":
		params.SortDesc = false
	case "DESC":
		params.SortDesc = true
	}

	return params, page, limit, nil
}

func (q *bookingQueriesImpl) ListUpcoming(ctx context.Context, userID uuid.UUID) ([]*BookingView, error) {
	if userID == uuid.Nil {
		return nil, ErrUserIDRequired
	}

	today := booking.DateOf(clock.NowIn(q.clock, q.loc))
	rows, err := q.store.ListUpcoming(ctx, userID, today)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []*BookingView{}
	}
	return rows, nil
}

func (q *bookingQueriesImpl) CheckAvailability(ctx context.Context, req AvailabilityRequest) (*AvailabilityView, error) {
	if req.SpaceID == uuid.Nil || req.Date == "" || req.StartTime == "" || req.EndTime == "" {
		return nil, booking.ErrMissingFields
	}

	sp, err := q.catalog.ActiveSpace(ctx, req.SpaceID)
	if err != nil {
		return nil, err
	}

	date, err := booking.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}
	slot, err := booking.ParseSlot(req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	conflicts, err := q.store.FindConflicts(ctx, req.SpaceID, date, slot, req.ExcludeBookingID)
	if err != nil {
		return nil, err
	}

	view := &AvailabilityView{
		Available: len(conflicts) == 0,
		Space: SpaceSummary{
			ID:              sp.ID,
			Name:            sp.Name,
			Type:            sp.Type,
			Capacity:        sp.Capacity,
			HourlyRateCents: sp.HourlyRateCents,
		},
		RequestedSlot: RequestedSlot{
			BookingDate: date.String(),
			StartTime:   slot.Start().String(),
			EndTime:     slot.End().String(),
		},
		ConflictingBookings: ToConflictViews(conflicts),
	}
	if view.Available {
		view.Message = "Time slot is available"
	} else {
		view.Message = fmt.Sprintf("Time slot conflicts with %d existing booking(s)", len(conflicts))
	}
	return view, nil
}

func ToConflictViews(conflicts []booking.Conflict) []ConflictView {
	views := make([]ConflictView, len(conflicts))
	for i, c := range conflicts {
		views[i] = ConflictView{
			ID:        c.ID,
			StartTime: c.StartTime.String(),
			EndTime:   c.EndTime.String(),
			Status:    c.Status.String(),
		}
	}
	return views
}
