package request

import (
	"strings"
	"time"

	"gym-booking/internal/pkg/errs"
	"gym-booking/internal/usecase/commands"
	"gym-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrInvalidUserID    = errs.NewValidation("invalid user_id")
	ErrInvalidSpaceID   = errs.NewValidation("invalid space_id")
	ErrInvalidBookingID = errs.NewValidation("invalid exclude_booking_id")
)

type CreateBookingRequest struct {
	UserID      string  `json:"user_id"`
	SpaceID     string  `json:"space_id"`
	BookingDate string  `json:"booking_date"`
	StartTime   string  `json:"start_time"`
	EndTime     string  `json:"end_time"`
	Notes       *string `json:"notes,omitempty"`
}

// ToCommand falls back to the authenticated user when user_id is omitted.
// Missing values are left zero so the ledger reports them as missing fields.
func (r CreateBookingRequest) ToCommand(authUserID uuid.UUID) (commands.CreateBookingCommand, error) {
	userID, err := parseOptionalUUID(r.UserID, ErrInvalidUserID)
	if err != nil {
		return commands.CreateBookingCommand{}, err
	}
	if userID == uuid.Nil {
		userID = authUserID
	}
	spaceID, err := parseOptionalUUID(r.SpaceID, ErrInvalidSpaceID)
	if err != nil {
		return commands.CreateBookingCommand{}, err
	}

	return commands.CreateBookingCommand{
		UserID:      userID,
		SpaceID:     spaceID,
		BookingDate: strings.TrimSpace(r.BookingDate),
		StartTime:   strings.TrimSpace(r.StartTime),
		EndTime:     strings.TrimSpace(r.EndTime),
		Notes:       r.Notes,
	}, nil
}

type UpdateBookingRequest struct {
	Status             *string    `json:"status,omitempty"`
	Notes              *string    `json:"notes,omitempty"`
	CheckInTime        *time.Time `json:"check_in_time,omitempty"`
	CheckOutTime       *time.Time `json:"check_out_time,omitempty"`
	CancellationReason *string    `json:"cancellation_reason,omitempty"`
}

func (r UpdateBookingRequest) ToCommand() commands.UpdateBookingCommand {
	return commands.UpdateBookingCommand{
		Status:             r.Status,
		Notes:              r.Notes,
		CheckInTime:        r.CheckInTime,
		CheckOutTime:       r.CheckOutTime,
		CancellationReason: r.CancellationReason,
	}
}

type CancelBookingRequest struct {
	CancellationReason *string `json:"cancellation_reason,omitempty"`
}

type ListBookingsQuery struct {
	Page      int    `form:"page"`
	Limit     int    `form:"limit"`
	Status    string `form:"status"`
	SpaceID   string `form:"space_id"`
	UserID    string `form:"user_id"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order"`
}

func (q ListBookingsQuery) ToFilter() (queries.BookingFilter, error) {
	filter := queries.BookingFilter{
		Status:    q.Status,
		StartDate: q.StartDate,
		EndDate:   q.EndDate,
		Page:      q.Page,
		Limit:     q.Limit,
		SortBy:    q.SortBy,
		SortOrder: q.SortOrder,
	}
	if q.UserID != "" {
		id, err := uuid.Parse(q.UserID)
		if err != nil {
			return queries.BookingFilter{}, ErrInvalidUserID
		}
		filter.UserID = &id
	}
	if q.SpaceID != "" {
		id, err := uuid.Parse(q.SpaceID)
		if err != nil {
			return queries.BookingFilter{}, ErrInvalidSpaceID
		}
		filter.SpaceID = &id
	}
	return filter, nil
}

type AvailabilityQuery struct {
	SpaceID          string `form:"space_id"`
	BookingDate      string `form:"booking_date"`
	StartTime        string `form:"start_time"`
	EndTime          string `form:"end_time"`
	ExcludeBookingID string `form:"exclude_booking_id"`
}

func (q AvailabilityQuery) ToRequest() (queries.AvailabilityRequest, error) {
	spaceID, err := parseOptionalUUID(q.SpaceID, ErrInvalidSpaceID)
	if err != nil {
		return queries.AvailabilityRequest{}, err
	}
	req := queries.AvailabilityRequest{
		SpaceID:   spaceID,
		Date:      q.BookingDate,
		StartTime: q.StartTime,
		EndTime:   q.EndTime,
	}
	if q.ExcludeBookingID != "" {
		id, err := uuid.Parse(q.ExcludeBookingID)
		if err != nil {
			return queries.AvailabilityRequest{}, ErrInvalidBookingID
		}
		req.ExcludeBookingID = &id
	}
	return req, nil
}

func parseOptionalUUID(s string, invalid error) (uuid.UUID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return uuid.Nil, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, invalid
	}
	return id, nil
}
