package response

import (
	"time"

	"gym-booking/internal/domain/booking"
	"gym-booking/internal/pkg/errs"
	"gym-booking/internal/usecase/commands"
	"gym-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type SpaceSummaryResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Type string    `json:"type"`
}

type UserSummaryResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

type BookingResponse struct {
	ID                 uuid.UUID            `json:"id"`
	UserID             uuid.UUID            `json:"user_id"`
	SpaceID            uuid.UUID            `json:"space_id"`
	BookingDate        string               `json:"booking_date"`
	StartTime          string               `json:"start_time"`
	EndTime            string               `json:"end_time"`
	Status             string               `json:"status"`
	PaymentStatus      string               `json:"payment_status"`
	DurationHours      float64              `json:"duration_hours"`
	TotalPrice         string               `json:"total_price"`
	TotalPriceCents    int64                `json:"total_price_cents"`
	Notes              *string              `json:"notes"`
	CancellationReason *string              `json:"cancellation_reason"`
	CancelledAt        *time.Time           `json:"cancelled_at"`
	CheckInTime        *time.Time           `json:"check_in_time"`
	CheckOutTime       *time.Time           `json:"check_out_time"`
	CreatedAt          time.Time            `json:"created_at"`
	UpdatedAt          time.Time            `json:"updated_at"`
	Space              SpaceSummaryResponse `json:"space"`
	User               UserSummaryResponse  `json:"user"`
}

func FromBookingView(v *queries.BookingView) (*BookingResponse, error) {
	res := &BookingResponse{}
	if err := copier.Copy(res, v); err != nil {
		return nil, errs.Wrap(err, "map booking view")
	}
	res.TotalPrice = formatCents(v.TotalPriceCents)
	res.Space = SpaceSummaryResponse{ID: v.SpaceID, Name: v.SpaceName, Type: v.SpaceType}
	res.User = UserSummaryResponse{ID: v.UserID, Name: v.UserName, Email: v.UserEmail}
	return res, nil
}

func FromBookingViews(views []*queries.BookingView) ([]*BookingResponse, error) {
	res := make([]*BookingResponse, len(views))
	for i, v := range views {
		mapped, err := FromBookingView(v)
		if err != nil {
			return nil, err
		}
		res[i] = mapped
	}
	return res, nil
}

type BookingListResponse struct {
	Data       []*BookingResponse `json:"data"`
	Pagination queries.Pagination `json:"pagination"`
}

func FromBookingPage(p *queries.BookingPage) (*BookingListResponse, error) {
	data, err := FromBookingViews(p.Data)
	if err != nil {
		return nil, err
	}
	return &BookingListResponse{
		Data:       data,
		Pagination: p.Pagination,
	}, nil
}

type CancelBookingResponse struct {
	ID                 uuid.UUID `json:"id"`
	Status             string    `json:"status"`
	PaymentStatus      string    `json:"payment_status"`
	CancellationReason *string   `json:"cancellation_reason"`
}

func FromCancelResult(r *commands.CancelBookingResult) (*CancelBookingResponse, error) {
	res := &CancelBookingResponse{}
	if err := copier.Copy(res, r); err != nil {
		return nil, errs.Wrap(err, "map cancel result")
	}
	return res, nil
}

type AvailabilityResponse struct {
	Available           bool                   `json:"available"`
	Space               queries.SpaceSummary   `json:"space"`
	RequestedSlot       queries.RequestedSlot  `json:"requested_slot"`
	ConflictingBookings []queries.ConflictView `json:"conflicting_bookings"`
	Message             string                 `json:"message"`
}

func FromAvailabilityView(v *queries.AvailabilityView) (*AvailabilityResponse, error) {
	res := &AvailabilityResponse{}
	if err := copier.Copy(res, v); err != nil {
		return nil, errs.Wrap(err, "map availability view")
	}
	if res.ConflictingBookings == nil {
		res.ConflictingBookings = []queries.ConflictView{}
	}
	return res, nil
}

func formatCents(cents int64) string {
	m, err := booking.NewMoney(cents)
	if err != nil {
		return "0.00"
	}
	return m.String()
}
