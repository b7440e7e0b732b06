package response

import (
	"time"

	"gym-booking/internal/pkg/errs"
	"gym-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type SpaceResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Type            string    `json:"type"`
	Description     *string   `json:"description"`
	Capacity        int32     `json:"capacity"`
	HourlyRate      string    `json:"hourly_rate"`
	HourlyRateCents int64     `json:"hourly_rate_cents"`
	IsActive        bool      `json:"is_active"`
	Amenities       []string  `json:"amenities"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func FromSpaceView(v *queries.SpaceView) (*SpaceResponse, error) {
	res := &SpaceResponse{}
	if err := copier.Copy(res, v); err != nil {
		return nil, errs.Wrap(err, "map space view")
	}
	res.HourlyRate = formatCents(v.HourlyRateCents)
	if res.Amenities == nil {
		res.Amenities = []string{}
	}
	return res, nil
}

func FromSpaceViews(views []*queries.SpaceView) ([]*SpaceResponse, error) {
	res := make([]*SpaceResponse, len(views))
	for i, v := range views {
		mapped, err := FromSpaceView(v)
		if err != nil {
			return nil, err
		}
		res[i] = mapped
	}
	return res, nil
}
