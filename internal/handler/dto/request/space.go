package request

import (
	"strconv"

	"gym-booking/internal/pkg/errs"
	"gym-booking/internal/usecase/queries"
)

var ErrInvalidActiveFlag = errs.NewValidation("active must be true or false")

type ListSpacesQuery struct {
	Type   string `form:"type"`
	Active string `form:"active"`
}

func (q ListSpacesQuery) ToFilter() (queries.SpaceFilter, error) {
	var filter queries.SpaceFilter
	if q.Type != "" {
		t := q.Type
		filter.Type = &t
	}
	if q.Active != "" {
		active, err := strconv.ParseBool(q.Active)
		if err != nil {
			return queries.SpaceFilter{}, ErrInvalidActiveFlag
		}
		filter.Active = &active
	}
	return filter, nil
}
