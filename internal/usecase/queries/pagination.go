package queries

import (
	"math"

	"gym-booking/internal/pkg/errs"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxListLimit = 100

	// MaxOffset is the largest row offset the store accepts.
	MaxOffset = math.MaxInt32
)

var ErrPageOutOfRange = errs.NewValidation("page is out of range")

func ValidatePage(page int) int {
	if page < 1 {
		return DefaultPage
	}
	return page
}

func ValidateLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}

// Offset converts a validated page and limit into a row offset.
func Offset(page, limit int) (int32, error) {
	if page-1 > MaxOffset/limit {
		return 0, ErrPageOutOfRange
	}
	return int32((page - 1) * limit), nil
}

func NewPagination(total int64, page, limit int) Pagination {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return Pagination{
		Total:       total,
		Page:        page,
		Limit:       limit,
		TotalPages:  totalPages,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}
}
