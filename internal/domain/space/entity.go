package space

import (
	"strings"
	"time"

	"gym-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptySpaceName   = errs.NewValidation("space name cannot be empty")
	ErrSpaceNameTooLong = errs.NewValidation("space name is too long (max 100 characters)")
	ErrInvalidType      = errs.NewValidation("invalid space type")
	ErrInvalidCapacity  = errs.NewValidation("capacity must be between 1 and 50")
	ErrNegativeRate     = errs.NewValidation("hourly rate cannot be negative")
	ErrSpaceNotFound    = errs.NewNotFound("space not found")
	ErrSpaceNotBookable = errs.NewNotFound("space not found or inactive")
)

const (
	MaxSpaceNameLength = 100
	MinCapacity        = 1
	MaxCapacity        = 50
)

type Space struct {
	id              uuid.UUID
	name            string
	spaceType       Type
	description     *string
	capacity        int
	hourlyRateCents int64
	isActive        bool
	amenities       []string
	deletedAt       *time.Time
	createdAt       time.Time
	updatedAt       time.Time
}

type Params struct {
	ID              uuid.UUID
	Name            string
	Type            string
	Description     *string
	Capacity        int
	HourlyRateCents int64
	IsActive        bool
	Amenities       []string
	DeletedAt       *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func NewSpace(p Params) (*Space, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return nil, ErrEmptySpaceName
	}
	if len(name) > MaxSpaceNameLength {
		return nil, ErrSpaceNameTooLong
	}
	t, err := NewType(p.Type)
	if err != nil {
		return nil, err
	}
	if p.Capacity < MinCapacity || p.Capacity > MaxCapacity {
		return nil, ErrInvalidCapacity
	}
	if p.HourlyRateCents < 0 {
		return nil, ErrNegativeRate
	}

	id := p.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Space{
		id:              id,
		name:            name,
		spaceType:       t,
		description:     p.Description,
		capacity:        p.Capacity,
		hourlyRateCents: p.HourlyRateCents,
		isActive:        p.IsActive,
		amenities:       p.Amenities,
		deletedAt:       p.DeletedAt,
		createdAt:       p.CreatedAt,
		updatedAt:       p.UpdatedAt,
	}, nil
}

// IsBookable reports whether new bookings may be placed on the space.
func (s *Space) IsBookable() bool {
	return s.isActive && s.deletedAt == nil
}

func (s *Space) ID() uuid.UUID          { return s.id }
func (s *Space) Name() string           { return s.name }
func (s *Space) Type() Type             { return s.spaceType }
func (s *Space) Description() *string   { return s.description }
func (s *Space) Capacity() int          { return s.capacity }
func (s *Space) HourlyRateCents() int64 { return s.hourlyRateCents }
func (s *Space) IsActive() bool         { return s.isActive }
func (s *Space) Amenities() []string    { return s.amenities }
func (s *Space) DeletedAt() *time.Time  { return s.deletedAt }
func (s *Space) CreatedAt() time.Time   { return s.createdAt }
func (s *Space) UpdatedAt() time.Time   { return s.updatedAt }
