package queries

import (
	"context"

	"gym-booking/internal/domain/space"
	"gym-booking/internal/infra"

	"github.com/google/uuid"
)

type SpaceFilter struct {
	Type   *string
	Active *bool
}

type SpaceReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*SpaceView, error)
	List(ctx context.Context, filter SpaceFilter) ([]*SpaceView, error)
}

type SpaceQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*SpaceView, error)
	List(ctx context.Context, filter SpaceFilter) ([]*SpaceView, error)
}

type spaceQueriesImpl struct {
	store SpaceReadStore
}

func NewSpaceQueries(store SpaceReadStore) SpaceQueries {
	return &spaceQueriesImpl{store: store}
}

func (q *spaceQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*SpaceView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, space.ErrSpaceNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *spaceQueriesImpl) List(ctx context.Context, filter SpaceFilter) ([]*SpaceView, error) {
	if filter.Type != nil {
		if _, err := space.NewType(*filter.Type); err != nil {
			return nil, err
		}
	}

	rows, err := q.store.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []*SpaceView{}
	}
	return rows, nil
}
