package readstore

import (
	"context"

	"gym-booking/internal/infra"
	sqlc "gym-booking/internal/infra/sqlc/generated"
	"gym-booking/internal/pkg/pgconv"
	"gym-booking/internal/usecase/queries"
	"gym-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type SpaceViewQueries interface {
	GetSpaceByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Spaces, error)
	ListSpaces(ctx context.Context, db sqlc.DBTX, arg sqlc.ListSpacesParams) ([]sqlc.Spaces, error)
}

type SpaceReadStore struct {
	queries SpaceViewQueries
	db      sqlc.DBTX
}

func NewSpaceReadStore(queries SpaceViewQueries, db sqlc.DBTX) *SpaceReadStore {
	return &SpaceReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *SpaceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.SpaceView, error) {
	row, err := r.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return toSpaceView(row), nil
}

// FindSnapshot serves the space catalog on a cache miss.
func (r *SpaceReadStore) FindSnapshot(ctx context.Context, id uuid.UUID) (*shared.SpaceSnapshot, error) {
	row, err := r.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return &shared.SpaceSnapshot{
		ID:              row.ID,
		Name:            row.Name,
		Type:            row.Type,
		Capacity:        int(row.Capacity),
		HourlyRateCents: row.HourlyRateCents,
		IsActive:        row.IsActive,
		Deleted:         row.DeletedAt.Valid,
	}, nil
}

func (r *SpaceReadStore) List(ctx context.Context, filter queries.SpaceFilter) ([]*queries.SpaceView, error) {
	params := sqlc.ListSpacesParams{
		Type: pgconv.StringPtrToPgtype(filter.Type),
	}
	if filter.Active != nil {
		params.IsActive = pgtype.Bool{Bool: *filter.Active, Valid: true}
	}

	rows, err := r.queries.ListSpaces(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list spaces", err)
	}

	result := make([]*queries.SpaceView, len(rows))
	for i, row := range rows {
		result[i] = toSpaceView(row)
	}
	return result, nil
}

func (r *SpaceReadStore) find(ctx context.Context, id uuid.UUID) (sqlc.Spaces, error) {
	row, err := r.queries.GetSpaceByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return sqlc.Spaces{}, infra.WrapRepoErr("space not found", err, infra.KindNotFound)
		}
		return sqlc.Spaces{}, infra.WrapRepoErr("failed to find space by ID", err)
	}
	return row, nil
}

func toSpaceView(row sqlc.Spaces) *queries.SpaceView {
	amenities := row.Amenities
	if amenities == nil {
		amenities = []string{}
	}
	return &queries.SpaceView{
		ID:              row.ID,
		Name:            row.Name,
		Type:            row.Type,
		Description:     pgconv.StringPtrFromPgtype(row.Description),
		Capacity:        row.Capacity,
		HourlyRateCents: row.HourlyRateCents,
		IsActive:        row.IsActive,
		Amenities:       amenities,
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
