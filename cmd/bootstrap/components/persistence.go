package components

import (
	"gym-booking/internal/infra/cache"
	"gym-booking/internal/infra/readstore"
	sqlc "gym-booking/internal/infra/sqlc/generated"
	"gym-booking/internal/infra/uow"
	"gym-booking/internal/pkg/config"
	"gym-booking/internal/usecase/queries"
	"gym-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Booking
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BookingViewQueries)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		// Space
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.SpaceViewQueries)),
		),
		fx.Annotate(
			readstore.NewSpaceReadStore,
			fx.As(new(queries.SpaceReadStore)),
			fx.As(new(cache.SpaceSource)),
		),
		// Space catalog (read-through cache over the space read store)
		NewSpaceCatalog,
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// UnitOfWork owns the booking and notification repositories per transaction
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}

func NewSpaceCatalog(client *redis.Client, source cache.SpaceSource, cfg config.Config) shared.SpaceCatalog {
	return cache.NewSpaceCatalog(client, source, cfg.Redis.SpaceTTL)
}
