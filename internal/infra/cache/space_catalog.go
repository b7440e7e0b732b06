package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"gym-booking/internal/domain/space"
	"gym-booking/internal/infra"
	"gym-booking/internal/pkg/config"
	"gym-booking/internal/pkg/errs"
	"gym-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const spaceKeyPrefix = "space:"

type SpaceSource interface {
	FindSnapshot(ctx context.Context, id uuid.UUID) (*shared.SpaceSnapshot, error)
}

// SpaceCatalog serves space snapshots from Redis and falls back to the
// database on a miss or when Redis is unavailable. A nil client disables caching.
type SpaceCatalog struct {
	client *redis.Client
	source SpaceSource
	ttl    time.Duration
}

func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	if cfg.Addr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})
}

func NewSpaceCatalog(client *redis.Client, source SpaceSource, ttl time.Duration) *SpaceCatalog {
	return &SpaceCatalog{
		client: client,
		source: source,
		ttl:    ttl,
	}
}

// ActiveSpace returns the snapshot of a space that can take bookings.
// Missing, inactive and soft-deleted spaces all yield space.ErrSpaceNotBookable.
func (c *SpaceCatalog) ActiveSpace(ctx context.Context, id uuid.UUID) (*shared.SpaceSnapshot, error) {
	snapshot := c.get(ctx, id)
	if snapshot == nil {
		var err error
		snapshot, err = c.source.FindSnapshot(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, space.ErrSpaceNotBookable
			}
			return nil, err
		}
		c.set(ctx, snapshot)
	}

	if !snapshot.IsBookable() {
		return nil, space.ErrSpaceNotBookable
	}
	return snapshot, nil
}

func (c *SpaceCatalog) Invalidate(ctx context.Context, id uuid.UUID) error {
	if c.client == nil {
		return nil
	}
	if err := c.client.Del(ctx, spaceKey(id)).Err(); err != nil {
		return errs.Wrap(err, "failed to invalidate cached space")
	}
	return nil
}

func (c *SpaceCatalog) get(ctx context.Context, id uuid.UUID) *shared.SpaceSnapshot {
	if c.client == nil {
		return nil
	}

	val, err := c.client.Get(ctx, spaceKey(id)).Bytes()
	if err != nil {
		if !errs.Is(err, redis.Nil) {
			slog.WarnContext(ctx, "space cache read failed", "space_id", id, "error", err.Error())
		}
		return nil
	}

	var snapshot shared.SpaceSnapshot
	if err := json.Unmarshal(val, &snapshot); err != nil {
		slog.WarnContext(ctx, "discarding malformed cached space", "space_id", id, "error", err.Error())
		return nil
	}
	return &snapshot
}

func (c *SpaceCatalog) set(ctx context.Context, snapshot *shared.SpaceSnapshot) {
	if c.client == nil {
		return
	}

	data, err := json.Marshal(snapshot)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, spaceKey(snapshot.ID), data, c.ttl).Err(); err != nil {
		slog.WarnContext(ctx, "space cache write failed", "space_id", snapshot.ID, "error", err.Error())
	}
}

func spaceKey(id uuid.UUID) string {
	return spaceKeyPrefix + id.String()
}
