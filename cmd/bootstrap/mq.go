package bootstrap

import (
	"context"
	"log/slog"

	"gym-booking/internal/infra/mq"
	"gym-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var MQModule = fx.Module("mq",
	fx.Provide(
		NewPublisher,
	),
)

// NewPublisher returns nil when AMQP_URL is unset; booking events then stay in the outbox table.
func NewPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*mq.Publisher, error) {
	if cfg.AMQP.URL == "" {
		logger.Info("amqp disabled, outbox relay will not start")
		return nil, nil
	}

	publisher, err := mq.NewPublisher(cfg.AMQP)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})
	return publisher, nil
}
