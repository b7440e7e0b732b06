package components

import (
	"context"
	"log/slog"

	"gym-booking/internal/infra/mq"
	"gym-booking/internal/pkg/clock"
	"gym-booking/internal/pkg/config"
	"gym-booking/internal/usecase/shared"
	"gym-booking/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Invoke(startOutboxRelay),
)

func startOutboxRelay(
	lc fx.Lifecycle,
	cfg config.Config,
	uow shared.UnitOfWork,
	publisher *mq.Publisher,
	clk clock.Clock,
	logger *slog.Logger,
) {
	if publisher == nil {
		return
	}

	relay := worker.NewOutboxRelay(uow, publisher, clk, logger, cfg.AMQP)
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			logger.Info("outbox relay started", "exchange", cfg.AMQP.Exchange, "interval", cfg.AMQP.PollInterval)
			relay.Start(context.Background())
			return nil
		},
		OnStop: func(_ context.Context) error {
			relay.Stop()
			logger.Info("outbox relay stopped")
			return nil
		},
	})
}
