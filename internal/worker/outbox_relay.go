package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"gym-booking/internal/pkg/clock"
	"gym-booking/internal/pkg/config"
	"gym-booking/internal/pkg/errs"
	"gym-booking/internal/pkg/metrics"
	"gym-booking/internal/usecase/shared"
)

const (
	baseRetryDelay = time.Second
	maxRetryDelay  = 5 * time.Minute
	maxErrorLength = 500
)

type EventPublisher interface {
	Publish(ctx context.Context, routingKey, messageID string, body []byte) error
}

// OutboxRelay moves notification jobs written alongside booking changes onto the message broker.
// Delivery is at least once: a job is marked sent only after the broker accepted it.
type OutboxRelay struct {
	uow         shared.UnitOfWork
	publisher   EventPublisher
	clock       clock.Clock
	logger      *slog.Logger
	interval    time.Duration
	batchSize   int32
	maxAttempts int32

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewOutboxRelay(uow shared.UnitOfWork, publisher EventPublisher, clk clock.Clock, logger *slog.Logger, cfg config.AMQPConfig) *OutboxRelay {
	interval := cfg.PollInterval
	if interval <= 0 {
		interval = 2 * time.Second
	}
	batch := cfg.BatchSize
	if batch <= 0 {
		batch = 50
	}
	return &OutboxRelay{
		uow:         uow,
		publisher:   publisher,
		clock:       clk,
		logger:      logger,
		interval:    interval,
		batchSize:   batch,
		maxAttempts: cfg.MaxAttempts,
	}
}

func (r *OutboxRelay) Start(ctx context.Context) {
	ctx, r.cancel = context.WithCancel(ctx)
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		r.run(ctx)
	}()
}

func (r *OutboxRelay) Stop() {
	if r.cancel != nil {
		r.cancel()
	}
	r.wg.Wait()
}

func (r *OutboxRelay) run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := r.RelayOnce(ctx); err != nil && ctx.Err() == nil {
				r.logger.Error("outbox relay failed", "error", err)
			}
		}
	}
}

// RelayOnce claims one batch of due jobs and publishes them, returning how many were sent.
func (r *OutboxRelay) RelayOnce(ctx context.Context) (int, error) {
	sent := 0
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		sent = 0
		now := r.clock.Now()
		jobs, err := tx.Notifications().ClaimDue(ctx, tx.DB(), now, r.batchSize)
		if err != nil {
			return err
		}

		for _, job := range jobs {
			pubErr := r.publisher.Publish(ctx, job.Topic, job.ID.String(), job.Payload)
			if pubErr == nil {
				if err := tx.Notifications().MarkSent(ctx, tx.DB(), job.ID); err != nil {
					return err
				}
				metrics.IncOutboxDelivery("sent")
				sent++
				continue
			}

			r.logger.Warn("publish booking event failed",
				"job_id", job.ID.String(),
				"topic", job.Topic,
				"attempts", job.Attempts+1,
				"error", pubErr)
			retryAt := now.Add(RetryDelay(job.Attempts + 1))
			if err := tx.Notifications().MarkFailed(ctx, tx.DB(), job.ID, truncate(pubErr.Error()), r.maxAttempts, retryAt); err != nil {
				return err
			}
			metrics.IncOutboxDelivery("failed")
		}
		return nil
	})
	if err != nil {
		return 0, errs.Wrap(err, "relay outbox batch")
	}
	return sent, nil
}

// RetryDelay doubles from one second per attempt and is capped at five minutes.
func RetryDelay(attempt int32) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	delay := baseRetryDelay
	for i := int32(1); i < attempt; i++ {
		delay *= 2
		if delay >= maxRetryDelay {
			return maxRetryDelay
		}
	}
	return delay
}

func truncate(s string) string {
	if len(s) <= maxErrorLength {
		return s
	}
	return s[:maxErrorLength]
}
