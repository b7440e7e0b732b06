package components

import (
	"gym-booking/internal/handler"
	"gym-booking/internal/handler/api"
	"gym-booking/internal/handler/middleware"
	"gym-booking/internal/pkg/clock"
	"gym-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewSpaceHandler,
		middleware.NewAuthMiddleware,
		func(cfg config.Config, clk clock.Clock) *middleware.RateLimiter {
			return middleware.NewRateLimiter(cfg.RateLimit, clk)
		},
	),
	fx.Invoke(handler.NewRouter),
)
