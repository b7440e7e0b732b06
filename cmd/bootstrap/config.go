package bootstrap

import (
	"log/slog"

	"gym-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	fx.Invoke(logLoadedConfig),
)

// secrets and DSNs stay out of the log
func logLoadedConfig(cfg config.Config) {
	slog.Info("configuration loaded",
		"port", cfg.Server.Port,
		"db_host", cfg.DB.Host,
		"db_name", cfg.DB.DBName,
		"booking_timezone", cfg.Booking.Location().String(),
		"redis_enabled", cfg.Redis.Addr != "",
		"amqp_enabled", cfg.AMQP.URL != "",
	)
}
