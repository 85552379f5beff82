package bootstrap

import (
	"github.com/nivekneved/travellounge-sub002/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
)
