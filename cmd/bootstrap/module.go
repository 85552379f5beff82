package bootstrap

import (
	"github.com/nivekneved/travellounge-sub002/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	AliasModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
