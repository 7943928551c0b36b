package bootstrap

import (
	"ramillete/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	CacheModule,
	StorageModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
