package bootstrap

import (
	"dreamstay/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	CatalogModule,
	components.StoreModule,
	components.UseCaseModule,
	components.HandlerModule,
)
