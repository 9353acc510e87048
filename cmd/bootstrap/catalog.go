package bootstrap

import (
	"dreamstay/internal/domain/catalog"

	"go.uber.org/fx"
)

// CatalogModule loads the seed catalog. A malformed catalog is a fatal
// startup error, never a runtime 500.
var CatalogModule = fx.Module("catalog",
	fx.Provide(
		catalog.Default,
	),
)
