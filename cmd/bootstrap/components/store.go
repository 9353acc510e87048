package components

import (
	"dreamstay/internal/infra/memstore"
	"dreamstay/internal/usecase/queries"
	"dreamstay/internal/usecase/shared"

	"go.uber.org/fx"
)

// StoreModule provides the single process-memory store behind every port.
// The same instance serves the write side (unit of work) and the read side
// so all ports observe one consistent state.
var StoreModule = fx.Module("store",
	fx.Provide(
		memstore.New,
		fx.Annotate(
			func(s *memstore.Store) *memstore.Store { return s },
			fx.As(new(shared.UnitOfWork)),
		),
		fx.Annotate(
			func(s *memstore.Store) *memstore.Store { return s },
			fx.As(new(shared.AvailabilityChecker)),
		),
		fx.Annotate(
			func(s *memstore.Store) *memstore.Store { return s },
			fx.As(new(queries.ReservationReadStore)),
		),
		fx.Annotate(
			func(s *memstore.Store) *memstore.Store { return s },
			fx.As(new(queries.StayReadStore)),
		),
	),
)
