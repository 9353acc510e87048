package components

import (
	"dreamstay/internal/domain/reservation"
	"dreamstay/internal/pkg/clock"
	"dreamstay/internal/usecase/commands"
	"dreamstay/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		reservation.NewStandardPriceCalculator,
		fx.As(new(reservation.PriceCalculator)),
	),
	fx.Annotate(
		reservation.NewRandomCodeGenerator,
		fx.As(new(reservation.CodeGenerator)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewReservationCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewSearchQueries,
		queries.NewPricingQueries,
		queries.NewReservationQueries,
		queries.NewStayQueries,
	),
)
