package components

import (
	"space-booking/internal/domain/reservation"
	"space-booking/internal/pkg/clock"
	"space-booking/internal/usecase/commands"
	"space-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	reservation.NewFactory,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewUserCommands,
		commands.NewSpaceCommands,
		commands.NewCatalogCommands,
		commands.NewReservationCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewSpaceQueries,
		queries.NewCatalogQueries,
		queries.NewReservationQueries,
	),
)
