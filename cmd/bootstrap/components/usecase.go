package components

import (
	"ramillete/internal/pkg/clock"
	"ramillete/internal/usecase/commands"
	"ramillete/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewRecipientCommands,
		commands.NewOfferingCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewRecipientQueries,
		queries.NewOfferingQueries,
	),
)
