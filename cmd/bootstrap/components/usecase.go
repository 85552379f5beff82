package components

import (
	"github.com/nivekneved/travellounge-sub002/internal/pkg/categories"
	"github.com/nivekneved/travellounge-sub002/internal/pkg/clock"
	"github.com/nivekneved/travellounge-sub002/internal/pkg/config"
	"github.com/nivekneved/travellounge-sub002/internal/usecase"
	"github.com/nivekneved/travellounge-sub002/internal/usecase/commands"
	"github.com/nivekneved/travellounge-sub002/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		func(catalog queries.CatalogReadStore, ledger queries.LedgerReadStore, aliases categories.AliasTable, cfg config.Config) queries.SearchQueries {
			return queries.NewSearchQueries(catalog, ledger, aliases, cfg.Search.MaxResults)
		},
		func(catalog queries.CatalogReadStore, aliases categories.AliasTable, cfg config.Config) queries.CatalogQueries {
			return queries.NewCatalogQueries(catalog, aliases, cfg.Search.MaxResults)
		},
		queries.NewInquiryQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewCatalogCommands,
		commands.NewLedgerCommands,
		commands.NewInquiryCommands,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewAuthUseCase,
		usecase.NewTokenValidator,
	),
)
