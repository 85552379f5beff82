package components

import (
	"github.com/nivekneved/travellounge-sub002/internal/infra/readstore"
	repo_impl "github.com/nivekneved/travellounge-sub002/internal/infra/repository"
	"github.com/nivekneved/travellounge-sub002/internal/usecase"
	"github.com/nivekneved/travellounge-sub002/internal/usecase/commands"
	"github.com/nivekneved/travellounge-sub002/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		// Write side
		fx.Annotate(
			repo_impl.NewCatalogRepository,
			fx.As(new(commands.CatalogRepository)),
		),
		fx.Annotate(
			repo_impl.NewLedgerRepository,
			fx.As(new(commands.LedgerRepository)),
		),
		fx.Annotate(
			repo_impl.NewInquiryRepository,
			fx.As(new(commands.InquiryRepository)),
		),
		fx.Annotate(
			repo_impl.NewStaffRepository,
			fx.As(new(usecase.StaffRepository)),
		),
		// Read side
		fx.Annotate(
			readstore.NewCatalogReadStore,
			fx.As(new(queries.CatalogReadStore)),
		),
		fx.Annotate(
			readstore.NewLedgerReadStore,
			fx.As(new(queries.LedgerReadStore)),
		),
		fx.Annotate(
			readstore.NewInquiryReadStore,
			fx.As(new(queries.InquiryReadStore)),
			fx.As(new(commands.InquiryFinder)),
		),
	),
)
