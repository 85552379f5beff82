package components

import (
	"github.com/nivekneved/travellounge-sub002/internal/handler"
	"github.com/nivekneved/travellounge-sub002/internal/handler/api"
	"github.com/nivekneved/travellounge-sub002/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewSearchHandler,
		api.NewCatalogHandler,
		api.NewInquiryHandler,
		api.NewLedgerHandler,
		api.NewEventsHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	search *api.SearchHandler,
	catalog *api.CatalogHandler,
	inquiry *api.InquiryHandler,
	ledger *api.LedgerHandler,
	events *api.EventsHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:    auth,
		Search:  search,
		Catalog: catalog,
		Inquiry: inquiry,
		Ledger:  ledger,
		Events:  events,
	}
}
