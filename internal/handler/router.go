package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/nivekneved/travellounge-sub002/internal/domain/staff"
	"github.com/nivekneved/travellounge-sub002/internal/handler/api"
	"github.com/nivekneved/travellounge-sub002/internal/handler/middleware"
	"github.com/nivekneved/travellounge-sub002/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth    *api.AuthHandler
	Search  *api.SearchHandler
	Catalog *api.CatalogHandler
	Inquiry *api.InquiryHandler
	Ledger  *api.LedgerHandler
	Events  *api.EventsHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.NewLogger(cfg.Log).LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		// Public storefront surface
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/search", Handler: h.Search.Search},
			{Method: http.MethodGet, Path: "/catalog", Handler: h.Catalog.ListCatalog},
			{Method: http.MethodGet, Path: "/catalog/:id", Handler: h.Catalog.GetEntry},
			{Method: http.MethodGet, Path: "/categories", Handler: h.Catalog.ListCategories},
			{Method: http.MethodPost, Path: "/inquiries", Handler: h.Inquiry.Submit},
			{Method: http.MethodGet, Path: "/ledger/events", Handler: h.Events.Stream},
		})

		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth())
		{
			editor := authMiddleware.RequireRoleAtLeast(staff.RoleEditor)
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/catalog", Handler: h.Catalog.CreateEntry, Mw: []gin.HandlerFunc{editor}},
				{Method: http.MethodPut, Path: "/catalog/:id", Handler: h.Catalog.UpdateEntry, Mw: []gin.HandlerFunc{editor}},
				{Method: http.MethodDelete, Path: "/catalog/:id", Handler: h.Catalog.DeleteEntry, Mw: []gin.HandlerFunc{editor}},
				{Method: http.MethodPost, Path: "/catalog/:id/resources", Handler: h.Catalog.AddResource, Mw: []gin.HandlerFunc{editor}},
				{Method: http.MethodDelete, Path: "/resources/:id", Handler: h.Catalog.DeleteResource, Mw: []gin.HandlerFunc{editor}},
				{Method: http.MethodPut, Path: "/ledger", Handler: h.Ledger.UpsertRange, Mw: []gin.HandlerFunc{editor}},
				{Method: http.MethodGet, Path: "/inquiries", Handler: h.Inquiry.List},
				{Method: http.MethodGet, Path: "/inquiries/:id", Handler: h.Inquiry.Get},
				{Method: http.MethodPut, Path: "/inquiries/:id/status", Handler: h.Inquiry.UpdateStatus, Mw: []gin.HandlerFunc{editor}},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
