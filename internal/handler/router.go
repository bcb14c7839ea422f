package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"ticketqueen/internal/handler/api"
	"ticketqueen/internal/handler/middleware"
	"ticketqueen/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Event    *api.EventHandler
	Purchase *api.PurchaseHandler
	Ticket   *api.TicketHandler
	Cart     *api.CartHandler
	Auth     *api.AuthHandler
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *slog.Logger,
	eventHandler *api.EventHandler,
	purchaseHandler *api.PurchaseHandler,
	ticketHandler *api.TicketHandler,
	cartHandler *api.CartHandler,
	authHandler *api.AuthHandler,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, cfg, Handlers{
		Event:    eventHandler,
		Purchase: purchaseHandler,
		Ticket:   ticketHandler,
		Cart:     cartHandler,
		Auth:     authHandler,
	})
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers) {
	limitBody := middleware.MaxBodyBytes(cfg.Server.MaxBodyBytes)

	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/signup", Handler: h.Auth.Signup},
			{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			{Method: http.MethodPost, Path: "/purchase", Handler: h.Purchase.Submit, Mw: []gin.HandlerFunc{limitBody}},
			{Method: http.MethodPost, Path: "/cart/reconcile", Handler: h.Cart.Reconcile, Mw: []gin.HandlerFunc{limitBody}},
			{Method: http.MethodGet, Path: "/users/:buyerId/tickets", Handler: h.Ticket.ListByBuyer},
			{Method: http.MethodPost, Path: "/tickets/:id/use", Handler: h.Ticket.Use},
		})

		events := apiGroup.Group("/events")
		{
			addRoutes(events, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Event.List},
				{Method: http.MethodPost, Path: "", Handler: h.Event.Create},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Event.Get},
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
