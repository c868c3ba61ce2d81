package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"rental-market/internal/handler/api"
	"rental-market/internal/handler/middleware"
	"rental-market/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	propertyHandler *api.PropertyHandler,
	bookingHandler *api.BookingHandler,
	eventHandler *api.EventHandler,
	ledgerHandler *api.LedgerHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, propertyHandler, bookingHandler, eventHandler, ledgerHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	propertyHandler *api.PropertyHandler,
	bookingHandler *api.BookingHandler,
	eventHandler *api.EventHandler,
	ledgerHandler *api.LedgerHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: authHandler.Register},
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		properties := apiGroup.Group("/properties")
		{
			addRoutes(properties, []route{
				{Method: http.MethodGet, Path: "", Handler: propertyHandler.Search},
				{Method: http.MethodGet, Path: "/:id", Handler: propertyHandler.Get},
				{Method: http.MethodGet, Path: "/:id/available", Handler: propertyHandler.Available},
				{Method: http.MethodGet, Path: "/:id/availability", Handler: propertyHandler.AvailabilityRange},
				{Method: http.MethodGet, Path: "/:id/quote", Handler: propertyHandler.Quote},
			})

			propertiesAuth := properties.Group("")
			propertiesAuth.Use(authMiddleware.RequireAuth())
			addRoutes(propertiesAuth, []route{
				{Method: http.MethodPost, Path: "", Handler: propertyHandler.Create},
				{Method: http.MethodGet, Path: "/mine", Handler: propertyHandler.Mine},
				{Method: http.MethodPut, Path: "/:id/availability", Handler: propertyHandler.SetAvailability},
				{Method: http.MethodGet, Path: "/:id/bookings", Handler: propertyHandler.Bookings},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: bookingHandler.Create},
				{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.Get},
				{Method: http.MethodPost, Path: "/:id/pre-approve", Handler: bookingHandler.PreApprove},
				{Method: http.MethodPost, Path: "/:id/confirm", Handler: bookingHandler.Confirm},
				{Method: http.MethodPost, Path: "/:id/complete", Handler: bookingHandler.Complete},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: bookingHandler.Cancel},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/events", Handler: eventHandler.List},
		})

		ledger := apiGroup.Group("/ledger")
		ledger.Use(authMiddleware.RequireAuth())
		{
			addRoutes(ledger, []route{
				{Method: http.MethodPost, Path: "/faucet", Handler: ledgerHandler.Faucet},
				{Method: http.MethodGet, Path: "/balance", Handler: ledgerHandler.Balance},
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
