package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fleetbook/internal/handler/api"
	"fleetbook/internal/handler/middleware"
	"fleetbook/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *middleware.Logger,
	authHandler *api.AuthHandler,
	bookingHandler *api.BookingHandler,
	availabilityHandler *api.AvailabilityHandler,
	fleetHandler *api.FleetHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, authHandler, bookingHandler, availabilityHandler, fleetHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	bookingHandler *api.BookingHandler,
	availabilityHandler *api.AvailabilityHandler,
	fleetHandler *api.FleetHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: bookingHandler.CreateBooking},
				{Method: http.MethodGet, Path: "", Handler: bookingHandler.GetMyBookings},
				{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.GetBooking},
				{Method: http.MethodPut, Path: "/:id", Handler: bookingHandler.UpdateBooking},
				{Method: http.MethodDelete, Path: "/:id", Handler: bookingHandler.DeleteBooking},
			})
		}

		boats := apiGroup.Group("/boats")
		boats.Use(authMiddleware.RequireAuth())
		{
			addRoutes(boats, []route{
				{Method: http.MethodGet, Path: "", Handler: availabilityHandler.GetBoats},
				{Method: http.MethodGet, Path: "/:id", Handler: availabilityHandler.GetBoat},
				{Method: http.MethodGet, Path: "/:id/availability", Handler: availabilityHandler.GetAvailableStarts},
				{Method: http.MethodGet, Path: "/:id/availability/ends", Handler: availabilityHandler.GetAvailableEnds},
			})

			admin := boats.Group("")
			admin.Use(authMiddleware.RequireAdmin())
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "", Handler: fleetHandler.CreateBoat},
			})
		}

		members := apiGroup.Group("/members")
		members.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
		{
			addRoutes(members, []route{
				{Method: http.MethodPost, Path: "", Handler: fleetHandler.RegisterMember},
			})
		}
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		case http.MethodPut:
			g.PUT(r.Path, r.Handler)
		case http.MethodPatch:
			g.PATCH(r.Path, r.Handler)
		case http.MethodDelete:
			g.DELETE(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}
