package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"azulhomes/internal/domain/user"
	"azulhomes/internal/handler/api"
	"azulhomes/internal/handler/middleware"
	"azulhomes/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth       *api.AuthHandler
	Listing    *api.ListingHandler
	Booking    *api.BookingHandler
	Contact    *api.ContactHandler
	Submission *api.SubmissionHandler
	Admin      *api.AdminHandler
	Hero       *api.HeroHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
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

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/properties", Handler: h.Listing.List},
			{Method: http.MethodGet, Path: "/properties/:id", Handler: h.Listing.Get},
			{Method: http.MethodPost, Path: "/bookings", Handler: h.Booking.Submit},
			{Method: http.MethodPost, Path: "/contact", Handler: h.Contact.Submit},
			{Method: http.MethodGet, Path: "/submissions/:id", Handler: h.Submission.Get},
			{Method: http.MethodGet, Path: "/hero", Handler: h.Hero.Current},
			{Method: http.MethodPost, Path: "/hero/select", Handler: h.Hero.Select},
		})

		adminGroup := apiGroup.Group("/admin")
		{
			// The dashboard surface is a demo; only the stored collections
			// demand a real token.
			addRoutes(adminGroup, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Admin.MockLogin},
				{Method: http.MethodGet, Path: "/overview", Handler: h.Admin.Overview},
				{Method: http.MethodGet, Path: "/properties", Handler: h.Admin.DashboardProperties},
				{Method: http.MethodPost, Path: "/properties/:id/toggle", Handler: h.Admin.ToggleAvailability},
				{Method: http.MethodPost, Path: "/reset", Handler: h.Admin.Reset},
			})

			stored := adminGroup.Group("")
			stored.Use(authMiddleware.RequireAuth())
			stored.Use(authMiddleware.RequireRoleAtLeast(user.RoleAdmin))
			addRoutes(stored, []route{
				{Method: http.MethodPost, Path: "/properties", Handler: h.Admin.CreateProperty},
				{Method: http.MethodPatch, Path: "/properties/:id", Handler: h.Admin.UpdateProperty},
				{Method: http.MethodDelete, Path: "/properties/:id", Handler: h.Admin.DeleteProperty},
				{Method: http.MethodGet, Path: "/bookings", Handler: h.Admin.ListBookings},
				{Method: http.MethodPost, Path: "/bookings", Handler: h.Admin.CreateBooking},
				{Method: http.MethodPatch, Path: "/bookings/:id/status", Handler: h.Admin.UpdateBookingStatus},
				{Method: http.MethodDelete, Path: "/bookings/:id", Handler: h.Admin.DeleteBooking},
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
