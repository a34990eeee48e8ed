package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"shareit/internal/handler/api"
	"shareit/internal/handler/middleware"
	"shareit/internal/pkg/config"
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
	userHandler *api.UserHandler,
	itemHandler *api.ItemHandler,
	bookingHandler *api.BookingHandler,
	requestHandler *api.RequestHandler,
	identity *middleware.IdentityMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, userHandler, itemHandler, bookingHandler, requestHandler, identity)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	userHandler *api.UserHandler,
	itemHandler *api.ItemHandler,
	bookingHandler *api.BookingHandler,
	requestHandler *api.RequestHandler,
	identity *middleware.IdentityMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Users carry no identity header; they are the identity source.
	users := engine.Group("/users")
	{
		addRoutes(users, []route{
			{Method: http.MethodPost, Path: "", Handler: userHandler.CreateUser},
			{Method: http.MethodGet, Path: "", Handler: userHandler.ListUsers},
			{Method: http.MethodGet, Path: "/:userId", Handler: userHandler.GetUser},
			{Method: http.MethodPatch, Path: "/:userId", Handler: userHandler.PatchUser},
			{Method: http.MethodDelete, Path: "/:userId", Handler: userHandler.DeleteUser},
		})
	}

	items := engine.Group("/items")
	items.Use(identity.RequireIdentity())
	{
		addRoutes(items, []route{
			{Method: http.MethodPost, Path: "", Handler: itemHandler.CreateItem},
			{Method: http.MethodGet, Path: "", Handler: itemHandler.ListOwnItems},
			{Method: http.MethodGet, Path: "/search", Handler: itemHandler.SearchItems},
			{Method: http.MethodGet, Path: "/:itemId", Handler: itemHandler.GetItem},
			{Method: http.MethodPatch, Path: "/:itemId", Handler: itemHandler.PatchItem},
			{Method: http.MethodPost, Path: "/:itemId/comment", Handler: itemHandler.AddComment},
		})
	}

	bookings := engine.Group("/bookings")
	bookings.Use(identity.RequireIdentity())
	{
		addRoutes(bookings, []route{
			{Method: http.MethodPost, Path: "", Handler: bookingHandler.CreateBooking},
			{Method: http.MethodGet, Path: "", Handler: bookingHandler.ListBookings},
			{Method: http.MethodGet, Path: "/owner", Handler: bookingHandler.ListOwnerBookings},
			{Method: http.MethodGet, Path: "/:bookingId", Handler: bookingHandler.GetBooking},
			{Method: http.MethodPatch, Path: "/:bookingId", Handler: bookingHandler.DecideBooking},
		})
	}

	requests := engine.Group("/requests")
	requests.Use(identity.RequireIdentity())
	{
		addRoutes(requests, []route{
			{Method: http.MethodPost, Path: "", Handler: requestHandler.CreateRequest},
			{Method: http.MethodGet, Path: "", Handler: requestHandler.ListOwnRequests},
			{Method: http.MethodGet, Path: "/all", Handler: requestHandler.ListOtherRequests},
			{Method: http.MethodGet, Path: "/:requestId", Handler: requestHandler.GetRequest},
		})
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
