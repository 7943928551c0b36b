package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"ramillete/internal/handler/api"
	"ramillete/internal/handler/httperr"
	"ramillete/internal/handler/middleware"
	"ramillete/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, recipientHandler *api.RecipientHandler, offeringHandler *api.OfferingHandler, imageHandler *api.ImageHandler, healthHandler *api.HealthHandler) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, recipientHandler, offeringHandler, imageHandler, healthHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, recipientHandler *api.RecipientHandler, offeringHandler *api.OfferingHandler, imageHandler *api.ImageHandler, healthHandler *api.HealthHandler) {
	engine.GET("/health", healthHandler.Check)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		recipients := apiGroup.Group("/recipients")
		{
			addRoutes(recipients, []route{
				{Method: http.MethodPost, Path: "", Handler: recipientHandler.Create},
				{Method: http.MethodGet, Path: "/:id", Handler: recipientHandler.Get},
				{Method: http.MethodGet, Path: "/:id/offerings", Handler: offeringHandler.List},
				{Method: http.MethodPost, Path: "/:id/offerings", Handler: offeringHandler.Create},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/images", Handler: imageHandler.Upload},
		})
	}

	engine.NoRoute(notFound)
}

func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, httperr.Response{
		Status:  http.StatusNotFound,
		Error:   "Not Found",
		Message: "Not found",
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
