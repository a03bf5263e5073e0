package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"tourdesk/internal/domain/staff"
	"tourdesk/internal/handler/api"
	"tourdesk/internal/handler/middleware"
	"tourdesk/internal/pkg/config"
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
	packageHandler *api.PackageHandler,
	quoteHandler *api.QuoteHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, packageHandler, quoteHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.NewLogger(cfg.Log).LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	packageHandler *api.PackageHandler,
	quoteHandler *api.QuoteHandler,
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
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		adminOnly := authMiddleware.RequireRoleAtLeast(staff.RoleAdmin)

		packages := apiGroup.Group("/packages")
		packages.Use(authMiddleware.RequireAuth())
		{
			addRoutes(packages, []route{
				{Method: http.MethodGet, Path: "", Handler: packageHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: packageHandler.Get},
				{Method: http.MethodPost, Path: "", Handler: packageHandler.Create, Mw: []gin.HandlerFunc{adminOnly}},
				{Method: http.MethodPut, Path: "/:id/pricing", Handler: packageHandler.UpdatePricing, Mw: []gin.HandlerFunc{adminOnly}},
				{Method: http.MethodDelete, Path: "/:id", Handler: packageHandler.Delete, Mw: []gin.HandlerFunc{adminOnly}},
			})
		}

		quotes := apiGroup.Group("/quotes")
		quotes.Use(authMiddleware.RequireAuth())
		{
			addRoutes(quotes, []route{
				{Method: http.MethodPost, Path: "", Handler: quoteHandler.Create},
				{Method: http.MethodGet, Path: "", Handler: quoteHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: quoteHandler.Get},
				{Method: http.MethodPatch, Path: "/:id", Handler: quoteHandler.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: quoteHandler.Delete},
				{Method: http.MethodPatch, Path: "/:id/price", Handler: quoteHandler.SetManualPrice},
				{Method: http.MethodPost, Path: "/:id/link", Handler: quoteHandler.Link},
				{Method: http.MethodPost, Path: "/:id/unlink", Handler: quoteHandler.Unlink},
				{Method: http.MethodPost, Path: "/:id/recalculate", Handler: quoteHandler.Recalculate},
				{Method: http.MethodPost, Path: "/:id/reset-price", Handler: quoteHandler.ResetPrice},
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
