package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"carflow/internal/domain/user"
	"carflow/internal/handler/api"
	"carflow/internal/handler/middleware"
	"carflow/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, authHandler *api.AuthHandler, inquiryHandler *api.InquiryHandler, authMiddleware *middleware.AuthMiddleware, rateLimiter *middleware.RateLimiter) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, inquiryHandler, authMiddleware, rateLimiter)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, authHandler *api.AuthHandler, inquiryHandler *api.InquiryHandler, authMiddleware *middleware.AuthMiddleware, rateLimiter *middleware.RateLimiter) {
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
				{Method: http.MethodPost, Path: "/refresh", Handler: authHandler.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		inquiries := apiGroup.Group("/inquiries")
		inquiries.Use(authMiddleware.RequireAuth())
		{
			addRoutes(inquiries, []route{
				{Method: http.MethodPost, Path: "/cash", Handler: inquiryHandler.CreateCash, Mw: []gin.HandlerFunc{rateLimiter.LimitSubmit()}},
				{Method: http.MethodPost, Path: "/installment", Handler: inquiryHandler.CreateInstallment, Mw: []gin.HandlerFunc{rateLimiter.LimitSubmit()}},
				{Method: http.MethodGet, Path: "", Handler: inquiryHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: inquiryHandler.Get},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: inquiryHandler.SetStatus},
				{Method: http.MethodPost, Path: "/:id/assign", Handler: inquiryHandler.Assign, Mw: []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(user.RoleAdmin)}},
				{Method: http.MethodPost, Path: "/:id/down-payment", Handler: inquiryHandler.SetDownPayment, Mw: []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(user.RoleExpert)}},
			})
		}

		experts := apiGroup.Group("/experts")
		experts.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleExpert))
		{
			addRoutes(experts, []route{
				{Method: http.MethodGet, Path: "", Handler: inquiryHandler.ListExperts},
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
