package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"storefront-partners/internal/domain/auth"
	"storefront-partners/internal/handler/api"
	"storefront-partners/internal/handler/middleware"
	"storefront-partners/internal/infra/ratelimit"
	"storefront-partners/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	fx.In

	Referral   *api.ReferralHandler
	Coupon     *api.CouponHandler
	Order      *api.OrderHandler
	Commission *api.CommissionHandler
	Partner    *api.PartnerHandler
	Payout     *api.PayoutHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware, limiter ratelimit.Limiter) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, cfg, h, authMiddleware, limiter)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware, limiter ratelimit.Limiter) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		// Storefront traffic from browsers; no token, throttled per client.
		throttle := []gin.HandlerFunc{middleware.RateLimit(limiter, cfg.RateLimit)}
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/referrals/clicks", Handler: h.Referral.RecordClick, Mw: throttle},
			{Method: http.MethodPost, Path: "/coupons/validate", Handler: h.Coupon.Validate, Mw: throttle},
		})

		service := apiGroup.Group("")
		service.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(auth.RoleService))
		addRoutes(service, []route{
			{Method: http.MethodPost, Path: "/attribution/resolve", Handler: h.Order.Resolve},
			{Method: http.MethodPost, Path: "/orders/finalize", Handler: h.Order.Finalize},
			{Method: http.MethodPost, Path: "/commissions", Handler: h.Commission.Record},
		})

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(auth.RoleAdmin))
		{
			addRoutes(admin.Group("/partners"), []route{
				{Method: http.MethodPost, Path: "", Handler: h.Partner.Create},
				{Method: http.MethodGet, Path: "/:code", Handler: h.Partner.Get},
				{Method: http.MethodPatch, Path: "/:code", Handler: h.Partner.UpdateProfile},
				{Method: http.MethodPatch, Path: "/:code/status", Handler: h.Partner.ChangeStatus},
				{Method: http.MethodGet, Path: "/:code/commissions", Handler: h.Partner.ListCommissions},
				{Method: http.MethodGet, Path: "/:code/balance", Handler: h.Partner.GetBalance},
			})
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/coupons", Handler: h.Coupon.Create},
				{Method: http.MethodPost, Path: "/commissions/:id/review", Handler: h.Commission.Review},
				{Method: http.MethodPost, Path: "/payouts/run", Handler: h.Payout.RunCycle},
				{Method: http.MethodPost, Path: "/payouts/:id/settlement", Handler: h.Payout.ConfirmSettlement},
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
