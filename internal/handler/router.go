package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"dozzze-checkout/internal/handler/api"
	"dozzze-checkout/internal/handler/middleware"
	"dozzze-checkout/internal/pkg/config"
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
	gatherer prometheus.Gatherer,
	cartHandler *api.CartHandler,
	discountHandler *api.DiscountHandler,
	checkoutHandler *api.CheckoutHandler,
	availabilityHandler *api.AvailabilityHandler,
	reservationHandler *api.ReservationHandler,
	sessionHandler *api.SessionHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, gatherer, cartHandler, discountHandler, checkoutHandler, availabilityHandler, reservationHandler, sessionHandler, authMiddleware)
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
	gatherer prometheus.Gatherer,
	cartHandler *api.CartHandler,
	discountHandler *api.DiscountHandler,
	checkoutHandler *api.CheckoutHandler,
	availabilityHandler *api.AvailabilityHandler,
	reservationHandler *api.ReservationHandler,
	sessionHandler *api.SessionHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/availability", Handler: availabilityHandler.Search},
		})

		authed := apiGroup.Group("")
		authed.Use(authMiddleware.RequireSession())
		{
			cart := authed.Group("/cart")
			{
				addRoutes(cart, []route{
					{Method: http.MethodGet, Path: "", Handler: cartHandler.Get},
					{Method: http.MethodDelete, Path: "", Handler: cartHandler.Clear},
					{Method: http.MethodPost, Path: "/items", Handler: cartHandler.AddItem},
					{Method: http.MethodPatch, Path: "/items/:index", Handler: cartHandler.UpdateItem},
					{Method: http.MethodDelete, Path: "/items/:index", Handler: cartHandler.RemoveItem},
					{Method: http.MethodPost, Path: "/discount", Handler: discountHandler.Apply},
					{Method: http.MethodDelete, Path: "/discount", Handler: discountHandler.Remove},
				})
			}

			checkout := authed.Group("/checkout")
			{
				addRoutes(checkout, []route{
					{Method: http.MethodPost, Path: "", Handler: checkoutHandler.Submit},
					{Method: http.MethodGet, Path: "/payment", Handler: checkoutHandler.PaymentArgs},
					{Method: http.MethodPost, Path: "/payment/return", Handler: checkoutHandler.PaymentReturn},
				})
			}

			addRoutes(authed, []route{
				{Method: http.MethodGet, Path: "/reservations/my", Handler: reservationHandler.My},
				{Method: http.MethodPost, Path: "/session/logout", Handler: sessionHandler.Logout},
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
