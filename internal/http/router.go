package api

import (
	stdhttp "net/http"

	intconfig "bennyevents/internal/config"
	"bennyevents/internal/domain"
	h "bennyevents/internal/http/handlers"
	"bennyevents/internal/http/middleware"
	"bennyevents/internal/utils"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env, handlers *h.Handlers) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		utils.Log().Warnw("failed to set trusted proxies", "error", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		auth := api.Group("/auth")
		auth.POST("/login", handlers.Login)
		auth.POST("/register", handlers.Register)

		bookings := api.Group("/bookings")
		bookings.Use(middleware.RequireAuth(handlers.JWTSecret, handlers.Roles))
		bookings.GET("", handlers.ListBookings)
		bookings.POST("", handlers.CreateBooking)
		bookings.GET("/stream", handlers.StreamBookings)
		bookings.GET("/stats", handlers.GetStats)
		bookings.GET("/:id", handlers.GetBooking)
		bookings.PATCH("/:id", handlers.PatchBooking)
		bookings.DELETE("/:id", middleware.RequireRoles(domain.RoleOperator), handlers.DeleteBooking)
		bookings.GET("/:id/summary-pdf", middleware.RequireRoles(domain.RoleOperator), handlers.GetBookingSummaryPDF)
	}

	return r
}
