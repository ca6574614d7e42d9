package api

import (
	"log"
	stdhttp "net/http"

	intconfig "backend/internal/config"
	h "backend/internal/http/handlers"
	"backend/internal/http/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery())

	// The public site and the admin panel are static pages served elsewhere;
	// the API stays permissive like the original deployment.
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsCfg.AllowHeaders = []string{"Content-Type", "Authorization", "Accept", "Origin"}
	r.Use(cors.New(corsCfg))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
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

		// Catalog
		destinations := api.Group("/destinations")
		destinations.GET("", h.GetDestinations)
		destinations.GET("/:id", h.GetDestinationByID)
		destinations.POST("/:id/image", h.UpdateDestinationImage)

		packages := api.Group("/packages")
		packages.GET("", h.GetPackages)
		packages.GET("/destination/:id", h.GetPackagesByDestination)
		packages.GET("/:id", h.GetPackageByID)

		// Bookings
		bookings := api.Group("/bookings")
		bookings.POST("", h.CreateBooking(env))
		bookings.GET("", h.GetBookings)
		bookings.GET("/:id/voucher", h.GetBookingVoucherPDF)
		bookings.PUT("/:id/status", h.UpdateBookingStatus)
		bookings.DELETE("/:id", h.DeleteBooking)

		// Admin
		admin := api.Group("/admin")
		admin.POST("/login", h.AdminLogin(env))
	}

	return r
}
