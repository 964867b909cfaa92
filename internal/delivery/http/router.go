package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/yoxaz-verse/obaol-rate-service/internal/delivery/http/handlers"
	"github.com/yoxaz-verse/obaol-rate-service/internal/delivery/http/middleware"
)

type Handlers struct {
	VariantRate   *handlers.VariantRateHandler
	DisplayedRate *handlers.DisplayedRateHandler
	Enquiry       *handlers.EnquiryHandler
	Activity      *handlers.ActivityHandler
	Project       *handlers.ProjectHandler
}

// NewRouter wires the REST surface. Caller identity comes from the gateway
// headers; there is no auth enforcement here beyond role-based masking.
func NewRouter(h Handlers) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.Identity())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	{
		rates := v1.Group("/variant-rates")
		{
			rates.POST("", h.VariantRate.Create)
			rates.GET("", h.VariantRate.List)
			rates.GET("/:id", h.VariantRate.GetByID)
			rates.PATCH("/:id", h.VariantRate.Update)
			rates.DELETE("/:id", h.VariantRate.Delete)
		}

		displayed := v1.Group("/displayed-rates")
		{
			displayed.POST("", h.DisplayedRate.Create)
			displayed.GET("", h.DisplayedRate.List)
		}

		enquiries := v1.Group("/enquiries")
		{
			enquiries.POST("", h.Enquiry.Create)
			enquiries.GET("", h.Enquiry.List)
			enquiries.GET("/:id", h.Enquiry.GetByID)
			enquiries.PATCH("/:id", h.Enquiry.Update)
		}

		activities := v1.Group("/activities")
		{
			activities.POST("", h.Activity.Create)
			activities.GET("/:id", h.Activity.GetByID)
			activities.PATCH("/:id", h.Activity.Update)
			activities.DELETE("/:id", h.Activity.Delete)
		}

		v1.GET("/projects/:id", h.Project.GetByID)
	}

	return router
}
