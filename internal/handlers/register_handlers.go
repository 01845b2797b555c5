package handlers

import (
	"time"

	portssvc "github.com/fincontrol/fincontrol_app/internal/core/ports/services"
	"github.com/fincontrol/fincontrol_app/internal/core/schedule"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// init registers the "localdate" binding validation used by every request
// field carrying a YYYY-MM-DD calendar date.
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("localdate", func(fl validator.FieldLevel) bool {
			_, err := schedule.ParseLocalDate(fl.Field().String(), time.UTC)
			return err == nil
		})
	}
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	setupAPIV1Routes(r, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1")

	registerCategoryRoutes(v1, services.Category)
	registerFixedItemRoutes(v1, services.FixedItem, services.Variation)
	registerTransactionRoutes(v1, services.Transaction)
	registerPurchaseRoutes(v1, services.Purchase)
	registerReportingRoutes(v1, services.Reporting)
}
