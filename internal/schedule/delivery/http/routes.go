package http

import (
	"github.com/gin-gonic/gin"

	"quicksched/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. All routes
// share the per-client rate limit.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	schedules := rg.Group("/schedules")
	{
		schedules.POST("/quick", mw.RateLimit(), h.QuickAdd)
		schedules.GET("", mw.RateLimit(), h.List)
		schedules.GET("/:id", mw.RateLimit(), h.Detail)
		schedules.DELETE("/:id", mw.RateLimit(), h.Delete)
	}
}
