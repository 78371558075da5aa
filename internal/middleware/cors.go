package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quicksched/internal/model"
)

// CORS allows browser clients to reach the API. Production deployments sit
// behind a gateway that sets its own policy, so the permissive headers are
// only emitted outside production.
func (m Middleware) CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.cfg.Environment == model.EnvironmentProduction {
			c.Next()
			return
		}

		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
