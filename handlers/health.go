package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/employeedir/employeedir/backend/go-services/internal/employee/store"
	"github.com/gin-gonic/gin"
)

var startTime = time.Now()

// RegisterHealth registers /health (liveness) and /ready (readiness).
// Readiness loads the document once; a store that cannot be read is not ready.
func RegisterHealth(rg gin.IRouter, st store.Store, backend string) {
	rg.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	rg.GET("/ready", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		deps := map[string]bool{}
		_, err := st.Load(ctx)
		deps["store"] = err == nil

		body := gin.H{"backend": backend, "deps": deps, "uptime": time.Since(startTime).String()}
		if err != nil {
			body["status"] = "not_ready"
			c.JSON(http.StatusServiceUnavailable, body)
			return
		}
		body["status"] = "ready"
		c.JSON(http.StatusOK, body)
	})
}
