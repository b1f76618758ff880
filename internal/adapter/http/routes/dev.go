package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// addDevRoutes registers the developer-only backend toggle. It is never
// mounted in release mode: flipping backends mid-session clears all
// session-scoped state.
func addDevRoutes(rg *gin.RouterGroup, backend *backendSwitch) {
	dev := rg.Group("/dev")
	{
		dev.GET("/backend", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"mode": string(backend.Mode())})
		})
		dev.POST("/backend", func(c *gin.Context) {
			mode := backend.Toggle()
			c.JSON(http.StatusOK, gin.H{"mode": string(mode)})
		})
	}
}
