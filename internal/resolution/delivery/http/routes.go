package http

import (
	"github.com/gin-gonic/gin"

	"meeting-conflict-resolver/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Both
// endpoints are rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	resolutions := rg.Group("/resolutions")
	{
		resolutions.POST("/resolve", mw.RateLimit(), h.Resolve)
		resolutions.POST("/resolve-direct", mw.RateLimit(), h.ResolveDirect)
	}
}
