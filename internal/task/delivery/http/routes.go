package http

import (
	"github.com/gin-gonic/gin"

	"taskmate/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Static
// segments are registered before the :id parameter routes.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks")
	{
		tasks.POST("", mw.RateLimit(), h.Create)
		tasks.GET("", h.List)
		tasks.POST("/interpret", mw.RateLimit(), h.Interpret)
		tasks.GET("/calendar", h.Calendar)
		tasks.GET("/status", h.Status)
		tasks.PUT("/:id", mw.RateLimit(), h.Update)
		tasks.DELETE("/:id", mw.RateLimit(), h.Delete)
	}
}
