package http

import (
	"github.com/gin-gonic/gin"

	"personal-assistant/internal/middleware"
)

// RegisterRoutes maps the assistant's public routes. The root group carries the
// index page, /run and /email; api carries the JSON API.
func RegisterRoutes(root *gin.RouterGroup, api *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	root.GET("/", h.Index)
	root.POST("/run", mw.RateLimit(), h.Run)
	root.POST("/email", mw.RateLimit(), h.Email)

	calendar := api.Group("/calendar")
	{
		calendar.GET("/events", h.ListEvents)
	}
}
