package test

import (
	"personal-assistant/internal/router"
	pkgLog "personal-assistant/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler is the interface for the test handler
type Handler interface {
	HandleClassify(c *gin.Context)
	HandleRules(c *gin.Context)
	HandleHealthCheck(c *gin.Context)
}

// New creates a new test handler
func New(l pkgLog.Logger, router router.Router) Handler {
	return &handler{
		l:      l,
		router: router,
	}
}

// RegisterRoutes maps the debug routes under rg.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.POST("/classify", h.HandleClassify)
	rg.GET("/rules", h.HandleRules)
	rg.GET("/health", h.HandleHealthCheck)
}
