package test

import (
	"net/http"

	"personal-assistant/internal/router"
	pkgLog "personal-assistant/pkg/log"

	"github.com/gin-gonic/gin"
)

type handler struct {
	l      pkgLog.Logger
	router router.Router
}

// HandleClassify reports the intent a command would be routed to without running it
// @Summary Classify a command
// @Description Returns the intent the dispatcher would select. No adapter is invoked.
// @Tags test
// @Accept json
// @Produce json
// @Param request body ClassifyRequest true "Command text"
// @Success 200 {object} ClassifyResponse
// @Failure 400 {object} ClassifyResponse
// @Router /test/classify [post]
func (h *handler) HandleClassify(c *gin.Context) {
	ctx := c.Request.Context()

	var req ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ClassifyResponse{
			Success: false,
			Error:   "Invalid request",
			Details: err.Error(),
		})
		return
	}

	out := h.router.Classify(ctx, req.Text)

	h.l.Infof(ctx, "internal.test.HandleClassify: text=%q intent=%s position=%d", req.Text, out.Intent, out.Position)

	c.JSON(http.StatusOK, ClassifyResponse{
		Success:    true,
		Intent:     string(out.Intent),
		Normalized: out.Normalized,
		Position:   out.Position,
		Text:       req.Text,
	})
}

// HandleRules lists the routing rules in evaluation order
// @Summary List routing rules
// @Description Intents in the order they are tested; the AI fallback is implicit
// @Tags test
// @Produce json
// @Success 200 {object} RulesResponse
// @Router /test/rules [get]
func (h *handler) HandleRules(c *gin.Context) {
	rules := h.router.Rules()
	intents := make([]string, 0, len(rules))
	for _, r := range rules {
		intents = append(intents, string(r.Intent))
	}
	c.JSON(http.StatusOK, RulesResponse{Intents: intents, Count: len(intents)})
}

// HandleHealthCheck returns the health status of test endpoints
// @Summary Test health check
// @Description Check if test endpoints are available
// @Tags test
// @Produce json
// @Success 200 {object} HealthCheckResponse
// @Router /test/health [get]
func (h *handler) HandleHealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthCheckResponse{
		Status:  "ok",
		Message: "Test endpoints are available",
	})
}
