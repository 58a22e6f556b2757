package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	cmdHTTP "personal-assistant/internal/command/delivery/http"
	"personal-assistant/internal/middleware"
)

// setupCommandDomain registers the assistant routes: GET /, POST /run, POST /email
// and GET /api/v1/calendar/events.
func (srv HTTPServer) setupCommandDomain(ctx context.Context, root, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := cmdHTTP.New(srv.l, srv.commandUC, srv.calendar)
	cmdHTTP.RegisterRoutes(root, api, h, mw)

	srv.l.Infof(ctx, "Command domain registered")
	return nil
}
