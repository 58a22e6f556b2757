package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"personal-assistant/internal/command"
	"personal-assistant/pkg/response"
)

// Index godoc
// @Summary     Web console
// @Description Serves the HTML page that posts commands to /run.
// @Tags        Assistant
// @Produce     html
// @Success     200 {string} string "HTML page"
// @Router      / [GET]
func (h *handler) Index(c *gin.Context) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := indexTmpl.Execute(c.Writer, nil); err != nil {
		h.l.Errorf(c.Request.Context(), "internal.command.delivery.http.Index: %v", err)
	}
}

// Run godoc
// @Summary     Run a command
// @Description Dispatches a free-text command. url is set only when the command opens a website.
// @Tags        Assistant
// @Accept      x-www-form-urlencoded
// @Produce     json
// @Param       command formData string true "Command text"
// @Success     200 {object} runResp
// @Router      /run [POST]
func (h *handler) Run(c *gin.Context) {
	ctx := c.Request.Context()
	defer h.recoverMessage(c)

	req, err := h.processRunReq(c)
	if err != nil {
		c.JSON(http.StatusOK, messageResp{Message: command.ErrorPrefix + err.Error()})
		return
	}
	if req.Command == "" {
		c.JSON(http.StatusOK, runResp{Message: msgNoCommand})
		return
	}

	res := h.uc.Dispatch(ctx, req.Command)
	c.JSON(http.StatusOK, newRunResp(res))
}

// Email godoc
// @Summary     Send an email
// @Description Sends a plain-text email through Gmail. An empty body is drafted by AI from context.
// @Tags        Assistant
// @Accept      x-www-form-urlencoded
// @Produce     json
// @Param       to      formData string true  "Recipient"
// @Param       subject formData string false "Subject"
// @Param       body    formData string false "Body"
// @Param       context formData string false "What the recipient was selected for, used to draft the body"
// @Success     200 {object} messageResp
// @Router      /email [POST]
func (h *handler) Email(c *gin.Context) {
	ctx := c.Request.Context()
	defer h.recoverMessage(c)

	req, err := h.processEmailReq(c)
	if err != nil {
		c.JSON(http.StatusOK, messageResp{Message: command.ErrorPrefix + err.Error()})
		return
	}

	res := h.uc.SendEmail(ctx, req.toInput())
	c.JSON(http.StatusOK, messageResp{Message: res.Message})
}

// ListEvents godoc
// @Summary     Upcoming calendar events
// @Description Lists events from the signed-in Google Calendar.
// @Tags        Calendar
// @Produce     json
// @Param       days query int false "Days ahead (default: 7)"
// @Param       max  query int false "Maximum events (default: 10)"
// @Success     200 {object} listEventsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     503 {object} response.Resp "Calendar not configured"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/calendar/events [GET]
func (h *handler) ListEvents(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListEventsReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	events, err := h.calendar.Upcoming(ctx, req.Days, req.Max)
	if err != nil {
		if errors.Is(err, command.ErrCalendarUnavailable) {
			response.ServiceUnavailable(c, msgCalendarNotEnabled)
			return
		}
		h.l.Errorf(ctx, "calendar.Upcoming: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, newListEventsResp(events))
}

// recoverMessage turns a panic in the shim into {"message": "Error: ..."}.
func (h *handler) recoverMessage(c *gin.Context) {
	if r := recover(); r != nil {
		h.l.Errorf(c.Request.Context(), "internal.command.delivery.http: panic: %v", r)
		c.JSON(http.StatusOK, messageResp{Message: fmt.Sprintf("%s%v", command.ErrorPrefix, r)})
	}
}
