package http

import (
	"github.com/gin-gonic/gin"
)

// processRunReq binds the command form field. A missing field binds as "".
func (h *handler) processRunReq(c *gin.Context) (runReq, error) {
	var req runReq
	if err := c.ShouldBind(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processEmailReq binds the email form fields.
func (h *handler) processEmailReq(c *gin.Context) (emailReq, error) {
	var req emailReq
	if err := c.ShouldBind(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processListEventsReq binds and validates the listing window.
func (h *handler) processListEventsReq(c *gin.Context) (listEventsReq, error) {
	var req listEventsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	if err := req.validate(); err != nil {
		return req, err
	}
	if req.Days == 0 {
		req.Days = defaultEventDays
	}
	if req.Max == 0 {
		req.Max = defaultEventResults
	}
	return req, nil
}
