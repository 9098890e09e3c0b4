package http

import (
	"time"

	"github.com/gin-gonic/gin"
)

// processResolveReq binds the resolve request body and resolves its
// window expressions to absolute times.
func (h *handler) processResolveReq(c *gin.Context) (resolveReq, time.Time, time.Time, error) {
	var req resolveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, time.Time{}, time.Time{}, err
	}

	windowStart, windowEnd, err := h.dateMath.ParseWindow(
		req.WindowStart, req.WindowEnd, h.defaults.WindowDays, time.Now())
	if err != nil {
		return req, time.Time{}, time.Time{}, err
	}
	return req, windowStart, windowEnd, nil
}

// processResolveDirectReq binds and validates the direct resolve body.
func (h *handler) processResolveDirectReq(c *gin.Context) (resolveDirectReq, error) {
	var req resolveDirectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	for _, m := range req.Meetings {
		if !m.EndTime.After(m.StartTime) {
			return req, errMeetingWindow
		}
	}
	return req, nil
}
