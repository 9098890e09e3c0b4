package http

import (
	"github.com/gin-gonic/gin"

	"meeting-conflict-resolver/internal/model"
	"meeting-conflict-resolver/pkg/response"
)

// Resolve godoc
// @Summary     Resolve calendar conflicts
// @Description Reads the given users' calendars in a time window, detects conflicting meetings, and proposes (or books) replacement slots.
// @Tags        Resolution
// @Accept      json
// @Produce     json
// @Param       body body resolveReq true "Resolution request"
// @Success     200 {object} resolveResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/resolutions/resolve [POST]
func (h *handler) Resolve(c *gin.Context) {
	ctx := c.Request.Context()

	req, windowStart, windowEnd, err := h.processResolveReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	sc := h.scope(c, req.Users)
	output, err := h.uc.Resolve(ctx, sc, req.toInput(windowStart, windowEnd, h.defaults))
	if err != nil {
		h.l.Errorf(ctx, "uc.Resolve: %v", err)
		if badRequest(err) {
			response.Error(c, err, nil)
			return
		}
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newResolveResp(output))
}

// ResolveDirect godoc
// @Summary     Resolve pre-identified conflicts
// @Description Runs the resolution pipeline on caller-supplied conflicting meetings with pre-scored candidate slots. No calendar reads are performed.
// @Tags        Resolution
// @Accept      json
// @Produce     json
// @Param       body body resolveDirectReq true "Direct resolution request"
// @Success     200 {object} resolveResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/resolutions/resolve-direct [POST]
func (h *handler) ResolveDirect(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processResolveDirectReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	sc := h.scope(c, nil)
	output, err := h.uc.ResolveDirect(ctx, sc, req.toInput(h.defaults))
	if err != nil {
		h.l.Errorf(ctx, "uc.ResolveDirect: %v", err)
		if badRequest(err) {
			response.Error(c, err, nil)
			return
		}
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newResolveResp(output))
}

// scope derives the caller identity from the X-User-Email header,
// falling back to the first requested user.
func (h *handler) scope(c *gin.Context, users []string) model.Scope {
	if email := c.GetHeader("X-User-Email"); email != "" {
		return model.Scope{UserID: email}
	}
	if len(users) > 0 {
		return model.Scope{UserID: users[0]}
	}
	return model.Scope{}
}
