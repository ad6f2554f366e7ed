package http

import (
	"github.com/gin-gonic/gin"

	"healthcare-assistant/pkg/response"
)

// Chat godoc
// @Summary     Classify a natural-language message
// @Description Routes a free-text message to a known intent and returns the fields needed to proceed, or an unknown reply.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "User message"
// @Success     200  {object} chatResp
// @Failure     400  {object} response.ErrResp "Bad Request"
// @Failure     500  {object} response.ErrResp "Classification failure"
// @Router      /chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	output, err := h.uc.Classify(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Classify: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newChatResp(output))
}
