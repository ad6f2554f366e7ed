package http

import (
	"github.com/gin-gonic/gin"

	"healthcare-assistant/pkg/response"
)

// Authorize godoc
// @Summary     Verify prior authorization
// @Description Issues a mocked prior-authorization record for a medical procedure.
// @Tags        Workflow
// @Accept      json
// @Produce     json
// @Param       body body authorizationReq true "Authorization request"
// @Success     200  {object} authorizationResp
// @Failure     400  {object} response.ErrResp "Bad Request"
// @Failure     500  {object} response.ErrResp "Internal Server Error"
// @Router      /authorization [POST]
func (h *handler) Authorize(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAuthorizationReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	output, err := h.uc.VerifyPriorAuth(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.VerifyPriorAuth: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newAuthorizationResp(output))
}

// Schedule godoc
// @Summary     Schedule an appointment
// @Description Issues a mocked appointment confirmation; the preferred date is echoed without conflict checking.
// @Tags        Workflow
// @Accept      json
// @Produce     json
// @Param       body body appointmentReq true "Appointment request"
// @Success     200  {object} appointmentResp
// @Failure     400  {object} response.ErrResp "Bad Request"
// @Failure     500  {object} response.ErrResp "Internal Server Error"
// @Router      /appointment [POST]
func (h *handler) Schedule(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAppointmentReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	output, err := h.uc.ScheduleAppointment(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ScheduleAppointment: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newAppointmentResp(output))
}
