package http

import (
	"github.com/gin-gonic/gin"
)

// processAuthorizationReq binds and validates the authorization request body.
func (h *handler) processAuthorizationReq(c *gin.Context) (authorizationReq, error) {
	var req authorizationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processAppointmentReq binds and validates the appointment request body.
func (h *handler) processAppointmentReq(c *gin.Context) (appointmentReq, error) {
	var req appointmentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
