package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "healthcare-assistant/pkg/errors"
)

// OK sends 200 with the payload as-is.
// Success bodies are flat by contract: callers of /chat, /authorization and
// /appointment depend on the exact field layout, so no envelope is added.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Error sends an error response. HTTPErrors keep their status and message;
// anything else is treated as a bad request.
func Error(c *gin.Context, err error) {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		c.JSON(httpErr.Status, ErrResp{Error: httpErr.Message})
		return
	}

	c.JSON(http.StatusBadRequest, ErrResp{Error: err.Error()})
}

// BadRequest sends 400 with the error message.
func BadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrResp{Error: err.Error()})
}

// InternalError sends 500 with the error detail.
func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, ErrResp{
		Error:  DefaultErrorMessage,
		Detail: err.Error(),
	})
}
