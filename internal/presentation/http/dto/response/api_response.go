package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/posledger/pkg/apperror"
)

// OK sends a 200 response with ok:true merged into the payload
func OK(c *gin.Context, data gin.H) {
	Success(c, http.StatusOK, data)
}

// Success sends a success response with ok:true merged into the payload
func Success(c *gin.Context, statusCode int, data gin.H) {
	body := gin.H{"ok": true}
	for k, v := range data {
		body[k] = v
	}
	c.JSON(statusCode, body)
}

// Error sends an error response. The body is {"error": message} plus any
// field errors and details carried by the AppError.
func Error(c *gin.Context, err error) {
	appErr := apperror.GetAppError(err)
	body := gin.H{"error": appErr.Message}
	if len(appErr.Errors) > 0 {
		body["errors"] = appErr.Errors
	}
	for k, v := range appErr.Details {
		body[k] = v
	}
	c.JSON(appErr.Code, body)
}

// AbortWithError sends an error response and stops the handler chain
func AbortWithError(c *gin.Context, err error) {
	Error(c, err)
	c.Abort()
}

// NotFound sends the bare NOT_FOUND response
func NotFound(c *gin.Context) {
	Error(c, apperror.ErrNotFound)
}

// BadRequest sends a 400 Bad Request response
func BadRequest(c *gin.Context, message string) {
	Error(c, apperror.NewBadRequestError(message))
}
