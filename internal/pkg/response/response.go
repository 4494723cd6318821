package response

import (
	"github.com/gin-gonic/gin"

	"gymhub/internal/pkg/apperr"
)

func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

func Message(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"message": message,
		"data":    data,
	})
}

func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

func ErrorWithDetails(c *gin.Context, statusCode int, code string, message string, details any) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}

// FromError renders any service error using its apperr tag. Internal
// errors keep their message out of the body.
func FromError(c *gin.Context, err error) {
	ae := apperr.From(err)
	status := apperr.HTTPStatus(ae.Kind)

	message := ae.Message
	if ae.Kind == apperr.KindInternal {
		message = "internal server error"
		_ = c.Error(err)
	}

	if ae.Details != nil {
		ErrorWithDetails(c, status, ae.Code, message, ae.Details)
		return
	}
	Error(c, status, ae.Code, message)
}
