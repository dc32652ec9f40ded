package utils

import (
	"github.com/gin-gonic/gin"
)

// ErrorResponse mengirim response error dalam format JSON
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"statusCode": statusCode,
		"error":      KindUpstreamFailure,
		"message":    message,
	})
}

// CustomErrorResponse sends a taxonomy error with its status code and detail.
func CustomErrorResponse(c *gin.Context, err *CustomError) {
	body := gin.H{
		"statusCode": err.StatusCode,
		"error":      err.Kind,
		"message":    err.Message,
	}
	if len(err.Details) > 0 {
		body["details"] = err.Details
	}
	c.JSON(err.StatusCode, body)
}

// SuccessResponse mengirim response sukses dalam format JSON
func SuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, gin.H{
		"statusCode": statusCode,
		"message":    message,
		"data":       data,
	})
}
