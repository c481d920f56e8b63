package response

import "github.com/gin-gonic/gin"

const (
	CodeBadRequest         = 40000
	CodeEmailExists        = 40001
	CodeInvalidCredentials = 40002
	CodeUserNotFound       = 40401
	CodePostNotFound       = 40402
	CodeInternalServer     = 50000
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func Error(c *gin.Context, httpStatus, code int, message string) {
	c.JSON(httpStatus, ErrorResponse{
		Code:    code,
		Message: message,
	})
}
