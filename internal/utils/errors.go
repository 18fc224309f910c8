package utils

import (
	"github.com/johndn/portfolio/internal/api/dto/common"
	"github.com/johndn/portfolio/internal/logging"

	"github.com/gin-gonic/gin"
)

// HandleAPIError logs err and answers with a generic error envelope.
// The underlying error is never sent to the client.
func HandleAPIError(c *gin.Context, err error, status int, message string) {
	logger := logging.GetGlobalLogger()
	logger.LogHTTPError(
		c.Request.Method,
		c.Request.URL.Path,
		GetRealIP(c),
		status,
		message,
		err,
	)

	c.AbortWithStatusJSON(status, common.NewErrorResponse(message))
}
