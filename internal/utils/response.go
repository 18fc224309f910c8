package utils

import (
	"net/http"

	"github.com/johndn/portfolio/internal/api/dto/common"

	"github.com/gin-gonic/gin"
)

// HandleSuccess sends a success response with data
func HandleSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, common.NewSuccessResponse(data))
}

// HandleMessage sends a success response with just a message
func HandleMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, common.NewMessageResponse(message))
}

// HandleValidationError sends a 400 response naming every rejected field
func HandleValidationError(c *gin.Context, details common.FieldErrors) {
	c.JSON(http.StatusBadRequest, common.NewValidationErrorResponse(details))
}
