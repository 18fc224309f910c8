package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/johndn/portfolio/internal/api/dto/common"
	"github.com/johndn/portfolio/internal/service"
	"github.com/johndn/portfolio/internal/utils"

	"github.com/gin-gonic/gin"
)

// maxContactBodyBytes bounds the submission body
const maxContactBodyBytes = 64 << 10

type ContactHandler struct {
	contactService *service.ContactService
}

func NewContactHandler(contactService *service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// Submit validates and stores a contact form submission
func (h *ContactHandler) Submit(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxContactBodyBytes)
	body, err := c.GetRawData()
	if err != nil {
		utils.HandleValidationError(c, common.FieldErrors{"body": {"Request body could not be read"}})
		return
	}

	req, err := service.DecodeContactRequest(body)
	if err == nil {
		_, err = h.contactService.Submit(c.Request.Context(), req)
	}

	var validationErr *service.ValidationError
	switch {
	case errors.As(err, &validationErr):
		utils.HandleValidationError(c, validationErr.Fields)
		return
	case err != nil:
		utils.HandleAPIError(c, err, http.StatusInternalServerError, service.ContactFailureMessage)
		return
	}

	utils.HandleMessage(c, service.ContactSuccessMessage)
}

// List returns the most recent submissions, newest first
func (h *ContactHandler) List(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			limit = n
		}
	}

	messages, err := h.contactService.List(c.Request.Context(), limit)
	if err != nil {
		utils.HandleAPIError(c, err, http.StatusInternalServerError, service.ContactListFailureMessage)
		return
	}

	utils.HandleSuccess(c, messages)
}
