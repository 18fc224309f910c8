package mapper

import (
	"time"

	"github.com/johndn/portfolio/internal/api/dto/v1/contact"
	"github.com/johndn/portfolio/internal/models"

	"github.com/google/uuid"
)

// ContactRequestToMessage maps a validated submission to a new unread ContactMessage
func ContactRequestToMessage(req *contact.ContactRequest, id uuid.UUID, createdAt time.Time) *models.ContactMessage {
	return &models.ContactMessage{
		ID:        id,
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
		Status:    models.ContactStatusUnread,
		CreatedAt: createdAt,
	}
}
