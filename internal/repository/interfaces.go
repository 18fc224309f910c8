package repository

import (
	"context"

	"github.com/johndn/portfolio/internal/models"
)

// ContactRepository defines the persistence operations for contact messages
type ContactRepository interface {
	// Create inserts a new message; it either fully persists or fails
	Create(ctx context.Context, msg *models.ContactMessage) error
	// List returns up to limit messages, newest first
	List(ctx context.Context, limit int) ([]*models.ContactMessage, error)
	// CountByStatus returns the number of messages with the given status
	CountByStatus(ctx context.Context, status models.ContactStatus) (int, error)
}
