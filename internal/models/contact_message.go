package models

import (
	"time"

	"github.com/google/uuid"
)

// ContactStatus is the read state of a contact message
type ContactStatus string

const (
	ContactStatusUnread ContactStatus = "unread"
	ContactStatusRead   ContactStatus = "read"
)

// ContactMessage is one inquiry submitted through the contact form.
// Records are immutable once persisted.
type ContactMessage struct {
	ID        uuid.UUID     `json:"id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Subject   string        `json:"subject"`
	Message   string        `json:"message"`
	Status    ContactStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
}
