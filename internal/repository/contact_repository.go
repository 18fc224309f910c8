package repository

import (
	"context"
	"fmt"

	"github.com/johndn/portfolio/internal/db"
	"github.com/johndn/portfolio/internal/models"

	entsql "entgo.io/ent/dialect/sql"
)

const contactMessagesTable = "contact_messages"

var contactMessageColumns = []string{"id", "name", "email", "subject", "message", "status", "created_at"}

// contactRepository implements ContactRepository on top of the ent SQL driver
type contactRepository struct {
	drv *entsql.Driver
}

// NewContactRepository creates a new ContactRepository instance
func NewContactRepository(database *db.Database) ContactRepository {
	return &contactRepository{
		drv: database.Driver,
	}
}

// Create inserts a single contact message row
func (r *contactRepository) Create(ctx context.Context, msg *models.ContactMessage) error {
	query, args := entsql.Dialect(r.drv.Dialect()).
		Insert(contactMessagesTable).
		Columns(contactMessageColumns...).
		Values(msg.ID, msg.Name, msg.Email, msg.Subject, msg.Message, string(msg.Status), msg.CreatedAt).
		Query()

	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("insert contact message: %w", err)
	}
	return nil
}

// List returns up to limit messages ordered by creation time, newest first
func (r *contactRepository) List(ctx context.Context, limit int) ([]*models.ContactMessage, error) {
	query, args := entsql.Dialect(r.drv.Dialect()).
		Select(contactMessageColumns...).
		From(entsql.Table(contactMessagesTable)).
		OrderBy(entsql.Desc("created_at")).
		Limit(limit).
		Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("query contact messages: %w", err)
	}
	defer rows.Close()

	messages := make([]*models.ContactMessage, 0, limit)
	for rows.Next() {
		var (
			m      models.ContactMessage
			status string
		)
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &status, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan contact message: %w", err)
		}
		m.Status = models.ContactStatus(status)
		m.CreatedAt = m.CreatedAt.UTC()
		messages = append(messages, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contact messages: %w", err)
	}
	return messages, nil
}

// CountByStatus returns the number of messages with the given status
func (r *contactRepository) CountByStatus(ctx context.Context, status models.ContactStatus) (int, error) {
	query, args := entsql.Dialect(r.drv.Dialect()).
		Select(entsql.Count("*")).
		From(entsql.Table(contactMessagesTable)).
		Where(entsql.EQ("status", string(status))).
		Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return 0, fmt.Errorf("count contact messages: %w", err)
	}
	defer rows.Close()

	count, err := entsql.ScanInt(rows)
	if err != nil {
		return 0, fmt.Errorf("scan contact message count: %w", err)
	}
	return count, nil
}
