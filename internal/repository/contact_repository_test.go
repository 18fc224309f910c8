package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/johndn/portfolio/internal/db"
	"github.com/johndn/portfolio/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDatabase(t *testing.T) *db.Database {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", uuid.NewString())
	database, err := db.Initialize(context.Background(), "sqlite3", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database
}

func newMessage(subject string, createdAt time.Time) *models.ContactMessage {
	return &models.ContactMessage{
		ID:        uuid.New(),
		Name:      "Jo",
		Email:     "jo@x.com",
		Subject:   subject,
		Message:   "This message is definitely twenty chars.",
		Status:    models.ContactStatusUnread,
		CreatedAt: createdAt,
	}
}

func TestContactRepository_CreateAndList(t *testing.T) {
	ctx := context.Background()
	repo := NewContactRepository(newTestDatabase(t))

	base := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	first := newMessage("First subject", base)
	second := newMessage("Second subject", base.Add(time.Minute))
	third := newMessage("Third subject", base.Add(2*time.Minute))

	for _, m := range []*models.ContactMessage{second, first, third} {
		require.NoError(t, repo.Create(ctx, m))
	}

	messages, err := repo.List(ctx, 50)
	require.NoError(t, err)
	require.Len(t, messages, 3)

	assert.Equal(t, third.ID, messages[0].ID)
	assert.Equal(t, second.ID, messages[1].ID)
	assert.Equal(t, first.ID, messages[2].ID)

	got := messages[0]
	assert.Equal(t, "Jo", got.Name)
	assert.Equal(t, "jo@x.com", got.Email)
	assert.Equal(t, "Third subject", got.Subject)
	assert.Equal(t, "This message is definitely twenty chars.", got.Message)
	assert.Equal(t, models.ContactStatusUnread, got.Status)
	assert.True(t, third.CreatedAt.Equal(got.CreatedAt))
}

func TestContactRepository_ListRespectsLimit(t *testing.T) {
	ctx := context.Background()
	repo := NewContactRepository(newTestDatabase(t))

	base := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Create(ctx, newMessage(fmt.Sprintf("Subject %d", i), base.Add(time.Duration(i)*time.Second))))
	}

	messages, err := repo.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "Subject 4", messages[0].Subject)
	assert.Equal(t, "Subject 3", messages[1].Subject)
}

func TestContactRepository_ListEmpty(t *testing.T) {
	repo := NewContactRepository(newTestDatabase(t))

	messages, err := repo.List(context.Background(), 50)
	require.NoError(t, err)
	assert.NotNil(t, messages)
	assert.Empty(t, messages)
}

func TestContactRepository_CreateDuplicateIDFails(t *testing.T) {
	ctx := context.Background()
	repo := NewContactRepository(newTestDatabase(t))

	m := newMessage("Duplicate", time.Now().UTC())
	require.NoError(t, repo.Create(ctx, m))
	assert.Error(t, repo.Create(ctx, m))

	messages, err := repo.List(ctx, 50)
	require.NoError(t, err)
	assert.Len(t, messages, 1)
}

func TestContactRepository_CountByStatus(t *testing.T) {
	ctx := context.Background()
	repo := NewContactRepository(newTestDatabase(t))

	now := time.Now().UTC()
	require.NoError(t, repo.Create(ctx, newMessage("One", now)))
	require.NoError(t, repo.Create(ctx, newMessage("Two", now.Add(time.Second))))

	unread, err := repo.CountByStatus(ctx, models.ContactStatusUnread)
	require.NoError(t, err)
	assert.Equal(t, 2, unread)

	read, err := repo.CountByStatus(ctx, models.ContactStatusRead)
	require.NoError(t, err)
	assert.Equal(t, 0, read)
}

func TestContactRepository_ClosedDatabaseFails(t *testing.T) {
	database := newTestDatabase(t)
	repo := NewContactRepository(database)
	require.NoError(t, database.Close())

	err := repo.Create(context.Background(), newMessage("Closed", time.Now().UTC()))
	assert.Error(t, err)
}
