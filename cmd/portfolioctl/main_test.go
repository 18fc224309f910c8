package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/johndn/portfolio/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSlugCommand(t *testing.T) {
	out, err := run(t, "slug", "Hello,", "World!")
	require.NoError(t, err)
	assert.Equal(t, "hello-world\n", out)

	out, err = run(t, "slug", "--unique", "Hello World")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "hello-world-"))

	_, err = run(t, "slug")
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "portfolioctl dev")
	assert.Contains(t, out, "Platform:")
}

func TestContentCheckCommand(t *testing.T) {
	out, err := run(t, "content", "check", filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Contains(t, out, "3 posts, 3 projects")
	assert.Contains(t, out, "2024: 3 posts")
	assert.Contains(t, out, "- building-scalable-microservices (Jan 15, 2024")

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("posts: [oops"), 0o644))
	_, err = run(t, "content", "check", bad)
	assert.Error(t, err)
}

func TestMigrateAndListMessages(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "sqlite3")
	t.Setenv("DATABASE_URL", fmt.Sprintf("file:%s?_fk=1", filepath.Join(t.TempDir(), "cli.db")))

	out, err := run(t, "migrate")
	require.NoError(t, err)
	assert.Contains(t, out, "Schema is up to date (sqlite3)")

	out, err = run(t, "messages", "list", "--limit", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "No messages yet.")
}

func TestPrintMessages(t *testing.T) {
	var out bytes.Buffer
	err := printMessages(&out, []*models.ContactMessage{{
		ID:        uuid.New(),
		Name:      "Jo",
		Email:     "jo@x.com",
		Subject:   strings.Repeat("s", 50),
		Status:    models.ContactStatusUnread,
		CreatedAt: time.Now().Add(-90 * time.Second),
	}})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "RECEIVED")
	assert.Contains(t, out.String(), "1m ago")
	assert.Contains(t, out.String(), "Jo <jo@x.com>")
	assert.Contains(t, out.String(), strings.Repeat("s", subjectWidth)+"...")
}
