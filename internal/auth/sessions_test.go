package auth

import (
	"database/sql"
	"os"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mybooksapp/mybooks/internal/config"
)

func setupSessionDB(t *testing.T) (*sql.DB, func()) {
	t.Helper()
	dbPath := "./test_sessions_" + t.Name() + ".db"

	sqlDB, err := sql.Open("sqlite3", dbPath)
	require.NoError(t, err)

	cleanup := func() {
		sqlDB.Close()
		os.Remove(dbPath)
	}
	return sqlDB, cleanup
}

func TestNewSessionManager(t *testing.T) {
	sqlDB, cleanup := setupSessionDB(t)
	defer cleanup()

	sm, err := NewSessionManager(sqlDB, config.Auth{
		SessionLifetime: 24 * time.Hour,
		SecureCookies:   true,
	})
	require.NoError(t, err)

	assert.Equal(t, 24*time.Hour, sm.Lifetime)
	assert.Equal(t, 12*time.Hour, sm.IdleTimeout)
	assert.Equal(t, "session", sm.Cookie.Name)
	assert.True(t, sm.Cookie.HttpOnly)
	assert.True(t, sm.Cookie.Secure)

	// Sessions table was created
	var name string
	err = sqlDB.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='sessions'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "sessions", name)
}
