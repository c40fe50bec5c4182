package users

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mybooksapp/mybooks/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, func()) {
	t.Helper()
	dbPath := "./test_users_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&entities.User{}))

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return NewRepository(db), cleanup
}

func TestRepository_CreateAndGetByUsername(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	user := &entities.User{Username: "alice", PasswordHash: "hashed"}
	require.NoError(t, repo.Create(user))
	assert.NotZero(t, user.ID)

	found, err := repo.GetByUsername("alice")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
	assert.Equal(t, "hashed", found.PasswordHash)
}

func TestRepository_GetByUsername_NotFound(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.GetByUsername("nobody")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepository_GetByID(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	user := &entities.User{Username: "bob", PasswordHash: "hashed"}
	require.NoError(t, repo.Create(user))

	found, err := repo.GetByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "bob", found.Username)
}

func TestRepository_Count(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	require.NoError(t, repo.Create(&entities.User{Username: "alice", PasswordHash: "x"}))
	require.NoError(t, repo.Create(&entities.User{Username: "bob", PasswordHash: "y"}))

	count, err = repo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
