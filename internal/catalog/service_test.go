package catalog

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mybooksapp/mybooks/internal/database/authors"
	"github.com/mybooksapp/mybooks/internal/database/books"
	"github.com/mybooksapp/mybooks/internal/database/userbooks"
	"github.com/mybooksapp/mybooks/internal/entities"
	"github.com/mybooksapp/mybooks/internal/library"
)

func setupTestService(t *testing.T) (*gorm.DB, *Service, func()) {
	t.Helper()
	dbPath := "./test_catalog_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entities.User{},
		&entities.Author{},
		&entities.Book{},
		&entities.UserBook{},
	))

	libraryService := library.NewService(userbooks.NewRepository(db))
	service := NewService(authors.NewRepository(db), books.NewRepository(db), libraryService)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return db, service, cleanup
}

func countRows(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(model).Count(&count).Error)
	return count
}

func TestService_AddBook_CreatesAuthorAndBook(t *testing.T) {
	db, service, cleanup := setupTestService(t)
	defer cleanup()

	book, err := service.AddBook("Dune", "0441013597", "Frank Herbert", 0)
	require.NoError(t, err)

	assert.Equal(t, "Dune", book.Title)
	require.NotNil(t, book.ISBN)
	assert.Equal(t, "0441013597", *book.ISBN)
	assert.Equal(t, "Frank Herbert", book.Author.Name)

	assert.Equal(t, int64(1), countRows(t, db, &entities.Author{}))
	assert.Equal(t, int64(1), countRows(t, db, &entities.Book{}))
}

func TestService_AddBook_ReusesExistingAuthor(t *testing.T) {
	db, service, cleanup := setupTestService(t)
	defer cleanup()

	first, err := service.AddBook("Dune", "0441013597", "Frank Herbert", 0)
	require.NoError(t, err)

	second, err := service.AddBook("Dune Messiah", "9780593098233", "Frank Herbert", 0)
	require.NoError(t, err)

	assert.Equal(t, first.AuthorID, second.AuthorID)
	assert.Equal(t, int64(1), countRows(t, db, &entities.Author{}))
}

func TestService_AddBook_DuplicateISBN(t *testing.T) {
	db, service, cleanup := setupTestService(t)
	defer cleanup()

	_, err := service.AddBook("Dune", "0441013597", "Frank Herbert", 0)
	require.NoError(t, err)

	_, err = service.AddBook("Dune", "0441013597", "Frank Herbert", 0)
	assert.ErrorIs(t, err, ErrDuplicateISBN)

	// The rejected submission created nothing
	assert.Equal(t, int64(1), countRows(t, db, &entities.Book{}))
}

func TestService_AddBook_EmptyISBNIsAbsent(t *testing.T) {
	db, service, cleanup := setupTestService(t)
	defer cleanup()

	book, err := service.AddBook("Dune", "", "Frank Herbert", 0)
	require.NoError(t, err)
	assert.Nil(t, book.ISBN)

	// A second ISBN-less book is not a duplicate
	_, err = service.AddBook("Dune Messiah", "  ", "Frank Herbert", 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), countRows(t, db, &entities.Book{}))
}

func TestService_AddBook_Validation(t *testing.T) {
	_, service, cleanup := setupTestService(t)
	defer cleanup()

	_, err := service.AddBook("", "0441013597", "Frank Herbert", 0)
	assert.ErrorIs(t, err, ErrTitleRequired)

	_, err = service.AddBook("   ", "0441013597", "Frank Herbert", 0)
	assert.ErrorIs(t, err, ErrTitleRequired)

	_, err = service.AddBook("Dune", "0441013597", "", 0)
	assert.ErrorIs(t, err, ErrAuthorNameRequired)
}

func TestService_AddBook_TrimsInputs(t *testing.T) {
	_, service, cleanup := setupTestService(t)
	defer cleanup()

	book, err := service.AddBook("  Dune  ", " 0441013597 ", "  Frank Herbert  ", 0)
	require.NoError(t, err)
	assert.Equal(t, "Dune", book.Title)
	assert.Equal(t, "0441013597", *book.ISBN)
	assert.Equal(t, "Frank Herbert", book.Author.Name)
}

func TestService_AddBook_DuplicateAuthorNamesTolerated(t *testing.T) {
	db, service, cleanup := setupTestService(t)
	defer cleanup()

	// Simulate duplicates left behind by a race
	first := &entities.Author{Name: "Iain Banks"}
	require.NoError(t, db.Create(first).Error)
	require.NoError(t, db.Create(&entities.Author{Name: "Iain Banks"}).Error)

	book, err := service.AddBook("The Wasp Factory", "9780684853154", "Iain Banks", 0)
	require.NoError(t, err)

	// First by creation order wins, deterministically
	assert.Equal(t, first.ID, book.AuthorID)
	assert.Equal(t, int64(2), countRows(t, db, &entities.Author{}))
}

func TestService_AddBook_SavesForUser(t *testing.T) {
	db, service, cleanup := setupTestService(t)
	defer cleanup()

	user := &entities.User{Username: "alice", PasswordHash: "x"}
	require.NoError(t, db.Create(user).Error)

	book, err := service.AddBook("Dune", "0441013597", "Frank Herbert", user.ID)
	require.NoError(t, err)

	var join entities.UserBook
	require.NoError(t, db.Where("user_id = ? AND book_id = ?", user.ID, book.ID).First(&join).Error)
}

// stubSaver always reports the association as already present.
type stubSaver struct{}

func (stubSaver) SaveBook(userID, bookID uint) error { return library.ErrAlreadySaved }

func TestService_AddBook_AlreadySavedPropagates(t *testing.T) {
	db, _, cleanup := setupTestService(t)
	defer cleanup()

	service := NewService(authors.NewRepository(db), books.NewRepository(db), stubSaver{})

	_, err := service.AddBook("Dune", "0441013597", "Frank Herbert", 7)
	assert.ErrorIs(t, err, library.ErrAlreadySaved)

	// The book itself was still created; a retry finds it by ISBN
	assert.Equal(t, int64(1), countRows(t, db, &entities.Book{}))
}
