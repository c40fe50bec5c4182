package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mybooksapp/mybooks/internal/auth"
	"github.com/mybooksapp/mybooks/internal/catalog"
	"github.com/mybooksapp/mybooks/internal/config"
	"github.com/mybooksapp/mybooks/internal/database"
	"github.com/mybooksapp/mybooks/internal/database/authors"
	"github.com/mybooksapp/mybooks/internal/database/books"
	"github.com/mybooksapp/mybooks/internal/database/userbooks"
	"github.com/mybooksapp/mybooks/internal/database/users"
	"github.com/mybooksapp/mybooks/internal/library"
)

// setupTestApp wires a fresh database behind a fully configured router,
// without sessions, CSRF or templates.
func setupTestApp(t *testing.T) (*database.Database, *gin.Engine, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := "./test_http_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	usersRepo := users.NewRepository(db.DB)
	authorsRepo := authors.NewRepository(db.DB)
	booksRepo := books.NewRepository(db.DB)
	userBooksRepo := userbooks.NewRepository(db.DB)

	libraryService := library.NewService(userBooksRepo)
	router := NewRouter(RouterConfig{
		Database:     db,
		AuthService:  auth.NewService(usersRepo, config.Auth{BcryptCost: bcrypt.MinCost}),
		Catalog:      catalog.NewService(authorsRepo, booksRepo, libraryService),
		Library:      libraryService,
		BookSearcher: booksRepo,
		AuthorStore:  authorsRepo,
		Version:      "test",
	})

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return db, router, cleanup
}

// doJSON performs a request with a JSON body and returns the recorder.
func doJSON(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
