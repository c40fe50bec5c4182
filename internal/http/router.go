package http

import (
	"github.com/gin-gonic/gin"

	"github.com/mybooksapp/mybooks/internal/auth"
	"github.com/mybooksapp/mybooks/internal/catalog"
	"github.com/mybooksapp/mybooks/internal/database"
	"github.com/mybooksapp/mybooks/internal/library"
)

// RouterConfig carries all router dependencies, improving testability and
// reducing parameter count.
type RouterConfig struct {
	Database       *database.Database
	AuthService    *auth.Service
	SessionManager *auth.SessionManager
	Catalog        *catalog.Service
	Library        *library.Service
	BookSearcher   BookSearcher
	AuthorStore    AuthorStore
	TemplatesPath  string
	CSRFSecret     []byte
	SecureCookies  bool
	Version        string
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Apply security headers to all responses
	router.Use(auth.SecurityHeadersMiddleware())

	// CSRF protection for form posts; JSON API requests are exempt.
	// CSRF must run before session so that session context is preserved
	if len(cfg.CSRFSecret) > 0 {
		router.Use(auth.CSRFMiddleware(cfg.CSRFSecret, cfg.SecureCookies))
	}

	// Session runs after CSRF so session context isn't overwritten by
	// CSRF's request replacement
	if cfg.SessionManager != nil {
		router.Use(cfg.SessionManager.SessionLoadSave())
	}

	health := NewHealthController(cfg.Database, cfg.Version)
	loginController := NewLoginController(cfg.AuthService, cfg.SessionManager)
	booksController := NewBooksController(cfg.Catalog, cfg.Library, cfg.BookSearcher)
	authorsController := NewAuthorsController(cfg.AuthorStore)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// Auth endpoints
	router.POST("/login", loginController.Login)
	router.POST("/logout", loginController.Logout)

	// Catalog endpoints
	router.POST("/books/add", booksController.AddBook)
	router.GET("/books/find", booksController.FindBooks)
	router.POST("/books/:id/save", booksController.SaveBook)
	router.GET("/authors", authorsController.GetAllAuthors)

	// UI routes
	if cfg.TemplatesPath != "" {
		router.LoadHTMLGlob(cfg.TemplatesPath + "/*.html")
		uiController := NewUIController()
		router.GET("/", uiController.IndexPage)
	}

	return router
}
