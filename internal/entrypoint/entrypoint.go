package entrypoint

import (
	"context"
	"encoding/hex"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mybooksapp/mybooks/internal/auth"
	"github.com/mybooksapp/mybooks/internal/catalog"
	"github.com/mybooksapp/mybooks/internal/config"
	"github.com/mybooksapp/mybooks/internal/database"
	"github.com/mybooksapp/mybooks/internal/database/authors"
	"github.com/mybooksapp/mybooks/internal/database/books"
	"github.com/mybooksapp/mybooks/internal/database/userbooks"
	"github.com/mybooksapp/mybooks/internal/database/users"
	http_controllers "github.com/mybooksapp/mybooks/internal/http"
	"github.com/mybooksapp/mybooks/internal/library"
)

// Serve runs the HTTP server until an interrupt signal, then shuts it down
// gracefully within the configured timeout.
func Serve(router *gin.Engine, cfg *config.Config) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

// Run wires the storage layer, services and router together and serves.
// The database handle is constructed once here and injected everywhere;
// there is no ambient global client.
func Run(cfg *config.Config, version string) {
	log.Printf("Starting MyBooks v%s", version)

	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	// Repositories
	usersRepo := users.NewRepository(db.DB)
	authorsRepo := authors.NewRepository(db.DB)
	booksRepo := books.NewRepository(db.DB)
	userBooksRepo := userbooks.NewRepository(db.DB)

	// Services
	authService := auth.NewService(usersRepo, cfg.Auth)
	libraryService := library.NewService(userBooksRepo)
	catalogService := catalog.NewService(authorsRepo, booksRepo, libraryService)

	// Sessions are stored next to the application data
	sqlDB, err := db.DB.DB()
	if err != nil {
		log.Fatalf("Failed to get SQL DB for sessions: %v", err)
	}
	sessionManager, err := auth.NewSessionManager(sqlDB, cfg.Auth)
	if err != nil {
		log.Fatalf("Failed to initialize session manager: %v", err)
	}

	// Configured or generated CSRF secret
	var csrfSecret []byte
	if cfg.Auth.SessionSecret != "" {
		csrfSecret, err = hex.DecodeString(cfg.Auth.SessionSecret)
		if err != nil {
			// Not hex, use as raw bytes
			csrfSecret = []byte(cfg.Auth.SessionSecret)
		}
	} else {
		secret, err := auth.GenerateSessionSecret()
		if err != nil {
			log.Fatalf("Failed to generate CSRF secret: %v", err)
		}
		csrfSecret, _ = hex.DecodeString(secret)
		log.Printf("Generated session secret (set AUTH_SESSION_SECRET to persist)")
	}

	router := http_controllers.NewRouter(http_controllers.RouterConfig{
		Database:       db,
		AuthService:    authService,
		SessionManager: sessionManager,
		Catalog:        catalogService,
		Library:        libraryService,
		BookSearcher:   booksRepo,
		AuthorStore:    authorsRepo,
		TemplatesPath:  cfg.UI.TemplatesPath,
		CSRFSecret:     csrfSecret,
		SecureCookies:  cfg.Auth.SecureCookies,
		Version:        version,
	})

	Serve(router, cfg)
}
