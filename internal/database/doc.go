// Package database provides the data access layer for the application.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup, migrations
//	├── users/           # User accounts
//	├── authors/         # Author records
//	├── books/           # Book records and catalog search
//	└── userbooks/       # Per-user saved-book associations
//
// # Using Sub-packages
//
// Each sub-package provides a Repository type with domain-specific operations:
//
//	// Initialize database connection
//	db, err := database.NewDatabase("./app.db")
//
//	// Create domain-specific repositories
//	usersRepo := users.NewRepository(db.DB)
//	booksRepo := books.NewRepository(db.DB)
//
//	// Use repositories
//	user, err := usersRepo.GetByUsername("alice")
//	results, err := booksRepo.Search(books.Filters{Title: "dune"}, 0)
//
// Services consume the repositories through interfaces they define
// themselves (auth.UserStore, catalog.AuthorStore, ...), so the
// sub-packages stay free of upward dependencies.
package database
