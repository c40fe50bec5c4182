// Command seed_demo creates a demo database with a sample catalog of public
// domain books, added through the real catalog services.
// Usage: go run cmd/seed_demo/main.go [-db path/to/demo.db]
package main

import (
	"flag"
	"log"
	"os"

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

const defaultDemoDatabasePath = "./demo/demo.db"

type demoBook struct {
	Title      string
	ISBN       string
	AuthorName string
}

var demoCatalog = []demoBook{
	{"Pride and Prejudice", "9780141439518", "Jane Austen"},
	{"Emma", "9780141439587", "Jane Austen"},
	{"Moby-Dick", "9780142437247", "Herman Melville"},
	{"The Time Machine", "9780141439976", "H. G. Wells"},
	{"The War of the Worlds", "9780141441030", "H. G. Wells"},
	{"Frankenstein", "9780141439471", "Mary Shelley"},
}

func main() {
	dbPath := flag.String("db", defaultDemoDatabasePath, "path to the demo database file")
	flag.Parse()

	log.Printf("Generating demo database at %s...", *dbPath)

	// Delete existing demo database to start fresh
	if err := os.Remove(*dbPath); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Failed to remove existing demo database: %v", err)
	}

	db, err := database.NewDatabase(*dbPath)
	if err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}
	defer db.Close()

	cfg := config.NewConfig()
	authService := auth.NewService(users.NewRepository(db.DB), cfg.Auth)
	libraryService := library.NewService(userbooks.NewRepository(db.DB))
	catalogService := catalog.NewService(authors.NewRepository(db.DB), books.NewRepository(db.DB), libraryService)

	demoUser, _, err := authService.Authenticate("demo", "demo-password")
	if err != nil {
		log.Fatalf("Failed to create demo user: %v", err)
	}
	log.Printf("Created demo user %q", demoUser.Username)

	for _, entry := range demoCatalog {
		book, err := catalogService.AddBook(entry.Title, entry.ISBN, entry.AuthorName, demoUser.ID)
		if err != nil {
			log.Printf("Failed to add %s: %v", entry.Title, err)
			continue
		}
		log.Printf("Added: %s by %s", book.Title, book.Author.Name)
	}

	log.Println("Demo database generated successfully!")
}
