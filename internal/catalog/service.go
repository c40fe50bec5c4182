// Package catalog resolves add-book submissions into author and book
// records, creating whatever does not exist yet.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/mybooksapp/mybooks/internal/database"
	"github.com/mybooksapp/mybooks/internal/entities"
)

var (
	ErrTitleRequired      = errors.New("title is required and must be a non-empty string")
	ErrAuthorNameRequired = errors.New("author name is required and must be a non-empty string")
	ErrDuplicateISBN      = errors.New("a book with this ISBN already exists")
)

// AuthorStore defines the interface for author data access.
type AuthorStore interface {
	Create(author *entities.Author) error
	FindByName(name string) ([]entities.Author, error)
}

// BookStore defines the interface for book data access.
type BookStore interface {
	Create(book *entities.Book) error
	FindByISBN(isbn string) (*entities.Book, error)
}

// Saver records a user's saved-book association.
type Saver interface {
	SaveBook(userID, bookID uint) error
}

// Service resolves book submissions against the shared catalog.
type Service struct {
	authors AuthorStore
	books   BookStore
	library Saver
}

// NewService creates a new catalog service.
func NewService(authors AuthorStore, books BookStore, library Saver) *Service {
	return &Service{
		authors: authors,
		books:   books,
		library: library,
	}
}

// AddBook creates a book for the given title, ISBN and author name, reusing
// an existing author with that name and rejecting an already-catalogued ISBN
// with ErrDuplicateISBN. An empty ISBN is stored as absent. A non-zero
// userID additionally saves the book for that user; library.ErrAlreadySaved
// propagates as the operation's result even though the book itself was
// created or found.
func (s *Service) AddBook(title, isbn, authorName string, userID uint) (*entities.Book, error) {
	title = strings.TrimSpace(title)
	authorName = strings.TrimSpace(authorName)
	isbn = strings.TrimSpace(isbn)

	if title == "" {
		return nil, ErrTitleRequired
	}
	if authorName == "" {
		return nil, ErrAuthorNameRequired
	}

	author, err := s.resolveAuthor(authorName)
	if err != nil {
		return nil, err
	}

	if isbn != "" {
		_, err := s.books.FindByISBN(isbn)
		if err == nil {
			return nil, ErrDuplicateISBN
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check ISBN: %w", err)
		}
	}

	book := &entities.Book{
		Title:    title,
		AuthorID: author.ID,
		Author:   *author,
	}
	if isbn != "" {
		book.ISBN = &isbn
	}

	if err := s.books.Create(book); err != nil {
		// Concurrent submissions of the same new ISBN both pass the
		// lookup; the unique index decides the loser.
		if database.IsUniqueViolation(err) {
			return nil, ErrDuplicateISBN
		}
		return nil, fmt.Errorf("failed to create book: %w", err)
	}

	if userID != 0 {
		if err := s.library.SaveBook(userID, book.ID); err != nil {
			return book, err
		}
	}

	return book, nil
}

// resolveAuthor finds the author with the exact given name or creates one.
// Pre-existing duplicate names are a tolerated data-quality gap: the first
// row by creation order wins, deterministically.
func (s *Service) resolveAuthor(name string) (*entities.Author, error) {
	found, err := s.authors.FindByName(name)
	if err != nil {
		return nil, fmt.Errorf("failed to look up author: %w", err)
	}
	if len(found) > 0 {
		return &found[0], nil
	}

	author := &entities.Author{Name: name}
	if err := s.authors.Create(author); err != nil {
		return nil, fmt.Errorf("failed to create author: %w", err)
	}
	return author, nil
}
