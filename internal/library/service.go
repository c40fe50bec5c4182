// Package library manages per-user saved-book associations.
package library

import (
	"errors"
	"fmt"

	"github.com/mybooksapp/mybooks/internal/database"
)

var ErrAlreadySaved = errors.New("book is already saved for this user")

// UserBookStore defines the interface for saved-book data access.
type UserBookStore interface {
	Exists(userID, bookID uint) (bool, error)
	Create(userID, bookID uint) error
}

// Service records which books a user has saved.
type Service struct {
	userBooks UserBookStore
}

// NewService creates a new library membership service.
func NewService(userBooks UserBookStore) *Service {
	return &Service{userBooks: userBooks}
}

// SaveBook records the (userID, bookID) association, failing with
// ErrAlreadySaved when it exists. The check-then-insert is not atomic;
// the composite unique index catches the race and is translated to the
// same error.
func (s *Service) SaveBook(userID, bookID uint) error {
	exists, err := s.userBooks.Exists(userID, bookID)
	if err != nil {
		return fmt.Errorf("failed to check saved book: %w", err)
	}
	if exists {
		return ErrAlreadySaved
	}

	if err := s.userBooks.Create(userID, bookID); err != nil {
		if database.IsUniqueViolation(err) {
			return ErrAlreadySaved
		}
		return fmt.Errorf("failed to save book: %w", err)
	}
	return nil
}
