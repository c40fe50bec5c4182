// Package userbooks provides database operations for the per-user
// saved-book join records.
//
// # Interface Implementation
//
//	var _ library.UserBookStore = (*Repository)(nil)
package userbooks

import (
	"gorm.io/gorm"

	"github.com/mybooksapp/mybooks/internal/entities"
)

// Repository handles all user-book association database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new user-books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Exists reports whether the (userID, bookID) pair is already recorded.
func (r *Repository) Exists(userID, bookID uint) (bool, error) {
	var count int64
	err := r.db.Model(&entities.UserBook{}).
		Where("user_id = ? AND book_id = ?", userID, bookID).
		Count(&count).Error
	return count > 0, err
}

// Create records that the user saved the book. The composite unique index
// on (user_id, book_id) rejects duplicate rows under concurrent requests.
func (r *Repository) Create(userID, bookID uint) error {
	return r.db.Create(&entities.UserBook{UserID: userID, BookID: bookID}).Error
}

// CountForUser returns how many books the user has saved.
func (r *Repository) CountForUser(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&entities.UserBook{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}
