// Package users provides database operations for user accounts.
//
// # Interface Implementation
//
//	var _ auth.UserStore = (*Repository)(nil)
package users

import (
	"gorm.io/gorm"

	"github.com/mybooksapp/mybooks/internal/entities"
)

// Repository handles all user database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new users repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new user. The unique index on username is the backstop
// against concurrent signups with the same name.
func (r *Repository) Create(user *entities.User) error {
	return r.db.Create(user).Error
}

// GetByUsername retrieves a user by their unique username.
// Returns gorm.ErrRecordNotFound when no such user exists.
func (r *Repository) GetByUsername(username string) (*entities.User, error) {
	var user entities.User
	err := r.db.Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByID retrieves a user by their ID.
func (r *Repository) GetByID(id uint) (*entities.User, error) {
	var user entities.User
	err := r.db.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Count returns the number of user accounts.
func (r *Repository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&entities.User{}).Count(&count).Error
	return count, err
}
