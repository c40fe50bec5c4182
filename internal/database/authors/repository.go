// Package authors provides database operations for author records.
//
// # Interface Implementation
//
//	var _ catalog.AuthorStore = (*Repository)(nil)
package authors

import (
	"gorm.io/gorm"

	"github.com/mybooksapp/mybooks/internal/entities"
)

// Repository handles all author database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new authors repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new author.
func (r *Repository) Create(author *entities.Author) error {
	return r.db.Create(author).Error
}

// FindByName returns all authors with the exact given name, ordered by
// creation order. Author names are not unique at the storage layer, so more
// than one row is a legitimate outcome; callers pick the first.
func (r *Repository) FindByName(name string) ([]entities.Author, error) {
	var found []entities.Author
	err := r.db.Where("name = ?", name).Order("id ASC").Find(&found).Error
	return found, err
}

// GetAllWithBooks returns every author with their books populated.
func (r *Repository) GetAllWithBooks() ([]entities.Author, error) {
	var found []entities.Author
	err := r.db.Preload("Books").Order("id ASC").Find(&found).Error
	return found, err
}
