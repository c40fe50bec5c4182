// Package books provides database operations for book records and
// catalog search.
//
// # Interface Implementation
//
//	var _ catalog.BookStore = (*Repository)(nil)
//	var _ http.BookSearcher = (*Repository)(nil)
package books

import (
	"gorm.io/gorm"

	"github.com/mybooksapp/mybooks/internal/entities"
)

// Filters holds the optional search criteria. Empty fields match everything.
type Filters struct {
	Title  string
	Author string
	ISBN   string
}

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new book and reloads it with its author populated.
func (r *Repository) Create(book *entities.Book) error {
	if err := r.db.Omit("Author").Create(book).Error; err != nil {
		return err
	}
	return r.db.Preload("Author").First(book, book.ID).Error
}

// FindByISBN retrieves a book by its exact ISBN.
// Returns gorm.ErrRecordNotFound when no book carries this ISBN.
func (r *Repository) FindByISBN(isbn string) (*entities.Book, error) {
	var book entities.Book
	err := r.db.Preload("Author").Where("isbn = ?", isbn).First(&book).Error
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// GetByID retrieves a book by ID with its author populated.
func (r *Repository) GetByID(id uint) (*entities.Book, error) {
	var book entities.Book
	err := r.db.Preload("Author").First(&book, id).Error
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// Search returns books matching every supplied filter as a case-insensitive
// substring, with authors populated. A non-zero userID restricts the results
// to books that user has saved; zero searches the whole catalog. The full
// matching set is returned, unpaginated.
func (r *Repository) Search(filters Filters, userID uint) ([]entities.Book, error) {
	query := r.db.Model(&entities.Book{}).Preload("Author").
		Joins("JOIN authors ON authors.id = books.author_id")

	if filters.Title != "" {
		query = query.Where("LOWER(books.title) LIKE LOWER(?)", "%"+filters.Title+"%")
	}
	if filters.Author != "" {
		query = query.Where("LOWER(authors.name) LIKE LOWER(?)", "%"+filters.Author+"%")
	}
	if filters.ISBN != "" {
		query = query.Where("LOWER(books.isbn) LIKE LOWER(?)", "%"+filters.ISBN+"%")
	}
	if userID != 0 {
		query = query.Joins("JOIN user_books ON user_books.book_id = books.id AND user_books.user_id = ?", userID)
	}

	var found []entities.Book
	err := query.Order("books.id ASC").Find(&found).Error
	return found, err
}
