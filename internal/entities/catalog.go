package entities

import (
	"time"
)

// Author name is indexed but deliberately not unique: concurrent add-book
// requests can race past the lookup and both insert. Resolution prefers
// reuse over failure, so duplicates are tolerated rather than constrained.
type Author struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"index;size:256" json:"name"`
	Books     []Book    `gorm:"foreignKey:AuthorID" json:"books,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type Book struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	Title    string  `gorm:"index;size:512" json:"title"`
	ISBN     *string `gorm:"uniqueIndex;size:20" json:"isbn,omitempty"` // NULL when not supplied; unique index skips NULLs
	AuthorID uint    `gorm:"index;not null" json:"author_id"`
	Author   Author  `gorm:"foreignKey:AuthorID" json:"author"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserBook records that a user saved a book to their shelf. One row per
// (user, book) pair, enforced by the composite unique index.
type UserBook struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex:idx_user_book;not null" json:"user_id"`
	BookID    uint      `gorm:"uniqueIndex:idx_user_book;not null" json:"book_id"`
	CreatedAt time.Time `json:"created_at"`
}
