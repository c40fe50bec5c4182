package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mybooksapp/mybooks/internal/catalog"
	"github.com/mybooksapp/mybooks/internal/database/books"
	"github.com/mybooksapp/mybooks/internal/entities"
	"github.com/mybooksapp/mybooks/internal/library"
)

// BookSearcher filters the catalog, optionally scoped to a user's shelf.
type BookSearcher interface {
	Search(filters books.Filters, userID uint) ([]entities.Book, error)
}

type BooksController struct {
	catalog  *catalog.Service
	library  *library.Service
	searcher BookSearcher
}

func NewBooksController(catalogService *catalog.Service, libraryService *library.Service, searcher BookSearcher) *BooksController {
	return &BooksController{
		catalog:  catalogService,
		library:  libraryService,
		searcher: searcher,
	}
}

type addBookRequest struct {
	Title      string `json:"title"`
	ISBN       string `json:"isbn"`
	AuthorName string `json:"authorName"`
	UserID     uint   `json:"userId"`
}

// AddBook resolves an add-book submission through the catalog service.
func (controller *BooksController) AddBook(c *gin.Context) {
	var req addBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	book, err := controller.catalog.AddBook(req.Title, req.ISBN, req.AuthorName, req.UserID)
	switch {
	case errors.Is(err, catalog.ErrTitleRequired), errors.Is(err, catalog.ErrAuthorNameRequired):
		respondBadRequest(c, err.Error())
		return
	case errors.Is(err, catalog.ErrDuplicateISBN):
		respondError(c, http.StatusConflict, err.Error())
		return
	case errors.Is(err, library.ErrAlreadySaved):
		respondError(c, http.StatusConflict, err.Error())
		return
	case err != nil:
		respondInternalError(c, err, "add book")
		return
	}

	respondCreated(c, book)
}

// FindBooks searches the catalog with partial, case-insensitive filters.
// A userId query parameter restricts results to that user's saved books;
// when absent the whole catalog is searched.
func (controller *BooksController) FindBooks(c *gin.Context) {
	userID, ok := parseOptionalQueryID(c, "userId")
	if !ok {
		return
	}

	filters := books.Filters{
		Title:  c.Query("title"),
		Author: c.Query("author"),
		ISBN:   c.Query("isbn"),
	}

	found, err := controller.searcher.Search(filters, userID)
	if err != nil {
		respondInternalError(c, err, "find books")
		return
	}

	c.JSON(http.StatusOK, found)
}

type saveBookRequest struct {
	UserID uint `json:"userId" binding:"required"`
}

// SaveBook records a book on a user's shelf.
func (controller *BooksController) SaveBook(c *gin.Context) {
	bookID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req saveBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "userId is required")
		return
	}

	err := controller.library.SaveBook(req.UserID, bookID)
	switch {
	case errors.Is(err, library.ErrAlreadySaved):
		respondError(c, http.StatusConflict, err.Error())
		return
	case err != nil:
		respondInternalError(c, err, "save book")
		return
	}

	respondSuccess(c, "Book saved")
}
