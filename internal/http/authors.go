package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mybooksapp/mybooks/internal/entities"
)

// AuthorStore lists authors with their books.
type AuthorStore interface {
	GetAllWithBooks() ([]entities.Author, error)
}

type AuthorsController struct {
	authors AuthorStore
}

func NewAuthorsController(authors AuthorStore) *AuthorsController {
	return &AuthorsController{authors: authors}
}

// GetAllAuthors returns every author with their books populated.
func (controller *AuthorsController) GetAllAuthors(c *gin.Context) {
	found, err := controller.authors.GetAllWithBooks()
	if err != nil {
		respondInternalError(c, err, "list authors")
		return
	}
	c.JSON(http.StatusOK, found)
}
