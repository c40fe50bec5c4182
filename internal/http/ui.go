package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type UIController struct{}

func NewUIController() *UIController {
	return &UIController{}
}

// IndexPage renders the single-page UI. All data flows through the JSON
// endpoints; the page itself is static.
func (controller *UIController) IndexPage(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Title": "MyBooks",
	})
}
