package handler

import (
	"net/http"

	"pinboard/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Index renders the landing page.
func Index(c *gin.Context) {
	c.HTML(http.StatusOK, "main.html", view(c, middleware.Caller(c), "Pinboard"))
}
