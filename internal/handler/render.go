package handler

import (
	"net/http"

	"pinboard/internal/auth"
	"pinboard/internal/logger"
	"pinboard/internal/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// view returns the variables every page gets: the title, the caller, and a
// login or logout link.
func view(c *gin.Context, caller *model.Identity, title string) gin.H {
	v := gin.H{"title": title}
	if caller != nil {
		v["user"] = caller
		v["logout"] = auth.LogoutURL("/")
	} else {
		v["login"] = auth.LoginURL(c.Request.URL.Path)
	}
	return v
}

// redirect answers with a 302. Not-found and not-allowed on pins and boards
// always end up here instead of an error page.
func redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusFound, location)
}

// storeFailure logs a record store error and answers 500.
func storeFailure(c *gin.Context, msg string, err error) {
	logger.Log.Error(msg, zap.Error(err), zap.String("path", c.Request.URL.Path))
	_ = c.Error(err)
	c.String(http.StatusInternalServerError, "Internal Server Error")
}
