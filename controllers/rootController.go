package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// rootHandler handles requests to the root path
func rootHandler(c *gin.Context) {
	c.Status(http.StatusOK)
	if _, err := c.Writer.Write([]byte("UnifyMD API")); err != nil {
		log.Error().Err(err).Msg("error writing response")
	}
}

// authRedirect sends the browser to a hosted page of the auth provider.
func authRedirect(authURL, page string) gin.HandlerFunc {
	target := strings.TrimRight(authURL, "/") + "/" + page
	return func(c *gin.Context) {
		c.Redirect(http.StatusFound, target)
	}
}

// SetupRootRoute registers the public pages.
func SetupRootRoute(router *gin.Engine, authURL string) {
	router.GET("/", rootHandler)
	router.GET("/login", authRedirect(authURL, "login"))
	router.GET("/signup", authRedirect(authURL, "signup"))
}
