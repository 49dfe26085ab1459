package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// RespondSuccess writes {"success": true, "data": data}. data is omitted when nil.
func RespondSuccess(c *gin.Context, status int, data interface{}) {
	body := gin.H{"success": true}
	if data != nil {
		body["data"] = data
	}
	c.JSON(status, body)
}

// HttpError logs err and writes {"error": message} to the client. The
// underlying error never reaches the response.
func HttpError(c *gin.Context, message string, status int, err error) {
	log.Error().Err(err).
		Int("status", status).
		Str("path", c.Request.URL.Path).
		Msg(message)
	c.JSON(status, gin.H{"error": message})
}
