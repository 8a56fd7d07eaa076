package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-Id"

// RequestID ensures every request carries an X-Request-Id: incoming values
// are propagated, missing ones are minted. The id is echoed on the response
// and stored in the gin context for the logging and tracing middleware.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
			c.Request.Header.Set(requestIDHeader, id)
		}
		c.Writer.Header().Set(requestIDHeader, id)
		c.Set(requestIDHeader, id)
		c.Next()
	}
}

// RequestIDFromContext returns the id stored by RequestID, or "" when the
// middleware did not run for this request.
func RequestIDFromContext(c *gin.Context) string {
	val, _ := c.Get(requestIDHeader)
	id, _ := val.(string)
	return id
}
