package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorHandler converts panics into a generic JSON 500 response. The full
// fault is logged internally; nothing beyond the generic message reaches the
// caller.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Printf("Unhandled error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "Internal Server Error. Please try again later.",
				})
			}
		}()

		c.Next()
	}
}
