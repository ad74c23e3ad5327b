package api

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// Helper to return JSON error response and abort request
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

// RequestTimeout bounds every request with a context deadline. Store calls made with
// c.Request.Context() inherit it.
func RequestTimeout(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// CORS allows any origin, as the frontend is served from a different host.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// recoverWithJSON turns a panic into the generic 500 body.
func recoverWithJSON(c *gin.Context, recovered any) {
	log.Printf("ERROR: Panic serving %s %s: %v", c.Request.Method, c.Request.URL.Path, recovered)
	abortWithError(c, http.StatusInternalServerError, "Internal server error")
}

// parseIDParam reads an integer path parameter. A non-integer value aborts with 422,
// never 404.
func parseIDParam(c *gin.Context, name string) (int, bool) {
	raw := c.Param(name)
	id, err := strconv.Atoi(raw)
	if err != nil {
		abortWithError(c, http.StatusUnprocessableEntity, fmt.Sprintf("Invalid %s '%s': must be an integer", name, raw))
		return 0, false
	}
	return id, true
}
