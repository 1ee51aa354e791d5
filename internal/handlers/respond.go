package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/botboss/botboss-api/internal/services"
	"github.com/gin-gonic/gin"
)

// respondError maps the service error taxonomy to status codes. Upstream
// gateway failures deliberately hide their cause from the client; the real
// error goes to the server log instead.
func respondError(c *gin.Context, err error, genericMessage string) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrBadRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
	case errors.Is(err, services.ErrUpstream):
		log.Printf("upstream failure: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": genericMessage})
	default:
		log.Printf("internal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": genericMessage})
	}
}
