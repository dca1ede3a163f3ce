package handlers

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/tharunbanothpersonal-spec/radha-travels/internal/domain"
)

// RespondDomainError maps domain errors to HTTP responses. Store and
// driver errors never reach the client verbatim; the detail is logged
// and the caller sees a generic message.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		c.JSON(400, gin.H{"ok": false, "error": err.Error()})
	case domain.IsNotFound(err):
		c.JSON(404, gin.H{"ok": false, "error": err.Error()})
	case domain.IsConflict(err):
		c.JSON(409, gin.H{"ok": false, "error": err.Error()})
	case domain.IsAuth(err):
		c.JSON(401, gin.H{"ok": false, "error": "unauthorized"})
	default:
		log.Printf("%s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(500, gin.H{"ok": false, "error": "internal"})
	}
}
