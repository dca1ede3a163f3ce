package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/tharunbanothpersonal-spec/radha-travels/internal/catalog"
)

// GetServices serves the public services and fleet catalog used by the
// booking form and pricing pages.
func GetServices() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{
			"ok":       true,
			"services": catalog.Services,
			"segments": catalog.Segments,
		})
	}
}
