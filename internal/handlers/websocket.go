package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/tharunbanothpersonal-spec/radha-travels/internal/services"
)

// AdminFeed subscribes an authenticated admin dashboard to the live
// booking event stream.
func AdminFeed(hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		adminID := c.GetUint("adminId")
		email := c.GetString("adminEmail")

		services.HandleWebSocket(hub, c.Writer, c.Request, adminID, email)
	}
}
