package handlers

import (
	"net/http"

	"disruptive/models"

	"github.com/gin-gonic/gin"
)

// ListPermissionsHandler handles GET /api/permissions. The vocabulary is
// fixed at compile time; the response also names the content field each tag
// licenses so clients can build forms without hardcoding the mapping.
func ListPermissionsHandler(c *gin.Context) {
	perms := models.AllPermissions()
	out := make([]gin.H, 0, len(perms))
	for _, p := range perms {
		out = append(out, gin.H{"name": p, "field": p.Field()})
	}
	c.JSON(http.StatusOK, out)
}
