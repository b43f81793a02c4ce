package guard

import (
	"net/http"

	"catalog-app/internal/app/http/middleware"
	"catalog-app/internal/domain/access"

	"github.com/gin-gonic/gin"
)

// Require runs the access policy for the current request and writes the
// 401/403 response on denial. Handlers bail out when it returns false.
func Require(c *gin.Context, action access.Action, resource access.Resource, ownerID uint) bool {
	p := middleware.CurrentPrincipal(c)

	switch access.Authorize(p, action, resource, ownerID) {
	case access.Allow:
		return true
	case access.DenyUnauthenticated:
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication credentials were not provided"})
	default:
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not have permission to perform this action"})
	}
	c.Abort()
	return false
}
