package routes

import (
	"net/http"
	"strings"

	"truetickets/pkg"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Groups injected by the gateway authorizer that may reach the
// financial and migration endpoints.
var managerGroups = []string{
	"TrueTickets-Cacell-ApplicationAdmin",
	"TrueTickets-Cacell-Owner",
	"TrueTickets-Cacell-Manager",
}

var errForbidden = pkg.NewDomainErrorSimple("FORBIDDEN", "This endpoint requires a manager role", http.StatusForbidden)

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		if c.Request.Method == http.MethodOptions {
			c.Header("Access-Control-Allow-Methods", "GET,POST,PUT,DELETE,OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization, If-Modified-Since, X-User-Groups")
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header("X-Request-Id", id)
		c.Next()
	}
}

// requireManager gates an endpoint on the comma-separated
// X-User-Groups header the gateway authorizer injects.
func requireManager() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !isManager(c.GetHeader("X-User-Groups")) {
			c.AbortWithStatusJSON(errForbidden.HTTPStatus, errForbidden.ToHTTPError())
			return
		}
		c.Next()
	}
}

func isManager(header string) bool {
	for _, g := range strings.Split(header, ",") {
		g = strings.TrimSpace(g)
		for _, allowed := range managerGroups {
			if g == allowed {
				return true
			}
		}
	}
	return false
}
