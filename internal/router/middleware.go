package router

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Abdullah-Awan92/ecommerce-web-api/pkg/global"
	"github.com/Abdullah-Awan92/ecommerce-web-api/pkg/models"
	"github.com/Abdullah-Awan92/ecommerce-web-api/pkg/redis"
)

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}

// AuthRequired resolves the bearer token to a session and puts user id
// and role on the request context.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				global.ErrorResponse("User is not authenticated, please try again.", nil))
			return
		}

		session, err := redis.GetSession(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				global.ErrorResponse("User is not authenticated, please try again.", nil))
			return
		}

		c.Set("user_id", session.UserID)
		c.Set("role", session.Role)
		c.Next()
	}
}

// AdminRequired must run after AuthRequired.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("role") != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				global.ErrorResponse("Admin is not authenticated, please try again.", nil))
			return
		}
		c.Next()
	}
}

// authorizedForUser reports whether the session may act on the given
// user's cart and orders: the user themselves, or an admin.
func authorizedForUser(c *gin.Context, userID string) bool {
	return c.GetString("user_id") == userID || c.GetString("role") == models.RoleAdmin
}
