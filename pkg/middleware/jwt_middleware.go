package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"tripvisito/pkg/utils"
)

// JWTAuthMiddleware authenticates the bearer token and attaches the decoded
// identity to the request context. Authorization (role checks) is a separate
// stage so routes can declare requirements independently.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Unauthorized: No token provided")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ValidateAccessToken(tokenString)
		if err != nil {
			if errors.Is(err, utils.ErrTokenExpired) {
				utils.RespondError(c, http.StatusUnauthorized, "Access token expired")
			} else {
				utils.RespondError(c, http.StatusUnauthorized, "Invalid access token")
			}
			c.Abort()
			return
		}

		c.Set("user_id", claims.Subject)
		c.Set("roles", claims.Roles)
		c.Set("email", claims.Email)
		c.Set("name", claims.Name)
		c.Next()
	}
}

// RoleMiddleware passes when the authenticated user holds any of the allowed
// roles.
func RoleMiddleware(allowed ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get("roles")
		roles, _ := value.([]string)
		if !exists || len(roles) == 0 {
			utils.RespondError(c, http.StatusUnauthorized, "Unauthorized: No user information found")
			c.Abort()
			return
		}

		if !utils.HasAnyRole(roles, allowed...) {
			utils.RespondError(c, http.StatusForbidden, "Forbidden: insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}
