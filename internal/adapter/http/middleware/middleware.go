package middleware

import (
	"net/http"
	"strings"

	"elo_drinks/internal/domain/entities"
	"elo_drinks/internal/usecase/interfaces"
	"elo_drinks/pkg"

	"github.com/gin-gonic/gin"
)

const (
	userIDKey   = "user_id"
	userRoleKey = "user_role"
)

// CORS allows the browser storefront to call the API from another origin.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}

		c.Next()
	}
}

// RequireAuth validates the Bearer token and stores the verified identity on
// the gin context.
func RequireAuth(tokens interfaces.ITokenIssuer) gin.HandlerFunc {
	unauthorized := pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid access token", http.StatusUnauthorized)

	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(unauthorized.HTTPStatus, unauthorized.ToHTTPError())
			return
		}

		claims, err := tokens.Verify(strings.TrimSpace(token))
		if err != nil {
			c.AbortWithStatusJSON(unauthorized.HTTPStatus, unauthorized.ToHTTPError())
			return
		}

		c.Set(userIDKey, claims.UserID)
		c.Set(userRoleKey, string(claims.Role))
		c.Next()
	}
}

// RequireAdmin gates back-office routes. Must run after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	forbidden := pkg.NewDomainErrorSimple("FORBIDDEN", "Admin role required", http.StatusForbidden)

	return func(c *gin.Context) {
		if RoleFromContext(c) != entities.RoleAdmin {
			c.AbortWithStatusJSON(forbidden.HTTPStatus, forbidden.ToHTTPError())
			return
		}
		c.Next()
	}
}

func UserIDFromContext(c *gin.Context) string {
	return c.GetString(userIDKey)
}

func RoleFromContext(c *gin.Context) entities.UserRole {
	return entities.UserRole(c.GetString(userRoleKey))
}
