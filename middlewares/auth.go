package middlewares

import (
	"fmt"
	"strings"

	"backend/permissions"
	"backend/pkg/resp"
	"backend/repository"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware validates the bearer token and snapshots the caller's
// group memberships into the context as a RoleSet. The token itself
// carries no roles.
func AuthMiddleware(secret string, userRepo *repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			resp.Unauthorized(c, "missing or invalid token")
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(h, "Bearer ")

		token, err := jwt.ParseWithClaims(tokenStr, &utils.Claims{}, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			resp.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}

		claims, ok := token.Claims.(*utils.Claims)
		if !ok || claims.UserID == 0 {
			resp.Unauthorized(c, "invalid claims")
			c.Abort()
			return
		}

		names, err := userRepo.GroupNames(claims.UserID)
		if err != nil {
			resp.ServerError(c, err)
			c.Abort()
			return
		}

		c.Set("userId", claims.UserID)
		c.Set("roles", permissions.NewRoleSet(names...))
		c.Next()
	}
}

// Require gates a route on a role predicate.
func Require(pred func(permissions.RoleSet) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !pred(utils.CurrentRoles(c)) {
			resp.Forbidden(c, "forbidden")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireManagerOrReadOnly lets reads through for everyone and keeps
// writes Manager only.
func RequireManagerOrReadOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !permissions.IsManagerOrReadOnly(utils.CurrentRoles(c), c.Request.Method) {
			resp.Forbidden(c, "forbidden")
			c.Abort()
			return
		}
		c.Next()
	}
}
