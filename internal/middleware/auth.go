package middleware

import (
	"strings"

	"kpi_tracker_backend/internal/config"
	"kpi_tracker_backend/internal/model"
	"kpi_tracker_backend/internal/repository"
	"kpi_tracker_backend/internal/util"

	"github.com/gin-gonic/gin"
)

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

// AuthMiddleware requires a valid bearer token and stores the claims on the
// context under "user".
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := util.ParseJWT(token, cfg.JWT.Secret)
		if err != nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set("user", claims)
		c.Next()
	}
}

// TryAuthMiddleware attaches claims when a valid token is present but never
// rejects the request. Public endpoints use it to vary visibility by
// viewer.
func TryAuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := bearerToken(c); token != "" {
			if claims, err := util.ParseJWT(token, cfg.JWT.Secret); err == nil {
				c.Set("user", claims)
			}
		}
		c.Next()
	}
}

// RoleMiddleware gates a route group to one role. Must run after
// AuthMiddleware.
func RoleMiddleware(role model.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := util.GetUserFromContext(c)
		if claims == nil || claims.Role != role {
			util.Forbidden(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

// ActivityMiddleware records last-seen for authenticated traffic. The write
// is fire-and-forget; presence tracking must not slow requests down.
func ActivityMiddleware(userRepo *repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims := util.GetUserFromContext(c); claims != nil {
			go userRepo.UpdateLastSeen(claims.UserID)
		}
		c.Next()
	}
}
