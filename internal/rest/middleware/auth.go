package middleware

import (
	"net/http"
	"strings"

	"github.com/Kal1-linux/CouponCo/internal/auth"
	"github.com/Kal1-linux/CouponCo/internal/config"
	"github.com/Kal1-linux/CouponCo/internal/logger"
	"github.com/Kal1-linux/CouponCo/internal/types"
	"github.com/gin-gonic/gin"
)

// AuthenticateMiddleware authenticates requests using a JWT bearer token in
// the Authorization header and sets the user identity in the request context.
func AuthenticateMiddleware(cfg *config.Configuration, logger *logger.Logger) gin.HandlerFunc {
	authService := auth.NewService(cfg)

	return func(c *gin.Context) {
		authHeader := c.GetHeader(types.HeaderAuthorization)
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header"})
			c.Abort()
			return
		}

		claims, err := authService.ValidateToken(tokenString)
		if err != nil {
			logger.Debugw("invalid bearer token", "error", err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		ctx := c.Request.Context()
		ctx = types.SetUserID(ctx, claims.UserID)
		ctx = types.SetIsAdmin(ctx, claims.IsAdmin)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// AdminMiddleware rejects authenticated requests whose token does not carry
// the admin role. It must run after AuthenticateMiddleware.
func AdminMiddleware(c *gin.Context) {
	if !types.IsAdmin(c.Request.Context()) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
		c.Abort()
		return
	}
	c.Next()
}
