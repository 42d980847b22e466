package middleware

import (
	"strings"

	"souq-api/i18n"
	"souq-api/models"
	"souq-api/utils"

	"github.com/gin-gonic/gin"
)

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			i18n.RespondError(c, models.ErrUnauthorized("auth.unauthorized"))
			c.Abort()
			return
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			i18n.RespondError(c, models.ErrUnauthorized("auth.unauthorized"))
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(tokenParts[1])
		if err != nil {
			i18n.RespondError(c, models.ErrUnauthorized("auth.unauthorized"))
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_email", claims.Email)
		c.Set("user_role", claims.Role)
		c.Next()
	}
}

func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("user_role")
		if !exists || role != models.RoleAdmin {
			i18n.RespondError(c, models.ErrForbidden("auth.forbidden"))
			c.Abort()
			return
		}

		c.Next()
	}
}
