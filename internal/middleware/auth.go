package middleware

import (
	"net/http"

	"lull-backoffice/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Session keys written by the login handler.
const (
	SessionUserID = "user_id"
	SessionRole   = "role"
)

type errorBody struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)
		if sess.Get(SessionUserID) == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorBody{Error: "login required"})
			return
		}
		c.Next()
	}
}

func RequireRole(roles ...models.UserRole) gin.HandlerFunc {
	roleSet := map[models.UserRole]struct{}{}
	for _, r := range roles {
		roleSet[r] = struct{}{}
	}

	return func(c *gin.Context) {
		sess := sessions.Default(c)
		roleStr, ok := sess.Get(SessionRole).(string)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorBody{Error: "login required"})
			return
		}

		if _, ok := roleSet[models.UserRole(roleStr)]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, errorBody{Error: "access denied"})
			return
		}
		c.Next()
	}
}
