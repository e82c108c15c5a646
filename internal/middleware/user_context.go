package middleware

import (
	"lull-backoffice/internal/database"
	"lull-backoffice/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// CurrentUserKey is the gin context key holding the signed-in models.User.
const CurrentUserKey = "CurrentUser"

// InjectUser loads the session's user from the store.
func InjectUser(store database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)

		if uid, ok := sess.Get(SessionUserID).(uint); ok && uid > 0 {
			if user, err := store.FindUserByID(c.Request.Context(), uid); err == nil {
				c.Set(CurrentUserKey, user)
			}
		}

		c.Next()
	}
}

// CurrentUser returns the user set by InjectUser.
func CurrentUser(c *gin.Context) (models.User, bool) {
	v, ok := c.Get(CurrentUserKey)
	if !ok {
		return models.User{}, false
	}
	user, ok := v.(models.User)
	return user, ok
}
