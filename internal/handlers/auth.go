package handlers

import (
	"errors"
	"net/http"
	"strings"

	"lull-backoffice/internal/database"
	"lull-backoffice/internal/middleware"
	"lull-backoffice/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type registerForm struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
	Role     string `form:"role" json:"role"`
}

func (h *Handler) Register(c *gin.Context) {
	var form registerForm
	if err := c.ShouldBind(&form); err != nil {
		h.fail(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	form.Username = strings.TrimSpace(form.Username)
	if len(form.Username) < 3 || len(form.Password) < 6 {
		h.fail(c, http.StatusBadRequest, "username or password too short", nil)
		return
	}
	if len(form.Username) > models.MaxUsernameLen {
		h.fail(c, http.StatusBadRequest, "username too long", nil)
		return
	}

	role := models.UserRole(form.Role)

	// admins are only created from configuration
	switch role {
	case models.RoleSales, models.RoleAccounting, models.RoleViewer:
	default:
		h.fail(c, http.StatusBadRequest, "invalid role", nil)
		return
	}

	ctx := c.Request.Context()
	if _, err := h.store.FindUserByUsername(ctx, form.Username); err == nil {
		h.fail(c, http.StatusBadRequest, "user already exists", nil)
		return
	} else if !errors.Is(err, database.ErrNotFound) {
		h.fail(c, http.StatusInternalServerError, "failed to check user", err)
		return
	}

	if err := database.CreateUserWithPassword(ctx, h.store, form.Username, form.Password, role); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			h.fail(c, http.StatusBadRequest, "user already exists", err)
			return
		}
		h.fail(c, http.StatusInternalServerError, "failed to save user", err)
		return
	}

	user, err := h.store.FindUserByUsername(ctx, form.Username)
	if err != nil {
		h.fail(c, http.StatusInternalServerError, "failed to load user", err)
		return
	}
	database.RecordAudit(ctx, h.store, h.logger, user.ID, "user", user.Username, "create", "ユーザー登録: "+string(user.Role))

	render(c, http.StatusCreated, user)
}

type loginForm struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
}

func (h *Handler) Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		h.fail(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	ctx := c.Request.Context()
	user, err := database.Authenticate(ctx, h.store, strings.TrimSpace(form.Username), form.Password)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) || errors.Is(err, database.ErrInvalidCredentials) {
			h.fail(c, http.StatusUnauthorized, "invalid username or password", nil)
			return
		}
		h.fail(c, http.StatusInternalServerError, "failed to authenticate", err)
		return
	}

	sess := sessions.Default(c)
	sess.Set(middleware.SessionUserID, user.ID)
	sess.Set(middleware.SessionRole, string(user.Role))
	if err := sess.Save(); err != nil {
		h.fail(c, http.StatusInternalServerError, "failed to save session", err)
		return
	}
	database.RecordAudit(ctx, h.store, h.logger, user.ID, "user", user.Username, "login", "")

	render(c, http.StatusOK, user)
}

func (h *Handler) Logout(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Clear()
	sess.Options(sessions.Options{Path: "/", MaxAge: -1})
	_ = sess.Save()
	render(c, http.StatusOK, nil)
}

// Me returns the signed-in user.
func (h *Handler) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		h.fail(c, http.StatusUnauthorized, "login required", nil)
		return
	}
	render(c, http.StatusOK, user)
}
