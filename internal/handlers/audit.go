package handlers

import (
	"net/http"
	"strconv"
	"time"

	"lull-backoffice/internal/middleware"
	"lull-backoffice/internal/models"
	"lull-backoffice/internal/presentation"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	defaultAuditLimit = 200
	maxAuditLimit     = 1000
)

type auditEntry struct {
	ID        uint      `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	Username  string    `json:"username"`
	Entity    string    `json:"entity"`
	EntityID  string    `json:"entityId,omitempty"`
	Action    string    `json:"action"`
	Details   string    `json:"details,omitempty"`
}

// ListAuditLogs returns the newest audit entries. Viewers see masked
// usernames.
func (h *Handler) ListAuditLogs(c *gin.Context) {
	limit := defaultAuditLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			h.fail(c, http.StatusBadRequest, "limit must be a positive integer", err)
			return
		}
		limit = min(n, maxAuditLimit)
	}

	logs, err := h.store.AuditLogs(c.Request.Context(), limit)
	if err != nil {
		h.fail(c, http.StatusInternalServerError, "failed to load audit log", err)
		return
	}

	role, _ := sessions.Default(c).Get(middleware.SessionRole).(string)
	mask := models.UserRole(role) != models.RoleAdmin

	entries := make([]auditEntry, 0, len(logs))
	for _, l := range logs {
		username := l.User.Username
		if mask && username != "" {
			username = presentation.MaskEmail(username)
		}
		entries = append(entries, auditEntry{
			ID:        l.ID,
			CreatedAt: l.CreatedAt,
			Username:  username,
			Entity:    l.Entity,
			EntityID:  l.EntityID,
			Action:    l.Action,
			Details:   l.Details,
		})
	}
	render(c, http.StatusOK, entries)
}
