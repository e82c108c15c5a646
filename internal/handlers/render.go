package handlers

import (
	"lull-backoffice/internal/middleware"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Response is the envelope of every API response.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func render(c *gin.Context, status int, data interface{}) {
	c.JSON(status, Response{Success: true, Data: data})
}

// fail logs err with the request id and writes msg as the error envelope.
func (h *Handler) fail(c *gin.Context, status int, msg string, err error) {
	fields := []zap.Field{
		zap.String("path", c.Request.URL.Path),
		zap.String("request_id", middleware.GetRequestID(c)),
		zap.Int("status", status),
	}
	if err != nil {
		fields = append(fields, zap.Error(err))
		_ = c.Error(err)
	}
	if status >= 500 {
		h.logger.Error(msg, fields...)
	} else {
		h.logger.Debug(msg, fields...)
	}
	c.AbortWithStatusJSON(status, Response{Error: msg})
}

// sessionUserID returns the signed-in user's id, or 0.
func sessionUserID(c *gin.Context) uint {
	uid, _ := sessions.Default(c).Get(middleware.SessionUserID).(uint)
	return uid
}
