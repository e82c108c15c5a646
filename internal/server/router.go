package server

import (
	"net/http"

	"lull-backoffice/internal/config"
	"lull-backoffice/internal/database"
	"lull-backoffice/internal/handlers"
	"lull-backoffice/internal/middleware"
	"lull-backoffice/internal/models"
	"lull-backoffice/internal/service"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func NewRouter(cfg *config.Config, store database.Store, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.AccessLog(logger))

	sessionStore := cookie.NewStore([]byte(cfg.SessionSecret))
	sessionStore.Options(sessions.Options{Path: "/", HttpOnly: true, SameSite: http.SameSiteLaxMode})
	r.Use(sessions.Sessions("lull_session", sessionStore))

	r.Use(middleware.InjectUser(store))

	h := handlers.New(store, service.New(store, cfg.Clock()), logger)

	// AUTH
	r.POST("/register", h.Register)
	r.POST("/login", h.Login)
	r.POST("/logout", h.Logout)

	api := r.Group("/api")
	api.Use(middleware.RequireAuth())

	api.GET("/me", h.Me)
	api.GET("/dashboard", h.Page(service.PageDashboard))

	// 勤怠
	api.GET("/attendance", h.Page(service.PageAttendance))
	api.GET("/attendance/export", h.Export(service.PageAttendance))

	// 請求: export only for admin + accounting
	api.GET("/billing", h.Page(service.PageBilling))
	api.GET("/billing/export",
		middleware.RequireRole(models.RoleAdmin, models.RoleAccounting),
		h.Export(service.PageBilling),
	)

	// 契約
	api.GET("/contracts", h.Page(service.PageContracts))
	api.GET("/contracts/export", h.Export(service.PageContracts))

	// 顧客
	api.GET("/customers", h.Page(service.PageCustomers))
	api.POST("/customers",
		middleware.RequireRole(models.RoleAdmin, models.RoleSales),
		h.CreateCustomer,
	)
	api.GET("/customers/export", h.Export(service.PageCustomers))

	api.GET("/uploads", h.Page(service.PageUploads))
	api.GET("/master", h.Page(service.PageMaster))

	// AUDIT
	api.GET("/audit",
		middleware.RequireRole(models.RoleAdmin, models.RoleViewer),
		h.ListAuditLogs,
	)

	// HEALTHCHECK
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, handlers.Response{Error: "not found"})
	})

	return r
}
