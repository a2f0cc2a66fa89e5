// File: internal/router/router.go
package router

import (
	"time"

	"github.com/labstack/echo/v4"

	"savory/internal/cache"
	"savory/internal/database"
	"savory/internal/handler"
	"savory/internal/handler/auth"
	"savory/internal/handler/dashboard"
	"savory/internal/handler/reservations"
	"savory/internal/handler/users"
	"savory/internal/middleware"
	"savory/internal/model"
	"savory/internal/service"
	"savory/internal/worker"
)

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, db database.DB, cch cache.Cache, wp worker.Pool, notifier *service.Notifier, sessionTTL time.Duration) {
	api := e.Group("/api")

	// 健康檢查
	api.GET("/ping", handler.PingHandler(db, cch))

	// 註冊、登入、登出
	api.POST("/auth/register", auth.RegisterHandler(db))
	api.POST("/auth/login", auth.LoginHandler(db, cch, sessionTTL))
	api.POST("/auth/logout", auth.LogoutHandler(cch), middleware.RequireSession(cch))

	// 當前使用者個人資料
	api.GET("/users/me", users.GetMeHandler(db), middleware.RequireSession(cch))

	// 訂位開放匿名提交，有會話則連結使用者
	api.POST("/reservations", reservations.CreateHandler(db, wp, notifier), middleware.OptionalSession(cch))

	// 儀表板依角色把關
	api.GET("/dashboard/admin", dashboard.AdminHandler(db), middleware.RequireRole(cch, model.RoleAdmin))
	api.GET("/dashboard/chef", dashboard.ChefHandler(db), middleware.RequireRole(cch, model.RoleChef))
}
