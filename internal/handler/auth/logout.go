// File: internal/handler/auth/logout.go
package auth

import (
	"net/http"

	"savory/internal/api"
	"savory/internal/cache"
	"savory/internal/middleware"
	"savory/internal/service"

	"github.com/labstack/echo/v4"
)

// LogoutHandler 登出並撤銷會話鏡像（冪等）
// @Summary     登出使用者
// @Description 刪除 Redis 中的會話鏡像；重複登出同樣成功
// @Tags        auth
// @Produce     json
// @Success     204
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /auth/logout [post]
func LogoutHandler(cch cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := c.Get(middleware.ContextTokenKey).(string)
		if !ok || token == "" {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}

		if err := service.EndSession(c.Request().Context(), cch, token); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to end session"})
		}
		return c.NoContent(http.StatusNoContent)
	}
}
