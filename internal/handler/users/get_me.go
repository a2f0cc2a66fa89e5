// File: internal/handler/users/get_me.go
package users

import (
	"net/http"

	"savory/internal/api"
	"savory/internal/database"
	"savory/internal/middleware"
	"savory/internal/repository"

	"github.com/labstack/echo/v4"
)

// GetMeHandler 取得當前使用者資訊
// @Summary     Get current user info
// @Description 透過會話取得當前使用者詳細資訊
// @Tags        users
// @Produce     json
// @Success     200 {object} api.UserResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/me [get]
func GetMeHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess := middleware.SessionFromContext(c)
		if sess == nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing session"})
		}

		user, err := repository.GetUserByID(c.Request().Context(), db, sess.UserID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to load user"})
		}

		return c.JSON(http.StatusOK, api.NewUserResponse(user))
	}
}
