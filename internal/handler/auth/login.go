// File: internal/handler/auth/login.go
package auth

import (
	"net/http"
	"strings"
	"time"

	"savory/internal/api"
	"savory/internal/cache"
	"savory/internal/database"
	"savory/internal/repository"
	"savory/internal/service"

	"github.com/labstack/echo/v4"
)

// LoginHandler 使用 Email/Password 驗證並開啟會話
// @Summary     登入使用者
// @Description 使用 Email 與 Password 進行驗證，成功回傳存取令牌與使用者資料。
// @Description 查無帳號與密碼錯誤刻意回傳相同訊息，避免帳號枚舉。
// @Tags        auth
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       email    formData string true "使用者 Email"
// @Param       password formData string true "使用者密碼"
// @Success     200      {object} api.LoginResponse
// @Failure     400      {object} api.ErrorResponse
// @Failure     401      {object} api.ErrorResponse
// @Failure     500      {object} api.ErrorResponse
// @Router      /auth/login [post]
func LoginHandler(db database.DB, cch cache.Cache, sessionTTL time.Duration) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		// 以 email 精確比對撈使用者；查無與密碼錯誤回傳相同訊息
		user, err := repository.GetUserByEmail(c.Request().Context(), db, strings.ToLower(req.Email))
		if err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid email or password"})
		}

		authUser, err := service.AuthenticateUser(*user, req.Password)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid email or password"})
		}

		// 發行令牌並寫入會話鏡像（同一操作）
		token, err := service.StartSession(c.Request().Context(), cch, *authUser, sessionTTL)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to start session"})
		}

		return c.JSON(http.StatusOK, api.LoginResponse{
			AccessToken: token,
			User:        api.NewUserResponse(authUser),
		})
	}
}
