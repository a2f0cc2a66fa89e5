// File: internal/handler/auth/register.go
package auth

import (
	"errors"
	"net/http"
	"strings"

	"savory/internal/api"
	"savory/internal/database"
	"savory/internal/model"
	"savory/internal/repository"
	"savory/internal/service"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

// RegisterHandler 註冊新使用者
// @Summary     註冊使用者
// @Description 建立新帳號 (Email 會自動轉小寫)。角色註冊時指定後不再變更。
// @Description 註冊成功不自動登入。
// @Tags        auth
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       name     formData string true "使用者姓名"
// @Param       email    formData string true "使用者 Email (lowercase)"
// @Param       phone    formData string true "使用者電話"
// @Param       password formData string true "使用者密碼"
// @Param       role     formData string true "角色 (Customer/Admin/Chef)"
// @Success     201      {object} api.UserResponse
// @Failure     400      {object} api.ErrorResponse
// @Failure     409      {object} api.ErrorResponse
// @Failure     500      {object} api.ErrorResponse
// @Router      /auth/register [post]
func RegisterHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		// Email 轉為小寫以確保一致性
		req.Email = strings.ToLower(req.Email)

		// 重複註冊檢查；查詢失敗（非查無資料）視為後端錯誤
		_, err := repository.GetUserByEmail(c.Request().Context(), db, req.Email)
		if err == nil {
			return c.JSON(http.StatusConflict, api.ErrorResponse{Message: "email already registered"})
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "registration failed, please try again"})
		}

		hash, err := service.HashPassword(req.Password)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to hash password"})
		}

		user := &model.User{
			Name:         req.Name,
			Email:        req.Email,
			Phone:        req.Phone,
			PasswordHash: hash,
			Role:         model.Role(req.Role),
		}

		created, err := repository.CreateUser(c.Request().Context(), db, user)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "registration failed, please try again"})
		}

		return c.JSON(http.StatusCreated, api.NewUserResponse(created))
	}
}
