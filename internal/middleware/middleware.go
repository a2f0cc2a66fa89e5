package middleware

import (
	"net/http"
	"strings"

	"savory/internal/cache"
	"savory/internal/model"
	"savory/internal/service"

	"github.com/labstack/echo/v4"
)

const (
	// ContextSessionKey 存放 *model.Session
	ContextSessionKey = "session"
	// ContextTokenKey 存放原始 bearer 令牌（登出時撤銷用）
	ContextTokenKey = "session_token"
)

func extractToken(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing token")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header format")
	}
	return parts[1], nil
}

// SessionFromContext 取回中介層放入的會話；未登入回傳 nil
func SessionFromContext(c echo.Context) *model.Session {
	sess, ok := c.Get(ContextSessionKey).(*model.Session)
	if !ok {
		return nil
	}
	return sess
}

// RequireSession 要求已登入：令牌有效且 Redis 會話鏡像存在。
// 會話還原在授權檢查前同步完成。
func RequireSession(cch cache.Cache) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := extractToken(c)
			if err != nil {
				return err
			}
			sess, err := service.RestoreSession(c.Request().Context(), cch, token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired session")
			}
			c.Set(ContextSessionKey, sess)
			c.Set(ContextTokenKey, token)
			return next(c)
		}
	}
}

// RequireRole 在 RequireSession 之上要求指定角色，不符回傳 403
func RequireRole(cch cache.Cache, role model.Role) echo.MiddlewareFunc {
	requireSession := RequireSession(cch)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return requireSession(func(c echo.Context) error {
			if !model.RoleSatisfied(SessionFromContext(c), role) {
				return echo.NewHTTPError(http.StatusForbidden, "access denied")
			}
			return next(c)
		})
	}
}

// OptionalSession 有合法令牌則附上會話，否則以匿名身分放行
func OptionalSession(cch cache.Cache) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := extractToken(c)
			if err != nil {
				return next(c)
			}
			if sess, err := service.RestoreSession(c.Request().Context(), cch, token); err == nil {
				c.Set(ContextSessionKey, sess)
				c.Set(ContextTokenKey, token)
			}
			return next(c)
		}
	}
}
