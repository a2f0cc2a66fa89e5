package auth

import (
	"context"
	"net/http"
	"testing"
	"time"

	"savory/internal/cache"
	"savory/internal/middleware"
	"savory/internal/model"
	"savory/internal/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestLogoutHandler(t *testing.T) {
	t.Setenv("JWT_SECRET", "s")
	e := echo.New()

	token, _, err := service.IssueSessionToken(model.User{ID: uuid.New(), Role: model.RoleCustomer}, time.Minute)
	require.NoError(t, err)

	// 中介層未放入令牌 → 401
	ctx, rec := newFormCtx(e, "")
	require.NoError(t, LogoutHandler(&cache.FakeCache{})(ctx))
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// 撤銷失敗 → 500
	ctx, rec = newFormCtx(e, "")
	ctx.Set(middleware.ContextTokenKey, token)
	cch := &cache.FakeCache{DelFn: func(context.Context, ...string) *redis.IntCmd {
		return redis.NewIntResult(0, redis.ErrClosed)
	}}
	require.NoError(t, LogoutHandler(cch)(ctx))
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	// 成功與冪等：刪除不存在的鍵同樣回 204
	var deleted []string
	cch = &cache.FakeCache{DelFn: func(_ context.Context, keys ...string) *redis.IntCmd {
		deleted = append(deleted, keys...)
		return redis.NewIntResult(0, nil)
	}}
	for i := 0; i < 2; i++ {
		ctx, rec = newFormCtx(e, "")
		ctx.Set(middleware.ContextTokenKey, token)
		require.NoError(t, LogoutHandler(cch)(ctx))
		require.Equal(t, http.StatusNoContent, rec.Code)
	}
	require.Len(t, deleted, 2)
	require.Equal(t, deleted[0], deleted[1])
}
