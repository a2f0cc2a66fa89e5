package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestFakeCache(t *testing.T) {
	f := &FakeCache{}
	require.Panics(t, func() { f.Get(context.Background(), "k") })
	require.Panics(t, func() { f.Set(context.Background(), "k", "v", 0) })
	require.Panics(t, func() { f.Del(context.Background(), "k") })
	require.NoError(t, f.Close())

	getCalled := false
	setCalled := false
	delCalled := false
	closeCalled := false

	f.GetFn = func(ctx context.Context, key string) *redis.StringCmd {
		getCalled = true
		return redis.NewStringResult("v", nil)
	}
	f.SetFn = func(ctx context.Context, key string, val any, ttl time.Duration) *redis.StatusCmd {
		setCalled = true
		return redis.NewStatusResult("OK", nil)
	}
	f.DelFn = func(ctx context.Context, keys ...string) *redis.IntCmd {
		delCalled = true
		return redis.NewIntResult(int64(len(keys)), nil)
	}
	f.CloseFn = func() error { closeCalled = true; return nil }

	require.Equal(t, "v", f.Get(context.Background(), "k").Val())
	require.Equal(t, "OK", f.Set(context.Background(), "k", "v", time.Minute).Val())
	require.Equal(t, int64(2), f.Del(context.Background(), "a", "b").Val())
	require.NoError(t, f.Close())
	require.True(t, getCalled)
	require.True(t, setCalled)
	require.True(t, delCalled)
	require.True(t, closeCalled)
}
