package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"savory/internal/database"
	"savory/internal/model"
	"savory/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type realValidator struct{ v *validator.Validate }

func (rv realValidator) Validate(i any) error { return rv.v.Struct(i) }

// createRow 回應 INSERT ... RETURNING id, created_at
type createRow struct {
	id  uuid.UUID
	err error
}

func (r createRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*dest[0].(*uuid.UUID) = r.id
	*dest[1].(*time.Time) = time.Now()
	return nil
}

func TestRegisterHandler(t *testing.T) {
	form := "name=Ana&email=Ana%40x.com&phone=555&password=secret1&role=Customer"

	// validate error：缺欄位、非法角色，皆不碰資料庫
	e := echo.New()
	e.Validator = realValidator{v: validator.New()}
	for _, body := range []string{
		"email=a%40x.com&phone=5&password=secret1&role=Customer", // missing name
		"name=A&email=a%40x.com&phone=5&password=secret1&role=Boss",
		"name=A&email=notanemail&phone=5&password=secret1&role=Customer",
	} {
		ctx, rec := newFormCtx(e, body)
		h := RegisterHandler(&database.FakeDB{})
		require.NoError(t, h(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code, body)
	}

	// duplicate email → 409 且不新增資料列
	queries := 0
	db := &database.FakeDB{QueryRowFn: func(_ context.Context, sql string, _ ...any) pgx.Row {
		queries++
		require.True(t, strings.HasPrefix(strings.TrimSpace(sql), "SELECT"))
		return fakeUserRow{u: model.User{ID: uuid.New(), Email: "ana@x.com"}}
	}}
	ctx, rec := newFormCtx(e, form)
	require.NoError(t, RegisterHandler(db)(ctx))
	require.Equal(t, http.StatusConflict, rec.Code)
	require.Contains(t, rec.Body.String(), "email already registered")
	require.Equal(t, 1, queries)

	// lookup 失敗（非查無資料）→ 500
	db = &database.FakeDB{QueryRowFn: func(context.Context, string, ...any) pgx.Row {
		return fakeUserRow{err: errors.New("connection reset")}
	}}
	ctx, rec = newFormCtx(e, form)
	require.NoError(t, RegisterHandler(db)(ctx))
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	// insert 失敗 → 500
	db = &database.FakeDB{QueryRowFn: func(_ context.Context, sql string, _ ...any) pgx.Row {
		if strings.HasPrefix(strings.TrimSpace(sql), "SELECT") {
			return fakeUserRow{err: pgx.ErrNoRows}
		}
		return createRow{err: errors.New("insert failed")}
	}}
	ctx, rec = newFormCtx(e, form)
	require.NoError(t, RegisterHandler(db)(ctx))
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	// success：email 轉小寫、密碼以 bcrypt 儲存、不自動登入
	assigned := uuid.New()
	var insertArgs []any
	db = &database.FakeDB{QueryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
		if strings.HasPrefix(strings.TrimSpace(sql), "SELECT") {
			require.Equal(t, "ana@x.com", args[0])
			return fakeUserRow{err: pgx.ErrNoRows}
		}
		insertArgs = args
		return createRow{id: assigned}
	}}
	ctx, rec = newFormCtx(e, form)
	require.NoError(t, RegisterHandler(db)(ctx))
	require.Equal(t, http.StatusCreated, rec.Code)

	require.Len(t, insertArgs, 5)
	require.Equal(t, "ana@x.com", insertArgs[1])
	storedHash := insertArgs[3].(string)
	require.NoError(t, service.ComparePassword(storedHash, "secret1"))
	require.Equal(t, model.RoleCustomer, insertArgs[4])

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, assigned.String(), resp["id"])
	require.NotContains(t, resp, "access_token")
	require.NotContains(t, rec.Body.String(), storedHash)
}
