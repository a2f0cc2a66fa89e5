// File: internal/service/session.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"savory/internal/cache"
	"savory/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:"

// ErrSessionNotFound 表示令牌有效但 Redis 中的會話鏡像不存在（已登出或過期）
var ErrSessionNotFound = errors.New("session not found")

// SessionClaims 定義 JWT 負載內容；jti 即會話鏡像的鍵
type SessionClaims struct {
	UserID uuid.UUID  `json:"user_id"`
	Role   model.Role `json:"role"`
	jwt.RegisteredClaims
}

// AuthenticateUser 以 bcrypt 比對明文密碼，成功回傳使用者
func AuthenticateUser(user model.User, password string) (*model.User, error) {
	if err := ComparePassword(user.PasswordHash, password); err != nil {
		return nil, errors.New("invalid password")
	}
	return &user, nil
}

// IssueSessionToken 依據使用者資訊與 TTL 產生 JWT，回傳令牌與會話 ID (jti)
func IssueSessionToken(user model.User, ttl time.Duration) (string, string, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", "", fmt.Errorf("JWT_SECRET not set")
	}

	now := time.Now()
	sessionID := uuid.NewString()
	claims := SessionClaims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", "", err
	}
	return signed, sessionID, nil
}

// VerifySessionToken 驗證並解析 JWT 令牌
func VerifySessionToken(tokenString string) (*SessionClaims, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET not set")
	}

	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}

// StartSession 發行令牌並在同一操作內寫入 Redis 會話鏡像。
// 鏡像寫入失敗則不回傳令牌，外界不會觀察到部分狀態。
func StartSession(ctx context.Context, cch cache.Cache, user model.User, ttl time.Duration) (string, error) {
	token, sessionID, err := IssueSessionToken(user, ttl)
	if err != nil {
		return "", err
	}

	sess := model.Session{
		UserID:   user.ID,
		Name:     user.Name,
		Email:    user.Email,
		Phone:    user.Phone,
		Role:     user.Role,
		IssuedAt: time.Now(),
	}
	payload, err := json.Marshal(sess)
	if err != nil {
		return "", fmt.Errorf("StartSession: %w", err)
	}

	if err := cch.Set(ctx, sessionKeyPrefix+sessionID, payload, ttl).Err(); err != nil {
		return "", fmt.Errorf("StartSession: %w", err)
	}
	return token, nil
}

// RestoreSession 驗證令牌並讀回會話鏡像；鏡像不存在（已登出、過期、撤銷）則還原失敗
func RestoreSession(ctx context.Context, cch cache.Cache, tokenString string) (*model.Session, error) {
	claims, err := VerifySessionToken(tokenString)
	if err != nil {
		return nil, err
	}

	val, err := cch.Get(ctx, sessionKeyPrefix+claims.ID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("RestoreSession: %w", err)
	}

	var sess model.Session
	if err := json.Unmarshal([]byte(val), &sess); err != nil {
		return nil, fmt.Errorf("RestoreSession: %w", err)
	}
	return &sess, nil
}

// EndSession 刪除會話鏡像；鍵不存在時同樣成功（冪等）
func EndSession(ctx context.Context, cch cache.Cache, tokenString string) error {
	claims, err := VerifySessionToken(tokenString)
	if err != nil {
		return err
	}

	if err := cch.Del(ctx, sessionKeyPrefix+claims.ID).Err(); err != nil {
		return fmt.Errorf("EndSession: %w", err)
	}
	return nil
}
