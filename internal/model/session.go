// File: internal/model/session.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Session 是目前登入者的會話紀錄，鏡像於 Redis（key: session:<jti>）。
// Redis 中該筆紀錄存在與否即為會話是否存活的唯一訊號。
type Session struct {
	UserID   uuid.UUID `json:"user_id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Phone    string    `json:"phone"`
	Role     Role      `json:"role"`
	IssuedAt time.Time `json:"issued_at"`
}

// RoleSatisfied 回報會話是否滿足頁面要求的角色。
// session 為 nil 代表未登入，一律不滿足。
func RoleSatisfied(session *Session, required Role) bool {
	if session == nil {
		return false
	}
	return session.Role == required
}
