// File: internal/model/user.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Role 是封閉的角色列舉，註冊時指定後不再變更，為唯一的授權依據
type Role string

const (
	RoleCustomer Role = "Customer"
	RoleAdmin    Role = "Admin"
	RoleChef     Role = "Chef"
)

// Valid 回報角色是否屬於封閉列舉
func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleAdmin, RoleChef:
		return true
	}
	return false
}

type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Email        string    `db:"email" json:"email"`
	Phone        string    `db:"phone" json:"phone"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         Role      `db:"role" json:"role"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
