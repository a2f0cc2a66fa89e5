package api

import (
	"time"

	"savory/internal/model"

	"github.com/google/uuid"
)

// swagger:model api.UserResponse
type UserResponse struct {
	ID        uuid.UUID  `json:"id" example:"6f1c6f1e-58f2-4b0d-9f64-2b8d6c6a7e10"`
	Name      string     `json:"name" example:"Ana"`
	Email     string     `json:"email" example:"ana@example.com"`
	Phone     string     `json:"phone" example:"555-0199"`
	Role      model.Role `json:"role" example:"Customer"`
	CreatedAt time.Time  `json:"created_at" example:"2025-05-01T15:04:05Z"`
}

// NewUserResponse 由 model.User 組裝回應（不含密碼哈希）
func NewUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
