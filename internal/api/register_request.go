package api

// swagger:model api.RegisterRequest
type RegisterRequest struct {
	Name     string `form:"name" validate:"required" example:"Ana"`
	Email    string `form:"email" validate:"required,email" example:"ana@example.com"`
	Phone    string `form:"phone" validate:"required" example:"555-0199"`
	Password string `form:"password" validate:"required,min=6" example:"Secret123!"`
	Role     string `form:"role" validate:"required,oneof=Customer Admin Chef" example:"Customer"`
}
