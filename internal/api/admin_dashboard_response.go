package api

// swagger:model api.AdminDashboardResponse
type AdminDashboardResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	Customers    []UserResponse        `json:"customers"`
	Chefs        []UserResponse        `json:"chefs"`
}
