package api

// swagger:model api.CreateReservationRequest
type CreateReservationRequest struct {
	CustomerName string `form:"customer_name" validate:"required" example:"Ana"`
	Phone        string `form:"phone" validate:"required" example:"555-0199"`
	Date         string `form:"date" validate:"required,datetime=2006-01-02" example:"2025-06-01"`
	Time         string `form:"time" validate:"required,datetime=15:04" example:"19:30"`
	NumPeople    int    `form:"num_people" validate:"required,min=1,max=20" example:"4"`
	Location     string `form:"location" validate:"required" example:"Main Street - Downtown"`
}
