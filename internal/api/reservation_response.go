package api

import (
	"time"

	"savory/internal/model"

	"github.com/google/uuid"
)

// swagger:model api.ReservationResponse
type ReservationResponse struct {
	ID           uuid.UUID               `json:"id"`
	CustomerName string                  `json:"customer_name" example:"Ana"`
	Phone        string                  `json:"phone" example:"555-0199"`
	Date         string                  `json:"date" example:"2025-06-01"`
	Time         string                  `json:"time" example:"19:30"`
	NumPeople    int                     `json:"num_people" example:"4"`
	Location     string                  `json:"location" example:"Main Street - Downtown"`
	Status       model.ReservationStatus `json:"status" example:"pending"`
	UserID       *uuid.UUID              `json:"user_id,omitempty"`
	CreatedAt    time.Time               `json:"created_at"`
}

// NewReservationResponse 由 model.Reservation 組裝回應
func NewReservationResponse(r *model.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:           r.ID,
		CustomerName: r.CustomerName,
		Phone:        r.Phone,
		Date:         r.Date,
		Time:         r.Time,
		NumPeople:    r.NumPeople,
		Location:     r.Location,
		Status:       r.Status,
		UserID:       r.UserID,
		CreatedAt:    r.CreatedAt,
	}
}

// NewReservationResponses 批次組裝，保留查詢回傳的排序
func NewReservationResponses(rs []model.Reservation) []ReservationResponse {
	out := make([]ReservationResponse, 0, len(rs))
	for i := range rs {
		out = append(out, NewReservationResponse(&rs[i]))
	}
	return out
}
