// File: internal/model/reservation.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// ReservationStatus 訂位狀態；建立時固定為 pending，狀態轉換由後台人工處理
type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationCancelled ReservationStatus = "cancelled"
)

// Date 與 Time 以 ISO 字串儲存（2006-01-02 / 15:04），
// 排序與範圍過濾可直接用字串比較
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

type Reservation struct {
	ID           uuid.UUID         `db:"id" json:"id"`
	CustomerName string            `db:"customer_name" json:"customer_name"`
	Phone        string            `db:"phone" json:"phone"`
	Date         string            `db:"date" json:"date"`
	Time         string            `db:"time" json:"time"`
	NumPeople    int               `db:"num_people" json:"num_people"`
	Location     string            `db:"location" json:"location"`
	Status       ReservationStatus `db:"status" json:"status"`
	UserID       *uuid.UUID        `db:"user_id" json:"user_id,omitempty"`
	CreatedAt    time.Time         `db:"created_at" json:"created_at"`
}
