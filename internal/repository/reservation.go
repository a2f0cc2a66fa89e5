// File: internal/repository/reservation.go
package repository

import (
	"context"
	"fmt"

	"savory/internal/database"
	"savory/internal/model"

	"github.com/jackc/pgx/v5"
)

func CreateReservation(ctx context.Context, db database.DB, r *model.Reservation) (*model.Reservation, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO reservations (customer_name, phone, date, time, num_people, location, status, user_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, created_at`,
		r.CustomerName,
		r.Phone,
		r.Date,
		r.Time,
		r.NumPeople,
		r.Location,
		r.Status,
		r.UserID,
	)
	if err := row.Scan(&r.ID, &r.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateReservation: %w", err)
	}
	return r, nil
}

// ListReservations 列出所有訂位，依日期由新到舊（管理員儀表板）
func ListReservations(ctx context.Context, db database.DB) ([]model.Reservation, error) {
	rows, err := db.Query(ctx,
		`SELECT id, customer_name, phone, date, time, num_people, location, status, user_id, created_at
		 FROM reservations ORDER BY date DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListReservations: %w", err)
	}
	return scanReservations(rows, "ListReservations")
}

// ListReservationsFrom 列出日期 >= from 的訂位，依日期、時間由近到遠（主廚儀表板）
func ListReservationsFrom(ctx context.Context, db database.DB, from string) ([]model.Reservation, error) {
	rows, err := db.Query(ctx,
		`SELECT id, customer_name, phone, date, time, num_people, location, status, user_id, created_at
		 FROM reservations WHERE date >= $1 ORDER BY date ASC, time ASC`,
		from,
	)
	if err != nil {
		return nil, fmt.Errorf("ListReservationsFrom: %w", err)
	}
	return scanReservations(rows, "ListReservationsFrom")
}

func scanReservations(rows pgx.Rows, op string) ([]model.Reservation, error) {
	defer rows.Close()

	var reservations []model.Reservation
	for rows.Next() {
		var r model.Reservation
		if err := rows.Scan(
			&r.ID,
			&r.CustomerName,
			&r.Phone,
			&r.Date,
			&r.Time,
			&r.NumPeople,
			&r.Location,
			&r.Status,
			&r.UserID,
			&r.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		reservations = append(reservations, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return reservations, nil
}
