// File: internal/service/dashboard.go
package service

import (
	"savory/internal/model"
)

// PartitionByDay 將訂位切分為「今日」與「之後」兩組，保留輸入排序。
// today 以 model.DateLayout 格式傳入；早於 today 的訂位不會出現在任一組。
func PartitionByDay(rs []model.Reservation, today string) (todays, upcoming []model.Reservation) {
	for _, r := range rs {
		switch {
		case r.Date == today:
			todays = append(todays, r)
		case r.Date > today:
			upcoming = append(upcoming, r)
		}
	}
	return todays, upcoming
}

// SplitUsersByRole 將使用者依角色切分為顧客與主廚（管理員不列入任一組）
func SplitUsersByRole(us []model.User) (customers, chefs []model.User) {
	for _, u := range us {
		switch u.Role {
		case model.RoleCustomer:
			customers = append(customers, u)
		case model.RoleChef:
			chefs = append(chefs, u)
		}
	}
	return customers, chefs
}

// TotalGuests 加總訂位人數
func TotalGuests(rs []model.Reservation) int {
	total := 0
	for _, r := range rs {
		total += r.NumPeople
	}
	return total
}
