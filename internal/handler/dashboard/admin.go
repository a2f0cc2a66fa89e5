// File: internal/handler/dashboard/admin.go
package dashboard

import (
	"net/http"

	"savory/internal/api"
	"savory/internal/database"
	"savory/internal/repository"
	"savory/internal/service"

	"github.com/labstack/echo/v4"
)

// AdminHandler 管理員儀表板
// @Summary     管理員儀表板
// @Description 所有訂位（日期由新到舊）與所有使用者，使用者依角色切分為顧客與主廚。
// @Description 讀取失敗回 500，與空結果明確區分。
// @Tags        dashboard
// @Produce     json
// @Success     200 {object} api.AdminDashboardResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /dashboard/admin [get]
func AdminHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		reservations, err := repository.ListReservations(ctx, db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to load reservations"})
		}

		users, err := repository.ListUsers(ctx, db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to load users"})
		}

		customers, chefs := service.SplitUsersByRole(users)

		resp := api.AdminDashboardResponse{
			Reservations: api.NewReservationResponses(reservations),
			Customers:    make([]api.UserResponse, 0, len(customers)),
			Chefs:        make([]api.UserResponse, 0, len(chefs)),
		}
		for i := range customers {
			resp.Customers = append(resp.Customers, api.NewUserResponse(&customers[i]))
		}
		for i := range chefs {
			resp.Chefs = append(resp.Chefs, api.NewUserResponse(&chefs[i]))
		}
		return c.JSON(http.StatusOK, resp)
	}
}
