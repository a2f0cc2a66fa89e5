// File: internal/handler/dashboard/chef.go
package dashboard

import (
	"net/http"
	"time"

	"savory/internal/api"
	"savory/internal/database"
	"savory/internal/model"
	"savory/internal/repository"
	"savory/internal/service"

	"github.com/labstack/echo/v4"
)

// ChefHandler 主廚儀表板
// @Summary     主廚儀表板
// @Description 日期 >= 今日的訂位（日期、時間由近到遠），切分為今日與之後，
// @Description 並附上今日總人數。每次請求重新查詢，不做快取。
// @Tags        dashboard
// @Produce     json
// @Success     200 {object} api.ChefDashboardResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /dashboard/chef [get]
func ChefHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		today := time.Now().Format(model.DateLayout)

		reservations, err := repository.ListReservationsFrom(c.Request().Context(), db, today)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to load reservations"})
		}

		todays, upcoming := service.PartitionByDay(reservations, today)

		return c.JSON(http.StatusOK, api.ChefDashboardResponse{
			Today:       api.NewReservationResponses(todays),
			Upcoming:    api.NewReservationResponses(upcoming),
			TodayGuests: service.TotalGuests(todays),
		})
	}
}
