// File: internal/handler/reservations/create.go
package reservations

import (
	"net/http"

	"savory/internal/api"
	"savory/internal/database"
	"savory/internal/middleware"
	"savory/internal/model"
	"savory/internal/repository"
	"savory/internal/service"
	"savory/internal/worker"

	"github.com/labstack/echo/v4"
)

// CreateHandler 建立訂位
// @Summary     建立訂位
// @Description 六個欄位皆為必填，缺一在任何網路呼叫前即回 400。
// @Description 狀態固定為 pending；已登入則帶上使用者 ID，匿名訂位亦允許。
// @Tags        reservations
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       customer_name formData string  true "訂位人姓名"
// @Param       phone         formData string  true "聯絡電話"
// @Param       date          formData string  true "日期 (2006-01-02)"
// @Param       time          formData string  true "時間 (15:04)"
// @Param       num_people    formData integer true "人數 (1-20)"
// @Param       location      formData string  true "分店"
// @Success     201           {object} api.ReservationResponse
// @Failure     400           {object} api.ErrorResponse
// @Failure     500           {object} api.ErrorResponse
// @Router      /reservations [post]
func CreateHandler(db database.DB, wp worker.Pool, notifier *service.Notifier) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateReservationRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		reservation := &model.Reservation{
			CustomerName: req.CustomerName,
			Phone:        req.Phone,
			Date:         req.Date,
			Time:         req.Time,
			NumPeople:    req.NumPeople,
			Location:     req.Location,
			Status:       model.ReservationPending,
		}
		// 有會話則連結使用者，否則為匿名訂位
		if sess := middleware.SessionFromContext(c); sess != nil {
			userID := sess.UserID
			reservation.UserID = &userID
		}

		created, err := repository.CreateReservation(c.Request().Context(), db, reservation)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "reservation failed, please try again"})
		}

		// 確認通知走背景佇列，不影響回應
		confirmed := *created
		wp.Submit(func() { notifier.SendReservationConfirmation(confirmed) })

		return c.JSON(http.StatusCreated, api.NewReservationResponse(created))
	}
}
