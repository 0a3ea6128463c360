package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mobilecarebd/off-white/internal/model"
	"github.com/mobilecarebd/off-white/internal/service"
)

// BookingHandler handles booking endpoints.
type BookingHandler struct {
	bookingService service.BookingService
}

// NewBookingHandler creates a new booking handler.
func NewBookingHandler(bookingService service.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// BookingRequest represents a public booking submission.
type BookingRequest struct {
	PackageID    uint   `json:"packageId" validate:"required"`
	CustomerName string `json:"customerName" validate:"required"`
	Phone        string `json:"phone" validate:"required"`
	Address      string `json:"address"`
	BookingDate  string `json:"bookingDate" validate:"required"`
}

// StatusRequest carries a booking status change.
type StatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed cancelled"`
}

// Create godoc
// @Summary Submit a booking for a package
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body BookingRequest true "Booking data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /bookings [post]
func (h *BookingHandler) Create(c echo.Context) error {
	var req BookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	bookingDate, err := time.Parse("2006-01-02", req.BookingDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "bookingDate must be YYYY-MM-DD")
	}

	booking := &model.Booking{
		PackageID:    req.PackageID,
		CustomerName: req.CustomerName,
		Phone:        req.Phone,
		Address:      req.Address,
		BookingDate:  bookingDate,
	}

	if err := h.bookingService.Create(c.Request().Context(), booking); err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"success": true,
		"booking": booking,
	})
}

// List godoc
// @Summary List all bookings
// @Tags bookings
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /bookings [get]
func (h *BookingHandler) List(c echo.Context) error {
	bookings, err := h.bookingService.List(c.Request().Context())
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"bookings": bookings})
}

// UpdateStatus godoc
// @Summary Confirm or cancel a booking
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path int true "Booking ID"
// @Param request body StatusRequest true "New status"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /bookings/{id}/status [patch]
func (h *BookingHandler) UpdateStatus(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req StatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	booking, err := h.bookingService.UpdateStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"booking": booking})
}

// Delete godoc
// @Summary Delete a booking
// @Tags bookings
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /bookings/{id} [delete]
func (h *BookingHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.bookingService.Delete(c.Request().Context(), id); err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "booking deleted"})
}
