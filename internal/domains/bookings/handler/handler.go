package handler

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/quickcourt/quickcourt/internal/delivery/http/middleware"
	"github.com/quickcourt/quickcourt/internal/delivery/http/response"
	"github.com/quickcourt/quickcourt/internal/domains/bookings/dto"
	"github.com/quickcourt/quickcourt/internal/domains/bookings/service"
	"github.com/quickcourt/quickcourt/pkg/constant"
	"github.com/quickcourt/quickcourt/pkg/failure"
	"github.com/quickcourt/quickcourt/pkg/gdto"
	"github.com/quickcourt/quickcourt/pkg/logger"
)

type Handler struct {
	service   service.BookingService
	logger    logger.Interface
	validator *validator.Validate
}

func New(s service.BookingService, l logger.Interface, v *validator.Validate) *Handler {
	return &Handler{
		service:   s,
		logger:    l,
		validator: v,
	}
}

const (
	identifier = "http - booking - %s"

	routePath = "/bookings"
)

func (h *Handler) RegisterRoutes(r fiber.Router) {
	bookings := r.Group(routePath)

	bookings.Get("/slots", h.GetBookedSlots)
	bookings.Get("/:id", middleware.Jwt(), h.GetBookingByID)
	bookings.Put("/:id/cancel", middleware.Jwt(), h.CancelUserBooking)

	r.Get("/users/bookings", middleware.Jwt(), h.GetUserBookings)
}

// GetBookingByID godoc
// @Summary Get booking by ID
// @Description Get one booking of the authenticated user
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /bookings/{id} [get]
// @Security BearerAuth
func (h *Handler) GetBookingByID(ctx *fiber.Ctx) error {
	id := ctx.Params(constant.RequestParamID)
	if err := h.validator.Var(id, constant.RequestValidateUUID); err != nil {
		err = failure.BadRequestFromString("invalid booking id format")

		h.logger.Error(identifier, "get - validate error: %w", err)

		return response.WithError(ctx, err)
	}

	userID, role, err := h.actor(ctx)
	if err != nil {
		h.logger.Error(identifier, "get - invalid user context: %w", err)

		return response.WithError(ctx, err)
	}

	res, err := h.service.GetBookingByID(ctx.UserContext(), id, userID, role)
	if err != nil {
		h.logger.Error(identifier, "error getting booking by id: %w", err)

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, res)
}

// GetUserBookings godoc
// @Summary Get user bookings
// @Description Get bookings for the authenticated user
// @Tags bookings
// @Accept json
// @Produce json
// @Param pagination query gdto.PaginationRequest false "Pagination parameters filter by status"
// @Success 200 {object} response.Data[dto.GetBookingsResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /users/bookings [get]
// @Security BearerAuth
func (h *Handler) GetUserBookings(ctx *fiber.Ctx) error {
	userID, _, err := h.actor(ctx)
	if err != nil {
		h.logger.Error(identifier, "get user bookings - invalid user context: %w", err)

		return response.WithError(ctx, err)
	}

	var req gdto.PaginationRequest
	if err := ctx.QueryParser(&req); err != nil {
		err = failure.BadRequestFromString(err.Error())

		h.logger.Error(identifier, "error parsing query parameters: %w", err)

		return response.WithError(ctx, err)
	}

	if err := h.validator.Struct(req); err != nil {
		err = failure.BadRequestFromString(err.Error())

		h.logger.Error(identifier, "get user bookings - validate error: %w", err)

		return response.WithError(ctx, err)
	}

	res, err := h.service.GetUserBookings(ctx.UserContext(), userID, req)
	if err != nil {
		h.logger.Error(identifier, "error getting user bookings: %w", err)

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, res)
}

// GetBookedSlots godoc
// @Summary Get booked slots
// @Description Get booked slots for a court on a specific date
// @Tags bookings
// @Accept json
// @Produce json
// @Param court_id query int true "Court ID"
// @Param date query string true "Booking date (2006-01-02)"
// @Success 200 {object} response.Data[dto.GetBookedSlotsResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /bookings/slots [get]
func (h *Handler) GetBookedSlots(ctx *fiber.Ctx) error {
	var req dto.GetBookedSlotsRequest
	if err := ctx.QueryParser(&req); err != nil {
		err = failure.BadRequestFromString(err.Error())

		h.logger.Error(identifier, "error parsing query parameters: %w", err)

		return response.WithError(ctx, err)
	}

	if err := h.validator.Struct(req); err != nil {
		err = failure.BadRequestFromString(err.Error())

		h.logger.Error(identifier, "get booked slots - validate error: %w", err)

		return response.WithError(ctx, err)
	}

	res, err := h.service.GetBookedSlots(ctx.UserContext(), req)
	if err != nil {
		h.logger.Error(identifier, "error getting booked slots: %w", err)

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, res)
}

// CancelUserBooking godoc
// @Summary Cancel user booking
// @Description Cancel a booking for the authenticated user
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /bookings/{id}/cancel [put]
// @Security BearerAuth
func (h *Handler) CancelUserBooking(ctx *fiber.Ctx) error {
	id := ctx.Params(constant.RequestParamID)
	if err := h.validator.Var(id, constant.RequestValidateUUID); err != nil {
		err = failure.BadRequestFromString("invalid booking id format")

		h.logger.Error(identifier, "cancel - validate error: %w", err)

		return response.WithError(ctx, err)
	}

	userID, _, err := h.actor(ctx)
	if err != nil {
		h.logger.Error(identifier, "cancel - invalid user context: %w", err)

		return response.WithError(ctx, err)
	}

	req := dto.CancelUserBookingRequest{
		BookingID: id,
		UserID:    userID,
	}

	if err := h.service.CancelUserBooking(ctx.UserContext(), req); err != nil {
		h.logger.Error(identifier, "error canceling booking: %w", err)

		return response.WithError(ctx, err)
	}

	res := fmt.Sprintf("Booking %s cancelled", id)

	return response.WithMessage(ctx, fiber.StatusOK, res)
}

func (h *Handler) actor(ctx *fiber.Ctx) (userID, role string, err error) {
	userID, ok := ctx.Locals(constant.JwtFieldUser).(string)
	if !ok {
		return "", "", constant.ErrInvalidContextUserType
	}

	role, ok = ctx.Locals(constant.JwtFieldRole).(string)
	if !ok {
		return "", "", constant.ErrInvalidContextUserType
	}

	return userID, role, nil
}
