package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/quickcourt/quickcourt/internal/delivery/http/middleware"
	"github.com/quickcourt/quickcourt/internal/delivery/http/response"
	"github.com/quickcourt/quickcourt/internal/domains/dashboard/dto"
	"github.com/quickcourt/quickcourt/internal/domains/dashboard/service"
	"github.com/quickcourt/quickcourt/pkg/constant"
	"github.com/quickcourt/quickcourt/pkg/failure"
	"github.com/quickcourt/quickcourt/pkg/logger"
)

type Handler struct {
	service   service.DashboardService
	logger    logger.Interface
	validator *validator.Validate
}

func New(s service.DashboardService, l logger.Interface, v *validator.Validate) *Handler {
	return &Handler{
		service:   s,
		logger:    l,
		validator: v,
	}
}

const (
	identifier = "http - dashboard - %s"

	routePath = "/dashboard"
)

func (h *Handler) RegisterRoutes(r fiber.Router) {
	dashboard := r.Group(routePath, middleware.Jwt(), middleware.OwnerOrAdmin())

	dashboard.Get("/", h.Kpis)
	dashboard.Get("/booking-trends", h.BookingTrends)
	dashboard.Get("/peak-hours", h.PeakHours)
	dashboard.Get("/recent-bookings", h.RecentBookings)
	dashboard.Get("/court-stats", h.CourtStats)
}

// Dashboard KPIs godoc
// @Summary Get owner dashboard KPIs
// @Description Get venue, court, booking and earnings totals for the authenticated owner
// @Tags dashboard
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.KpisResponse]
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /dashboard/ [get]
// @Security BearerAuth
func (h *Handler) Kpis(ctx *fiber.Ctx) error {
	ownerID, err := h.actor(ctx)
	if err != nil {
		h.logger.Error(identifier, "kpis - invalid user context: %w", err)

		return response.WithError(ctx, err)
	}

	res, err := h.service.Kpis(ctx.UserContext(), ownerID)
	if err != nil {
		h.logger.Error(identifier, "kpis - failed to get kpis: %w", err)

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, res)
}

// Booking Trends godoc
// @Summary Get booking trends
// @Description Get booking and earnings counts grouped by day, week or month
// @Tags dashboard
// @Accept json
// @Produce json
// @Param period query string false "Aggregation period" Enums(daily, weekly, monthly) default(daily)
// @Success 200 {object} response.Data[dto.BookingTrendsResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /dashboard/booking-trends [get]
// @Security BearerAuth
func (h *Handler) BookingTrends(ctx *fiber.Ctx) error {
	ownerID, err := h.actor(ctx)
	if err != nil {
		h.logger.Error(identifier, "bookingTrends - invalid user context: %w", err)

		return response.WithError(ctx, err)
	}

	var req dto.BookingTrendsRequest
	if err := ctx.QueryParser(&req); err != nil {
		err = failure.BadRequestFromString(err.Error())

		h.logger.Error(identifier, "bookingTrends - query parsing error: %w", err)

		return response.WithError(ctx, err)
	}

	if err := h.validator.Struct(req); err != nil {
		err = failure.BadRequestFromString(err.Error())

		h.logger.Error(identifier, "bookingTrends - validate error: %w", err)

		return response.WithError(ctx, err)
	}

	res, err := h.service.BookingTrends(ctx.UserContext(), ownerID, req)
	if err != nil {
		h.logger.Error(identifier, "bookingTrends - failed to get booking trends: %w", err)

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, res)
}

// Peak Hours godoc
// @Summary Get peak booking hours
// @Description Get booking counts per hour of day across the owner's courts
// @Tags dashboard
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.PeakHoursResponse]
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /dashboard/peak-hours [get]
// @Security BearerAuth
func (h *Handler) PeakHours(ctx *fiber.Ctx) error {
	ownerID, err := h.actor(ctx)
	if err != nil {
		h.logger.Error(identifier, "peakHours - invalid user context: %w", err)

		return response.WithError(ctx, err)
	}

	res, err := h.service.PeakHours(ctx.UserContext(), ownerID)
	if err != nil {
		h.logger.Error(identifier, "peakHours - failed to get peak hours: %w", err)

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, res)
}

// Recent Bookings godoc
// @Summary Get recent bookings
// @Description Get the most recent bookings across the owner's venues
// @Tags dashboard
// @Accept json
// @Produce json
// @Param limit query int false "Maximum number of bookings" minimum(1) maximum(50) default(10)
// @Success 200 {object} response.Data[dto.RecentBookingsResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /dashboard/recent-bookings [get]
// @Security BearerAuth
func (h *Handler) RecentBookings(ctx *fiber.Ctx) error {
	ownerID, err := h.actor(ctx)
	if err != nil {
		h.logger.Error(identifier, "recentBookings - invalid user context: %w", err)

		return response.WithError(ctx, err)
	}

	var req dto.RecentBookingsRequest
	if err := ctx.QueryParser(&req); err != nil {
		err = failure.BadRequestFromString(err.Error())

		h.logger.Error(identifier, "recentBookings - query parsing error: %w", err)

		return response.WithError(ctx, err)
	}

	if err := h.validator.Struct(req); err != nil {
		err = failure.BadRequestFromString(err.Error())

		h.logger.Error(identifier, "recentBookings - validate error: %w", err)

		return response.WithError(ctx, err)
	}

	res, err := h.service.RecentBookings(ctx.UserContext(), ownerID, req)
	if err != nil {
		h.logger.Error(identifier, "recentBookings - failed to get recent bookings: %w", err)

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, res)
}

// Court Stats godoc
// @Summary Get per court statistics
// @Description Get booking and earnings totals per court for the authenticated owner
// @Tags dashboard
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.CourtStatsResponse]
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /dashboard/court-stats [get]
// @Security BearerAuth
func (h *Handler) CourtStats(ctx *fiber.Ctx) error {
	ownerID, err := h.actor(ctx)
	if err != nil {
		h.logger.Error(identifier, "courtStats - invalid user context: %w", err)

		return response.WithError(ctx, err)
	}

	res, err := h.service.CourtStats(ctx.UserContext(), ownerID)
	if err != nil {
		h.logger.Error(identifier, "courtStats - failed to get court stats: %w", err)

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, res)
}

func (h *Handler) actor(ctx *fiber.Ctx) (string, error) {
	userID, ok := ctx.Locals(constant.JwtFieldUser).(string)
	if !ok {
		return "", constant.ErrInvalidContextUserType
	}

	return userID, nil
}
