package handler

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/quickcourt/quickcourt/internal/delivery/http/middleware"
	"github.com/quickcourt/quickcourt/internal/delivery/http/response"
	"github.com/quickcourt/quickcourt/internal/domains/courts/dto"
	"github.com/quickcourt/quickcourt/internal/domains/courts/service"
	"github.com/quickcourt/quickcourt/pkg/constant"
	"github.com/quickcourt/quickcourt/pkg/failure"
	"github.com/quickcourt/quickcourt/pkg/gdto"
	"github.com/quickcourt/quickcourt/pkg/logger"
)

type Handler struct {
	service   service.CourtService
	logger    logger.Interface
	validator *validator.Validate
}

func New(s service.CourtService, l logger.Interface, v *validator.Validate) *Handler {
	return &Handler{
		service:   s,
		logger:    l,
		validator: v,
	}
}

const (
	identifier = "http - court - %s"

	routePath = "/courts"
)

func (h *Handler) RegisterRoutes(r fiber.Router) {
	courts := r.Group(routePath)

	courts.Get("/venue/:id", h.GetByVenue)
	courts.Get("/:id", h.Get)
	courts.Post("/", middleware.Jwt(), middleware.OwnerOrAdmin(), h.Create)
	courts.Patch("/:id", middleware.Jwt(), middleware.OwnerOrAdmin(), h.Update)
	courts.Post("/:id/status", middleware.Jwt(), middleware.OwnerOrAdmin(), h.UpdateStatus)
	courts.Delete("/:id", middleware.Jwt(), middleware.OwnerOrAdmin(), h.Delete)
	courts.Get("/:id/slots", h.GetTimeSlots)
	courts.Post("/:id/slots", middleware.Jwt(), middleware.OwnerOrAdmin(), h.CreateTimeSlot)
	courts.Patch("/slots/:id", middleware.Jwt(), middleware.OwnerOrAdmin(), h.UpdateTimeSlot)
	courts.Delete("/slots/:id", middleware.Jwt(), middleware.OwnerOrAdmin(), h.DeleteTimeSlot)
}

// Create Court godoc
// @Summary Create new court
// @Description Create new court in one of the authenticated user's venues
// @Tags courts
// @Accept json
// @Produce json
// @Param court body dto.CreateCourtRequest true "Court create request"
// @Success 201 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /courts/ [post]
// @Security BearerAuth
func (h *Handler) Create(ctx *fiber.Ctx) error {
	userID, role, err := h.actor(ctx)
	if err != nil {
		h.logger.Error(identifier, "create - invalid user context: %w", err)

		return response.WithError(ctx, err)
	}

	var req dto.CreateCourtRequest
	if err := ctx.BodyParser(&req); err != nil {
		err = failure.BadRequestFromString(err.Error())

		h.logger.Error(identifier, "create - body parsing error: %w", err)

		return response.WithError(ctx, err)
	}

	if err := h.validator.Struct(req); err != nil {
		err = failure.BadRequestFromString(err.Error())

		h.logger.Error(identifier, "create - validate error: %w", err)

		return response.WithError(ctx, err)
	}

	res, err := h.service.Create(ctx.UserContext(), userID, role, req)
	if err != nil {
		h.logger.Error(identifier, "create - failed to create court: %w", err)

		return response.WithError(ctx, err)
	}

	return response.WithMessage(ctx, fiber.StatusCreated, res)
}

// Get Court godoc
// @Summary Get court by id
// @Description Get court details with its defined time slots
// @Tags courts
// @Accept json
// @Produce json
// @Param id path int true "Court ID"
// @Success 200 {object} response.Data[dto.CourtResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /courts/{id} [get]
func (h *Handler) Get(ctx *fiber.Ctx) error {
	id, err := h.pathID(ctx, "court")
	if err != nil {
		h.logger.Error(identifier, "get - invalid court id: %w", err)

		return response.WithError(ctx, err)
	}

	res, err := h.service.Get(ctx.UserContext(), id)
	if err != nil {
		h.logger.Error(identifier, "get - failed to get court: %w", err)

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, res)
}

// GetByVenue godoc
// @Summary Get courts by venue
// @Description Get all courts of one venue with pagination
// @Tags courts
// @Accept json
// @Produce json
// @Param id path int true "Venue ID"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Data[dto.GetCourtsResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /courts/venue/{id} [get]
func (h *Handler) GetByVenue(ctx *fiber.Ctx) error {
	venueID, err := h.pathID(ctx, "venue")
	if err != nil {
		h.logger.Error(identifier, "getByVenue - invalid venue id: %w", err)

		return response.WithError(ctx, err)
	}

	var req gdto.PaginationRequest
	if err := ctx.QueryParser(&req); err != nil {
		err = failure.BadRequestFromString(err.Error())

		h.logger.Error(identifier, "getByVenue - query parsing error: %w", err)

		return response.WithError(ctx, err)
	}

	if err := h.validator.Struct(req); err != nil {
		err = failure.BadRequestFromString(err.Error())

		h.logger.Error(identifier, "getByVenue - validate error: %w", err)

		return response.WithError(ctx, err)
	}

	res, err := h.service.GetByVenue(ctx.UserContext(), venueID, req)
	if err != nil {
		h.logger.Error(identifier, "getByVenue - failed to get courts: %w", err)

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, res)
}

// Update Court godoc
// @Summary Update court
// @Description Update court fields, owner or admin only
// @Tags courts
// @Accept json
// @Produce json
// @Param id path int true "Court ID"
// @Param court body dto.UpdateCourtRequest true "Court update request"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /courts/{id} [patch]
// @Security BearerAuth
func (h *Handler) Update(ctx *fiber.Ctx) error {
	id, err := h.pathID(ctx, "court")
	if err != nil {
		h.logger.Error(identifier, "update - invalid court id: %w", err)

		return response.WithError(ctx, err)
	}

	userID, role, err := h.actor(ctx)
	if err != nil {
		h.logger.Error(identifier, "update - invalid user context: %w", err)

		return response.WithError(ctx, err)
	}

	var req dto.UpdateCourtRequest
	if err := ctx.BodyParser(&req); err != nil {
		err = failure.BadRequestFromString(err.Error())

		h.logger.Error(identifier, "update - body parsing error: %w", err)

		return response.WithError(ctx, err)
	}

	if err := h.validator.Struct(req); err != nil {
		err = failure.BadRequestFromString(err.Error())

		h.logger.Error(identifier, "update - validate error: %w", err)

		return response.WithError(ctx, err)
	}

	res, err := h.service.Update(ctx.UserContext(), id, userID, role, req)
	if err != nil {
		h.logger.Error(identifier, "update - failed to update court: %w", err)

		return response.WithError(ctx, err)
	}

	return response.WithMessage(ctx, fiber.StatusOK, res)
}

// UpdateStatus godoc
// @Summary Update court status
// @Description Set court status to active, maintenance or inactive
// @Tags courts
// @Accept json
// @Produce json
// @Param id path int true "Court ID"
// @Param status body dto.UpdateCourtStatusRequest true "Court status request"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /courts/{id}/status [post]
// @Security BearerAuth
func (h *Handler) UpdateStatus(ctx *fiber.Ctx) error {
	id, err := h.pathID(ctx, "court")
	if err != nil {
		h.logger.Error(identifier, "updateStatus - invalid court id: %w", err)

		return response.WithError(ctx, err)
	}

	userID, role, err := h.actor(ctx)
	if err != nil {
		h.logger.Error(identifier, "updateStatus - invalid user context: %w", err)

		return response.WithError(ctx, err)
	}

	var req dto.UpdateCourtStatusRequest
	if err := ctx.BodyParser(&req); err != nil {
		err = failure.BadRequestFromString(err.Error())

		h.logger.Error(identifier, "updateStatus - body parsing error: %w", err)

		return response.WithError(ctx, err)
	}

	if err := h.validator.Struct(req); err != nil {
		err = failure.BadRequestFromString(err.Error())

		h.logger.Error(identifier, "updateStatus - validate error: %w", err)

		return response.WithError(ctx, err)
	}

	res, err := h.service.UpdateStatus(ctx.UserContext(), id, userID, role, req)
	if err != nil {
		h.logger.Error(identifier, "updateStatus - failed to update court status: %w", err)

		return response.WithError(ctx, err)
	}

	return response.WithMessage(ctx, fiber.StatusOK, res)
}

// Delete Court godoc
// @Summary Delete court
// @Description Delete court, owner or admin only
// @Tags courts
// @Accept json
// @Produce json
// @Param id path int true "Court ID"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /courts/{id} [delete]
// @Security BearerAuth
func (h *Handler) Delete(ctx *fiber.Ctx) error {
	id, err := h.pathID(ctx, "court")
	if err != nil {
		h.logger.Error(identifier, "delete - invalid court id: %w", err)

		return response.WithError(ctx, err)
	}

	userID, role, err := h.actor(ctx)
	if err != nil {
		h.logger.Error(identifier, "delete - invalid user context: %w", err)

		return response.WithError(ctx, err)
	}

	if err := h.service.Delete(ctx.UserContext(), id, userID, role); err != nil {
		h.logger.Error(identifier, "delete - failed to delete court: %w", err)

		return response.WithError(ctx, err)
	}

	return response.WithMessage(ctx, fiber.StatusOK, "court deleted")
}

// GetTimeSlots godoc
// @Summary Get court time slots
// @Description Get the time slots defined for one court
// @Tags courts
// @Accept json
// @Produce json
// @Param id path int true "Court ID"
// @Success 200 {object} response.Data[dto.GetTimeSlotsResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /courts/{id}/slots [get]
func (h *Handler) GetTimeSlots(ctx *fiber.Ctx) error {
	id, err := h.pathID(ctx, "court")
	if err != nil {
		h.logger.Error(identifier, "getTimeSlots - invalid court id: %w", err)

		return response.WithError(ctx, err)
	}

	res, err := h.service.GetTimeSlots(ctx.UserContext(), id)
	if err != nil {
		h.logger.Error(identifier, "getTimeSlots - failed to get time slots: %w", err)

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, res)
}

// CreateTimeSlot godoc
// @Summary Create time slot
// @Description Define a new one-hour time slot for a court, owner or admin only
// @Tags courts
// @Accept json
// @Produce json
// @Param id path int true "Court ID"
// @Param slot body dto.CreateTimeSlotRequest true "Time slot create request"
// @Success 201 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /courts/{id}/slots [post]
// @Security BearerAuth
func (h *Handler) CreateTimeSlot(ctx *fiber.Ctx) error {
	id, err := h.pathID(ctx, "court")
	if err != nil {
		h.logger.Error(identifier, "createTimeSlot - invalid court id: %w", err)

		return response.WithError(ctx, err)
	}

	userID, role, err := h.actor(ctx)
	if err != nil {
		h.logger.Error(identifier, "createTimeSlot - invalid user context: %w", err)

		return response.WithError(ctx, err)
	}

	var req dto.CreateTimeSlotRequest
	if err := ctx.BodyParser(&req); err != nil {
		err = failure.BadRequestFromString(err.Error())

		h.logger.Error(identifier, "createTimeSlot - body parsing error: %w", err)

		return response.WithError(ctx, err)
	}

	if err := h.validator.Struct(req); err != nil {
		err = failure.BadRequestFromString(err.Error())

		h.logger.Error(identifier, "createTimeSlot - validate error: %w", err)

		return response.WithError(ctx, err)
	}

	res, err := h.service.CreateTimeSlot(ctx.UserContext(), id, userID, role, req)
	if err != nil {
		h.logger.Error(identifier, "createTimeSlot - failed to create time slot: %w", err)

		return response.WithError(ctx, err)
	}

	return response.WithMessage(ctx, fiber.StatusCreated, res)
}

// UpdateTimeSlot godoc
// @Summary Block or unblock a time slot
// @Description Block or unblock a time slot, owner or admin only
// @Tags courts
// @Accept json
// @Produce json
// @Param id path int true "Time slot ID"
// @Param slot body dto.UpdateTimeSlotRequest true "Time slot update request"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /courts/slots/{id} [patch]
// @Security BearerAuth
func (h *Handler) UpdateTimeSlot(ctx *fiber.Ctx) error {
	id, err := h.pathID(ctx, "time slot")
	if err != nil {
		h.logger.Error(identifier, "updateTimeSlot - invalid time slot id: %w", err)

		return response.WithError(ctx, err)
	}

	userID, role, err := h.actor(ctx)
	if err != nil {
		h.logger.Error(identifier, "updateTimeSlot - invalid user context: %w", err)

		return response.WithError(ctx, err)
	}

	var req dto.UpdateTimeSlotRequest
	if err := ctx.BodyParser(&req); err != nil {
		err = failure.BadRequestFromString(err.Error())

		h.logger.Error(identifier, "updateTimeSlot - body parsing error: %w", err)

		return response.WithError(ctx, err)
	}

	if err := h.validator.Struct(req); err != nil {
		err = failure.BadRequestFromString(err.Error())

		h.logger.Error(identifier, "updateTimeSlot - validate error: %w", err)

		return response.WithError(ctx, err)
	}

	res, err := h.service.UpdateTimeSlot(ctx.UserContext(), id, userID, role, req)
	if err != nil {
		h.logger.Error(identifier, "updateTimeSlot - failed to update time slot: %w", err)

		return response.WithError(ctx, err)
	}

	return response.WithMessage(ctx, fiber.StatusOK, res)
}

// DeleteTimeSlot godoc
// @Summary Delete time slot
// @Description Delete a time slot, owner or admin only
// @Tags courts
// @Accept json
// @Produce json
// @Param id path int true "Time slot ID"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /courts/slots/{id} [delete]
// @Security BearerAuth
func (h *Handler) DeleteTimeSlot(ctx *fiber.Ctx) error {
	id, err := h.pathID(ctx, "time slot")
	if err != nil {
		h.logger.Error(identifier, "deleteTimeSlot - invalid time slot id: %w", err)

		return response.WithError(ctx, err)
	}

	userID, role, err := h.actor(ctx)
	if err != nil {
		h.logger.Error(identifier, "deleteTimeSlot - invalid user context: %w", err)

		return response.WithError(ctx, err)
	}

	if err := h.service.DeleteTimeSlot(ctx.UserContext(), id, userID, role); err != nil {
		h.logger.Error(identifier, "deleteTimeSlot - failed to delete time slot: %w", err)

		return response.WithError(ctx, err)
	}

	return response.WithMessage(ctx, fiber.StatusOK, "time slot deleted")
}

func (h *Handler) pathID(ctx *fiber.Ctx, entity string) (int64, error) {
	id, err := strconv.ParseInt(ctx.Params(constant.RequestParamID), 10, 64)
	if err != nil || id <= 0 {
		return 0, failure.BadRequestFromString(entity + " id must be a positive integer")
	}

	return id, nil
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
