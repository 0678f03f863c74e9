package handler

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/quickcourt/quickcourt/internal/delivery/http/middleware"
	"github.com/quickcourt/quickcourt/internal/delivery/http/response"
	"github.com/quickcourt/quickcourt/internal/domains/venues/dto"
	"github.com/quickcourt/quickcourt/internal/domains/venues/service"
	"github.com/quickcourt/quickcourt/pkg/constant"
	"github.com/quickcourt/quickcourt/pkg/failure"
	"github.com/quickcourt/quickcourt/pkg/gdto"
	"github.com/quickcourt/quickcourt/pkg/logger"
)

type Handler struct {
	service   service.VenueService
	logger    logger.Interface
	validator *validator.Validate
}

func New(s service.VenueService, l logger.Interface, v *validator.Validate) *Handler {
	return &Handler{
		service:   s,
		logger:    l,
		validator: v,
	}
}

const (
	identifier = "http - venue - %s"

	routePath = "/venues"
)

func (h *Handler) RegisterRoutes(r fiber.Router) {
	venues := r.Group(routePath)

	venues.Get("/", h.GetAll)
	venues.Get("/owner", middleware.Jwt(), middleware.OwnerOrAdmin(), h.GetMine)
	venues.Get("/:id", h.Get)
	venues.Post("/", middleware.Jwt(), middleware.OwnerOrAdmin(), h.Create)
	venues.Patch("/:id", middleware.Jwt(), middleware.OwnerOrAdmin(), h.Update)
	venues.Delete("/:id", middleware.Jwt(), middleware.OwnerOrAdmin(), h.Delete)
	venues.Post("/:id/photos", middleware.Jwt(), middleware.OwnerOrAdmin(), h.UploadPhotos)
	venues.Delete("/:id/photos", middleware.Jwt(), middleware.OwnerOrAdmin(), h.DeletePhoto)
}

// Create Venue godoc
// @Summary Create new venue
// @Description Create new venue owned by the authenticated user
// @Tags venues
// @Accept json
// @Produce json
// @Param venue body dto.CreateVenueRequest true "Venue create request"
// @Success 201 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /venues/ [post]
// @Security BearerAuth
func (h *Handler) Create(ctx *fiber.Ctx) error {
	userID, _, err := h.actor(ctx)
	if err != nil {
		h.logger.Error(identifier, "create - invalid user context: %w", err)

		return response.WithError(ctx, err)
	}

	var req dto.CreateVenueRequest
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

	res, err := h.service.Create(ctx.UserContext(), userID, req)
	if err != nil {
		h.logger.Error(identifier, "create - failed to create venue: %w", err)

		return response.WithError(ctx, err)
	}

	return response.WithMessage(ctx, fiber.StatusCreated, res)
}

// Get Venue godoc
// @Summary Get venue availability
// @Description Get venue details with courts and the per-date slot snapshot
// @Tags venues
// @Accept json
// @Produce json
// @Param id path int true "Venue ID"
// @Param date query string false "Date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} response.Data[dto.VenueAvailabilityResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /venues/{id} [get]
func (h *Handler) Get(ctx *fiber.Ctx) error {
	id, err := h.venueID(ctx)
	if err != nil {
		h.logger.Error(identifier, "get - invalid venue id: %w", err)

		return response.WithError(ctx, err)
	}

	res, err := h.service.Availability(ctx.UserContext(), id, ctx.Query("date"))
	if err != nil {
		h.logger.Error(identifier, "get - failed to get venue availability: %w", err)

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, res)
}

// GetAll Venues godoc
// @Summary Get all venues
// @Description Get all active venues with pagination and filters
// @Tags venues
// @Accept json
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param filter query string false "Name or address filter"
// @Param city query string false "City filter"
// @Success 200 {object} response.Data[dto.GetVenuesResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /venues/ [get]
func (h *Handler) GetAll(ctx *fiber.Ctx) error {
	var req dto.GetVenuesRequest
	if err := ctx.QueryParser(&req); err != nil {
		err = failure.BadRequestFromString(err.Error())

		h.logger.Error(identifier, "getAll - query parsing error: %w", err)

		return response.WithError(ctx, err)
	}

	if err := h.validator.Struct(req); err != nil {
		err = failure.BadRequestFromString(err.Error())

		h.logger.Error(identifier, "getAll - validate error: %w", err)

		return response.WithError(ctx, err)
	}

	res, err := h.service.GetAll(ctx.UserContext(), req)
	if err != nil {
		h.logger.Error(identifier, "getAll - failed to get venues: %w", err)

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, res)
}

// GetMine Venues godoc
// @Summary Get own venues
// @Description Get the venues owned by the authenticated user
// @Tags venues
// @Accept json
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Data[dto.GetVenuesResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /venues/owner [get]
// @Security BearerAuth
func (h *Handler) GetMine(ctx *fiber.Ctx) error {
	userID, _, err := h.actor(ctx)
	if err != nil {
		h.logger.Error(identifier, "getMine - invalid user context: %w", err)

		return response.WithError(ctx, err)
	}

	var req gdto.PaginationRequest
	if err := ctx.QueryParser(&req); err != nil {
		err = failure.BadRequestFromString(err.Error())

		h.logger.Error(identifier, "getMine - query parsing error: %w", err)

		return response.WithError(ctx, err)
	}

	if err := h.validator.Struct(req); err != nil {
		err = failure.BadRequestFromString(err.Error())

		h.logger.Error(identifier, "getMine - validate error: %w", err)

		return response.WithError(ctx, err)
	}

	res, err := h.service.GetByOwner(ctx.UserContext(), userID, req)
	if err != nil {
		h.logger.Error(identifier, "getMine - failed to get venues: %w", err)

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, res)
}

// Update Venue godoc
// @Summary Update venue
// @Description Update venue fields, owner or admin only
// @Tags venues
// @Accept json
// @Produce json
// @Param id path int true "Venue ID"
// @Param venue body dto.UpdateVenueRequest true "Venue update request"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /venues/{id} [patch]
// @Security BearerAuth
func (h *Handler) Update(ctx *fiber.Ctx) error {
	id, err := h.venueID(ctx)
	if err != nil {
		h.logger.Error(identifier, "update - invalid venue id: %w", err)

		return response.WithError(ctx, err)
	}

	userID, role, err := h.actor(ctx)
	if err != nil {
		h.logger.Error(identifier, "update - invalid user context: %w", err)

		return response.WithError(ctx, err)
	}

	var req dto.UpdateVenueRequest
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
		h.logger.Error(identifier, "update - failed to update venue: %w", err)

		return response.WithError(ctx, err)
	}

	return response.WithMessage(ctx, fiber.StatusOK, res)
}

// Delete Venue godoc
// @Summary Delete venue
// @Description Delete venue, owner or admin only
// @Tags venues
// @Accept json
// @Produce json
// @Param id path int true "Venue ID"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /venues/{id} [delete]
// @Security BearerAuth
func (h *Handler) Delete(ctx *fiber.Ctx) error {
	id, err := h.venueID(ctx)
	if err != nil {
		h.logger.Error(identifier, "delete - invalid venue id: %w", err)

		return response.WithError(ctx, err)
	}

	userID, role, err := h.actor(ctx)
	if err != nil {
		h.logger.Error(identifier, "delete - invalid user context: %w", err)

		return response.WithError(ctx, err)
	}

	if err := h.service.Delete(ctx.UserContext(), id, userID, role); err != nil {
		h.logger.Error(identifier, "delete - failed to delete venue: %w", err)

		return response.WithError(ctx, err)
	}

	return response.WithMessage(ctx, fiber.StatusOK, "venue deleted")
}

// UploadPhotos godoc
// @Summary Upload venue photos
// @Description Upload one or more photos for a venue, owner or admin only
// @Tags venues
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Venue ID"
// @Param photos formData file true "Photo files"
// @Success 200 {object} response.Data[dto.UploadPhotosResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /venues/{id}/photos [post]
// @Security BearerAuth
func (h *Handler) UploadPhotos(ctx *fiber.Ctx) error {
	id, err := h.venueID(ctx)
	if err != nil {
		h.logger.Error(identifier, "uploadPhotos - invalid venue id: %w", err)

		return response.WithError(ctx, err)
	}

	userID, role, err := h.actor(ctx)
	if err != nil {
		h.logger.Error(identifier, "uploadPhotos - invalid user context: %w", err)

		return response.WithError(ctx, err)
	}

	form, err := ctx.MultipartForm()
	if err != nil {
		err = failure.BadRequestFromString("invalid multipart form")

		h.logger.Error(identifier, "uploadPhotos - form parsing error: %w", err)

		return response.WithError(ctx, err)
	}

	files := form.File["photos"]

	urls, err := h.service.UploadPhotos(ctx.UserContext(), id, userID, role, files)
	if err != nil {
		h.logger.Error(identifier, "uploadPhotos - failed to upload photos: %w", err)

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, dto.UploadPhotosResponse{URLs: urls})
}

// DeletePhoto godoc
// @Summary Delete venue photo
// @Description Delete one venue photo by its URL, owner or admin only
// @Tags venues
// @Accept json
// @Produce json
// @Param id path int true "Venue ID"
// @Param photo body dto.DeleteVenuePhotoRequest true "Photo delete request"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /venues/{id}/photos [delete]
// @Security BearerAuth
func (h *Handler) DeletePhoto(ctx *fiber.Ctx) error {
	id, err := h.venueID(ctx)
	if err != nil {
		h.logger.Error(identifier, "deletePhoto - invalid venue id: %w", err)

		return response.WithError(ctx, err)
	}

	userID, role, err := h.actor(ctx)
	if err != nil {
		h.logger.Error(identifier, "deletePhoto - invalid user context: %w", err)

		return response.WithError(ctx, err)
	}

	var req dto.DeleteVenuePhotoRequest
	if err := ctx.BodyParser(&req); err != nil {
		err = failure.BadRequestFromString(err.Error())

		h.logger.Error(identifier, "deletePhoto - body parsing error: %w", err)

		return response.WithError(ctx, err)
	}

	if err := h.validator.Struct(req); err != nil {
		err = failure.BadRequestFromString(err.Error())

		h.logger.Error(identifier, "deletePhoto - validate error: %w", err)

		return response.WithError(ctx, err)
	}

	if err := h.service.DeletePhoto(ctx.UserContext(), id, userID, role, req.URL); err != nil {
		h.logger.Error(identifier, "deletePhoto - failed to delete photo: %w", err)

		return response.WithError(ctx, err)
	}

	return response.WithMessage(ctx, fiber.StatusOK, "photo deleted")
}

func (h *Handler) venueID(ctx *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(ctx.Params(constant.RequestParamID), 10, 64)
	if err != nil || id <= 0 {
		return 0, failure.BadRequestFromString("venue id must be a positive integer")
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
