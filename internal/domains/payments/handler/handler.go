package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/quickcourt/quickcourt/internal/delivery/http/middleware"
	"github.com/quickcourt/quickcourt/internal/delivery/http/response"
	"github.com/quickcourt/quickcourt/internal/domains/payments/dto"
	"github.com/quickcourt/quickcourt/internal/domains/payments/service"
	"github.com/quickcourt/quickcourt/pkg/constant"
	"github.com/quickcourt/quickcourt/pkg/failure"
	"github.com/quickcourt/quickcourt/pkg/logger"
)

type Handler struct {
	service   service.PaymentService
	logger    logger.Interface
	validator *validator.Validate
}

func New(s service.PaymentService, l logger.Interface, v *validator.Validate) *Handler {
	return &Handler{
		service:   s,
		logger:    l,
		validator: v,
	}
}

const (
	identifier = "http - payments - %s"

	routePath = "/payments"
)

func (h *Handler) RegisterRoutes(r fiber.Router) {
	payments := r.Group(routePath)

	payments.Post("/create_order", middleware.Jwt(), h.CreateOrder)
	payments.Post("/verify_and_book", middleware.Jwt(), h.VerifyAndBook)
}

// CreateOrder godoc
// @Summary Create payment order
// @Description Create a provider payment order for the computed amount with a receipt label and contextual notes
// @Tags payments
// @Accept json
// @Produce json
// @Param order body dto.CreateOrderRequest true "Create order request"
// @Success 201 {object} response.Data[dto.CreateOrderResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /payments/create_order [post]
// @Security BearerAuth
func (h *Handler) CreateOrder(ctx *fiber.Ctx) error {
	userID, _, err := h.actor(ctx)
	if err != nil {
		h.logger.Error(identifier, "create order - invalid user context: %w", err)

		return response.WithError(ctx, err)
	}

	var req dto.CreateOrderRequest
	if err := ctx.BodyParser(&req); err != nil {
		err = failure.BadRequestFromString(err.Error())

		h.logger.Error(identifier, "create order - body parsing error: %w", err)

		return response.WithError(ctx, err)
	}

	if err := h.validator.Struct(req); err != nil {
		err = failure.BadRequestFromString(err.Error())

		h.logger.Error(identifier, "create order - validate error: %w", err)

		return response.WithError(ctx, err)
	}

	res, err := h.service.CreateOrder(ctx.UserContext(), userID, req)
	if err != nil {
		h.logger.Error(identifier, "create order - failed to create order: %w", err)

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusCreated, res)
}

// VerifyAndBook godoc
// @Summary Verify payment and create booking
// @Description Verify the provider payment signature, re-validate the booking window and price, and create the confirmed booking
// @Tags payments
// @Accept json
// @Produce json
// @Param payment body dto.VerifyPaymentRequest true "Verify payment request"
// @Success 201 {object} response.Data[dto.VerifyPaymentResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /payments/verify_and_book [post]
// @Security BearerAuth
func (h *Handler) VerifyAndBook(ctx *fiber.Ctx) error {
	userID, email, err := h.actorWithEmail(ctx)
	if err != nil {
		h.logger.Error(identifier, "verify - invalid user context: %w", err)

		return response.WithError(ctx, err)
	}

	var req dto.VerifyPaymentRequest
	if err := ctx.BodyParser(&req); err != nil {
		err = failure.BadRequestFromString(err.Error())

		h.logger.Error(identifier, "verify - body parsing error: %w", err)

		return response.WithError(ctx, err)
	}

	if err := h.validator.Struct(req); err != nil {
		err = failure.BadRequestFromString(err.Error())

		h.logger.Error(identifier, "verify - validate error: %w", err)

		return response.WithError(ctx, err)
	}

	res, err := h.service.VerifyAndBook(ctx.UserContext(), userID, email, req)
	if err != nil {
		h.logger.Error(identifier, "verify - failed to verify payment: %w", err)

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusCreated, res)
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

func (h *Handler) actorWithEmail(ctx *fiber.Ctx) (userID, email string, err error) {
	userID, ok := ctx.Locals(constant.JwtFieldUser).(string)
	if !ok {
		return "", "", constant.ErrInvalidContextUserType
	}

	email, ok = ctx.Locals(constant.JwtFieldEmail).(string)
	if !ok {
		return "", "", constant.ErrInvalidContextUserType
	}

	return userID, email, nil
}
