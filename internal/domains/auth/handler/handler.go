package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/quickcourt/quickcourt/internal/delivery/http/response"
	"github.com/quickcourt/quickcourt/internal/domains/auth/service"
	"github.com/quickcourt/quickcourt/internal/domains/user/dto"
	"github.com/quickcourt/quickcourt/pkg/logger"
)

type Handler struct {
	service   service.AuthService
	logger    logger.Interface
	validator *validator.Validate
}

func New(s service.AuthService, l logger.Interface, v *validator.Validate) *Handler {
	return &Handler{
		service:   s,
		logger:    l,
		validator: v,
	}
}

func (h *Handler) RegisterRoutes(r fiber.Router) {
	auth := r.Group("/auth")

	auth.Post("/register", h.Register)
	auth.Post("/login", h.Login)
	auth.Post("/token/refresh", h.Refresh)
	auth.Get("/verify-email", h.VerifyEmail)
	auth.Post("/forgot-password", h.ForgotPassword)
	auth.Post("/reset-password", h.ResetPassword)
}

// Register godoc
// @Summary Register new user
// @Description Register new user with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.UserRegisterRequest true "User register request"
// @Success 201 {object} response.Data[dto.UserRegisterResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /auth/register [post]
func (h *Handler) Register(ctx *fiber.Ctx) error {
	var req dto.UserRegisterRequest
	if err := ctx.BodyParser(&req); err != nil {
		h.logger.Error("http - auth - register - body parsing error: " + err.Error())

		return response.WithError(ctx, err)
	}

	if err := h.validator.Struct(req); err != nil {
		h.logger.Error("http - auth - register - validate error: " + err.Error())

		return response.WithError(ctx, err)
	}

	data, err := h.service.Register(ctx.UserContext(), req)
	if err != nil {
		reqID := "unknown"
		if id, ok := ctx.Locals("request_id").(string); ok {
			reqID = id
		}

		h.logger.Error("http - auth - register - request_id: " + reqID + " - " + err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusCreated, data)
}

// Login godoc
// @Summary Login user
// @Description Login user with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.UserLoginRequest true "User login request"
// @Success 200 {object} response.Data[dto.UserLoginResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /auth/login [post]
func (h *Handler) Login(ctx *fiber.Ctx) error {
	var req dto.UserLoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		h.logger.Error("http - auth - login - body parsing error: " + err.Error())

		return response.WithError(ctx, err)
	}

	if err := h.validator.Struct(req); err != nil {
		h.logger.Error("http - auth - login - validate error: " + err.Error())

		return response.WithError(ctx, err)
	}

	data, err := h.service.Login(ctx.UserContext(), req)
	if err != nil {
		reqID := "unknown"
		if id, ok := ctx.Locals("request_id").(string); ok {
			reqID = id
		}

		h.logger.Error("http - auth - login - request_id: " + reqID + " - " + err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}

// Refresh godoc
// @Summary Refresh access token
// @Description Exchange a refresh token for a new access and refresh token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param refresh body dto.RefreshTokenRequest true "Refresh token request"
// @Success 200 {object} response.Data[dto.UserLoginResponse]
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /auth/token/refresh [post]
func (h *Handler) Refresh(ctx *fiber.Ctx) error {
	var req dto.RefreshTokenRequest
	if err := ctx.BodyParser(&req); err != nil {
		h.logger.Error("http - auth - refresh - body parsing error: " + err.Error())

		return response.WithError(ctx, err)
	}

	if err := h.validator.Struct(req); err != nil {
		h.logger.Error("http - auth - refresh - validate error: " + err.Error())

		return response.WithError(ctx, err)
	}

	data, err := h.service.Refresh(ctx.UserContext(), req)
	if err != nil {
		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}

// VerifyEmail godoc
// @Summary Verify email address
// @Description Verify user's email address using verification token
// @Tags auth
// @Accept json
// @Produce json
// @Param token query string true "Email verification token"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /auth/verify-email [get]
func (h *Handler) VerifyEmail(ctx *fiber.Ctx) error {
	var req dto.VerifyEmailRequest
	if err := ctx.QueryParser(&req); err != nil {
		h.logger.Error("http - auth - verify-email - query parsing error: " + err.Error())

		return response.WithError(ctx, err)
	}

	if err := h.validator.Struct(req); err != nil {
		h.logger.Error("http - auth - verify-email - validate error: " + err.Error())

		return response.WithError(ctx, err)
	}

	if err := h.service.VerifyEmail(ctx.UserContext(), req.Token); err != nil {
		reqID := "unknown"
		if id, ok := ctx.Locals("request_id").(string); ok {
			reqID = id
		}

		h.logger.Error("http - auth - verify-email - request_id: " + reqID + " - " + err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithMessage(ctx, fiber.StatusOK, "email verified")
}

// ForgotPassword godoc
// @Summary Request password reset
// @Description Send password reset email to user
// @Tags auth
// @Accept json
// @Produce json
// @Param forgot body dto.ForgotPasswordRequest true "Forgot password request"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /auth/forgot-password [post]
func (h *Handler) ForgotPassword(ctx *fiber.Ctx) error {
	var req dto.ForgotPasswordRequest
	if err := ctx.BodyParser(&req); err != nil {
		h.logger.Error("http - auth - forgot-password - body parsing error: " + err.Error())

		return response.WithError(ctx, err)
	}

	if err := h.validator.Struct(req); err != nil {
		h.logger.Error("http - auth - forgot-password - validate error: " + err.Error())

		return response.WithError(ctx, err)
	}

	if err := h.service.ForgotPassword(ctx.UserContext(), req); err != nil {
		return response.WithError(ctx, err)
	}

	return response.WithMessage(ctx, fiber.StatusOK, "password reset email sent")
}

// ResetPassword godoc
// @Summary Reset user password
// @Description Reset user password using reset token
// @Tags auth
// @Accept json
// @Produce json
// @Param reset body dto.ResetPasswordRequest true "Reset password request"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /auth/reset-password [post]
func (h *Handler) ResetPassword(ctx *fiber.Ctx) error {
	var req dto.ResetPasswordRequest
	if err := ctx.BodyParser(&req); err != nil {
		h.logger.Error("http - auth - reset-password - body parsing error: " + err.Error())

		return response.WithError(ctx, err)
	}

	if err := h.validator.Struct(req); err != nil {
		h.logger.Error("http - auth - reset-password - validate error: " + err.Error())

		return response.WithError(ctx, err)
	}

	if err := h.service.ResetPassword(ctx.UserContext(), req); err != nil {
		return response.WithError(ctx, err)
	}

	return response.WithMessage(ctx, fiber.StatusOK, "password reset successful")
}
