package handler

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/quickcourt/quickcourt/internal/delivery/http/response"
	"github.com/quickcourt/quickcourt/internal/domains/oauth/service"

	// Register dto for swagger docs
	_ "github.com/quickcourt/quickcourt/internal/domains/user/dto"
	"github.com/quickcourt/quickcourt/pkg/failure"
	"github.com/quickcourt/quickcourt/pkg/logger"
)

type Handler struct {
	service   service.OAuthService
	logger    logger.Interface
	validator *validator.Validate
}

func New(s service.OAuthService, l logger.Interface, v *validator.Validate) *Handler {
	return &Handler{
		service:   s,
		logger:    l,
		validator: v,
	}
}

const (
	identifier = "http - oauth - %s"

	routePath = "/oauth"
)

func (h *Handler) RegisterRoutes(r fiber.Router) {
	oauth := r.Group(routePath)

	oauth.Get("/google/login", h.GoogleLogin)
	oauth.Get("/google/callback", h.GoogleCallback)
}

// GoogleLogin godoc
// @Summary Login with Google
// @Description Redirects to Google OAuth consent screen
// @Tags auth
// @Accept json
// @Produce json
// @Success 302 {string} string "Redirect to Google"
// @Failure 500 {object} response.Error
// @Router /oauth/google/login [get]
func (h *Handler) GoogleLogin(ctx *fiber.Ctx) error {
	res, err := h.service.GetGoogleAuthURL()
	if err != nil {
		h.logger.Error(fmt.Sprintf(identifier, "google login"), err)

		return response.WithError(ctx, err)
	}

	if err := ctx.Redirect(res.URL); err != nil {
		h.logger.Error(fmt.Sprintf(identifier, "google login - redirect error"), err)

		return response.WithError(ctx, err)
	}

	return nil
}

// GoogleCallback godoc
// @Summary Google OAuth callback
// @Description Handle the Google OAuth callback and return JWT tokens
// @Tags auth
// @Accept json
// @Produce json
// @Param code query string true "Authorization code from Google"
// @Success 200 {object} response.Data[dto.UserLoginResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /oauth/google/callback [get]
func (h *Handler) GoogleCallback(ctx *fiber.Ctx) error {
	code := ctx.Query("code")
	if code == "" {
		h.logger.Error(fmt.Sprintf(identifier, "google callback - code is empty"))

		return response.WithError(ctx, failure.BadRequestFromString("authorization code required"))
	}

	data, err := h.service.HandleGoogleCallback(ctx.Context(), code)
	if err != nil {
		h.logger.Error(fmt.Sprintf(identifier, "google callback"), err)

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}
