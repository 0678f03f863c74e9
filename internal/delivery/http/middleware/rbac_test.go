package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/quickcourt/quickcourt/internal/delivery/http/middleware"
	"github.com/quickcourt/quickcourt/pkg/constant"
	"github.com/quickcourt/quickcourt/pkg/jwt"
	"github.com/stretchr/testify/assert"
)

func newProtectedApp(guard fiber.Handler, handlerRan *bool) *fiber.App {
	app := fiber.New()
	app.Get("/protected", middleware.Jwt(), guard, func(c *fiber.Ctx) error {
		*handlerRan = true

		return c.SendStatus(http.StatusOK)
	})

	return app
}

func authRequest(t *testing.T, role string) *http.Request {
	t.Helper()

	jwt.Initialize("quickcourt-test", "test-secret", time.Hour, time.Hour)

	token, err := jwt.GenerateAccessToken(uuid.New().String(), "user@example.com", role)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	return req
}

func TestOwnerOrAdmin(t *testing.T) {
	t.Run("player is rejected before the handler runs", func(t *testing.T) {
		handlerRan := false
		app := newProtectedApp(middleware.OwnerOrAdmin(), &handlerRan)

		resp, err := app.Test(authRequest(t, constant.UserRolePlayer))

		assert.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		assert.False(t, handlerRan)
	})

	t.Run("owner passes through", func(t *testing.T) {
		handlerRan := false
		app := newProtectedApp(middleware.OwnerOrAdmin(), &handlerRan)

		resp, err := app.Test(authRequest(t, constant.UserRoleOwner))

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.True(t, handlerRan)
	})

	t.Run("admin passes through", func(t *testing.T) {
		handlerRan := false
		app := newProtectedApp(middleware.OwnerOrAdmin(), &handlerRan)

		resp, err := app.Test(authRequest(t, constant.UserRoleAdmin))

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.True(t, handlerRan)
	})
}

func TestAdminOnly(t *testing.T) {
	t.Run("owner is rejected before the handler runs", func(t *testing.T) {
		handlerRan := false
		app := newProtectedApp(middleware.AdminOnly(), &handlerRan)

		resp, err := app.Test(authRequest(t, constant.UserRoleOwner))

		assert.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		assert.False(t, handlerRan)
	})

	t.Run("admin passes through", func(t *testing.T) {
		handlerRan := false
		app := newProtectedApp(middleware.AdminOnly(), &handlerRan)

		resp, err := app.Test(authRequest(t, constant.UserRoleAdmin))

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.True(t, handlerRan)
	})
}

func TestCheckRole_MissingRole(t *testing.T) {
	handlerRan := false

	app := fiber.New()
	app.Get("/protected", middleware.OwnerOrAdmin(), func(c *fiber.Ctx) error {
		handlerRan = true

		return c.SendStatus(http.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/protected", nil))

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.False(t, handlerRan)
}
