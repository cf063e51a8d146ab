package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/endayshebocah/tckokuo/app/model"
	"github.com/endayshebocah/tckokuo/config"
	"github.com/endayshebocah/tckokuo/helper"
)

func testApp() *fiber.App {
	app := fiber.New()
	app.Get("/open", AuthRequired(), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	app.Get("/gated", AuthRequired(), PermissionsRequired(model.PermTrash), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func tokenFor(t *testing.T, role string, perms datatypes.JSONMap) string {
	t.Helper()
	config.Env.JWTSecret = "test-secret"
	token, err := helper.GenerateToken(model.User{
		ID:          uuid.New(),
		Name:        "Ana",
		Role:        role,
		Permissions: perms,
	})
	require.NoError(t, err)
	return token
}

func get(t *testing.T, app *fiber.App, path, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestAuthRequiredRejectsMissingToken(t *testing.T) {
	app := testApp()
	resp := get(t, app, "/open", "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthRequiredRejectsBadToken(t *testing.T) {
	app := testApp()
	config.Env.JWTSecret = "test-secret"
	resp := get(t, app, "/open", "not.a.token")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthRequiredAcceptsValidToken(t *testing.T) {
	app := testApp()
	token := tokenFor(t, model.RoleTrainer, datatypes.JSONMap{model.PermAttendance: true})
	resp := get(t, app, "/open", token)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestPermissionsRequired(t *testing.T) {
	app := testApp()

	without := tokenFor(t, model.RoleTrainer, datatypes.JSONMap{model.PermAttendance: true})
	resp := get(t, app, "/gated", without)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	with := tokenFor(t, model.RoleTrainer, datatypes.JSONMap{model.PermTrash: true})
	resp = get(t, app, "/gated", with)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Admin tokens carry every permission.
	admin := tokenFor(t, model.RoleAdmin, nil)
	resp = get(t, app, "/gated", admin)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
