package middleware_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"socialgrowth/internal/middleware"
	"socialgrowth/internal/models"
	"socialgrowth/internal/repositories"
	"socialgrowth/internal/services"
)

type singleUser struct {
	repositories.UserRepository
	user *models.User
}

func (s singleUser) GetByEmail(_ context.Context, email string) (*models.User, error) {
	if email != s.user.Email {
		return nil, repositories.ErrNotFound
	}
	return s.user, nil
}

func newApp(t *testing.T, role models.Role) (*fiber.App, string) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &models.User{ID: "u1", Email: "jane@example.com", Role: role, PasswordHash: string(hash)}

	logger := zap.NewNop().Sugar()
	authService := services.NewAuthService(singleUser{user: user}, "test_jwt_secret", logger)
	token, _, err := authService.Login(context.Background(), user.Email, "password123")
	require.NoError(t, err)

	app := fiber.New()
	protected := app.Group("", middleware.AuthRequired(authService, logger))
	protected.Get("/me", func(c *fiber.Ctx) error {
		return c.SendString(middleware.UserID(c))
	})
	protected.Get("/admin", middleware.AdminOnly(), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app, token
}

func get(t *testing.T, app *fiber.App, path, authHeader string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(body)
}

func TestAuthRequired(t *testing.T) {
	app, token := newApp(t, models.RoleUser)

	code, body := get(t, app, "/me", "Bearer "+token)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "u1", body)

	code, _ = get(t, app, "/me", "")
	assert.Equal(t, http.StatusUnauthorized, code)

	code, _ = get(t, app, "/me", token)
	assert.Equal(t, http.StatusUnauthorized, code)

	code, _ = get(t, app, "/me", "Bearer not-a-token")
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestAdminOnly(t *testing.T) {
	app, token := newApp(t, models.RoleUser)
	code, _ := get(t, app, "/admin", "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, code)

	app, token = newApp(t, models.RoleAdmin)
	code, body := get(t, app, "/admin", "Bearer "+token)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body)
}
