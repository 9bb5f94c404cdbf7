package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authTestApp(secret string) *fiber.App {
	app := fiber.New()
	app.Post("/protected", ServiceAuth(secret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
	return app
}

func TestServiceAuth_OpenWithoutSecret(t *testing.T) {
	t.Parallel()

	app := authTestApp("")
	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestServiceAuth_RejectsMissingToken(t *testing.T) {
	t.Parallel()

	app := authTestApp("0123456789abcdef0123456789abcdef")
	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestServiceAuth_RejectsBadToken(t *testing.T) {
	t.Parallel()

	app := authTestApp("0123456789abcdef0123456789abcdef")
	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestServiceAuth_RejectsWrongSecret(t *testing.T) {
	t.Parallel()

	token, err := NewServiceToken("another-secret-another-secret-32", "agent", time.Minute)
	require.NoError(t, err)

	app := authTestApp("0123456789abcdef0123456789abcdef")
	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestServiceAuth_AcceptsMintedToken(t *testing.T) {
	t.Parallel()

	const secret = "0123456789abcdef0123456789abcdef"
	token, err := NewServiceToken(secret, "generator", time.Minute)
	require.NoError(t, err)

	app := authTestApp(secret)
	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestServiceAuth_RejectsExpiredToken(t *testing.T) {
	t.Parallel()

	const secret = "0123456789abcdef0123456789abcdef"
	token, err := NewServiceToken(secret, "agent", -time.Minute)
	require.NoError(t, err)

	app := authTestApp(secret)
	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
