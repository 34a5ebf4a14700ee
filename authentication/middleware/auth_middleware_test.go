package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Maruaruhe/swgameweb/authentication/token"
)

func newProtectedApp(tokens *token.Service) *fiber.App {
	app := fiber.New()
	app.Get("/protected", JwtAuthMiddleware(tokens), func(c *fiber.Ctx) error {
		claims := c.Locals(LocalsUserKey).(*token.Claims)
		return c.JSON(fiber.Map{"id": claims.ID, "name": claims.Name})
	})
	return app
}

func TestJwtAuthMiddleware_MissingHeader(t *testing.T) {
	app := newProtectedApp(token.NewService("secret", time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestJwtAuthMiddleware_BadHeaderFormat(t *testing.T) {
	app := newProtectedApp(token.NewService("secret", time.Hour))

	for _, header := range []string{"Token abc", "Bearer", "Bearer a b"} {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", header)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "header %q", header)
	}
}

func TestJwtAuthMiddleware_InvalidToken(t *testing.T) {
	app := newProtectedApp(token.NewService("secret", time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestJwtAuthMiddleware_ExpiredToken(t *testing.T) {
	tokens := token.NewService("secret", time.Hour)
	app := newProtectedApp(tokens)

	expired, err := token.NewService("secret", -time.Minute).Issue(1, "alice")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+expired)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestJwtAuthMiddleware_ValidToken(t *testing.T) {
	tokens := token.NewService("secret", time.Hour)
	app := newProtectedApp(tokens)

	tok, err := tokens.Issue(42, "alice")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, uint(42), body.ID)
	assert.Equal(t, "alice", body.Name)
}
