package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/periscope-tudelft/periscope_api/shared"
)

type fakeVerifier struct{}

func (fakeVerifier) Authenticate(token string, requireAdmin bool) (int, int, error) {
	switch token {
	case "admin-token":
		return 1, shared.ClientTypeAdmin, nil
	case "user-token":
		if requireAdmin {
			return 0, 0, shared.NewPermissionDeniedError()
		}
		return 2, shared.ClientTypeNormal, nil
	default:
		return 0, 0, shared.NewMalformedTokenError()
	}
}

func newTestApp() *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: shared.ErrorHandler})
	auth := NewAuthMiddleware(fakeVerifier{})

	echo := func(c *fiber.Ctx) error {
		return c.SendString(strconv.Itoa(c.Locals(shared.UserID).(int)))
	}
	app.Post("/user", auth.RequiredUser(), echo)
	app.Post("/admin", auth.RequiredAdmin(), echo)
	return app
}

func jsonPost(path, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestTokenFromBody(t *testing.T) {
	app := newTestApp()

	resp, err := app.Test(jsonPost("/user", `{"user_token":"user-token"}`))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(jsonPost("/admin", `{"user_token":"admin-token"}`))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestTokenFromQueryParam(t *testing.T) {
	app := newTestApp()

	// multipart uploads carry the token outside the body
	req := httptest.NewRequest(http.MethodPost, "/user?user_token=user-token", strings.NewReader("binary"))
	req.Header.Set("Content-Type", "application/octet-stream")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestMissingToken(t *testing.T) {
	app := newTestApp()

	resp, err := app.Test(jsonPost("/user", `{}`))
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestNonAdminTokenOnAdminRoute(t *testing.T) {
	app := newTestApp()

	resp, err := app.Test(jsonPost("/admin", `{"user_token":"user-token"}`))
	require.NoError(t, err)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestGarbageToken(t *testing.T) {
	app := newTestApp()

	resp, err := app.Test(jsonPost("/user", `{"user_token":"nope"}`))
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
