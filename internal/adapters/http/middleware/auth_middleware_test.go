package middleware

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"iadev-dashboard/internal/core/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// stubAuthenticator maps fixed tokens onto sessions
type stubAuthenticator map[string]*domain.Session

func (s stubAuthenticator) Authenticate(token string) (*domain.Session, error) {
	if token == "" {
		return nil, domain.ErrUnauthenticated
	}
	session, ok := s[token]
	if !ok {
		return nil, errors.New("bad token")
	}
	return session, nil
}

var sessions = stubAuthenticator{
	"master":  {CallerID: "Pastor", IsMaster: true},
	"deleter": {CallerID: "2", Permissions: domain.Capabilities{DeleteMember: true}},
	"plain":   {CallerID: "3"},
}

func newGateApp(capability domain.Capability) *fiber.App {
	app := fiber.New()
	app.Delete("/gated", RequireSession(sessions), RequireCapability(capability), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	app.Post("/master", RequireSession(sessions), MasterOnly(), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func call(t *testing.T, app *fiber.App, method, path, authorization string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if authorization != "" {
		req.Header.Set(fiber.HeaderAuthorization, authorization)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestRequireSession(t *testing.T) {
	app := newGateApp(domain.CapDeleteMember)

	tests := []struct {
		name          string
		authorization string
		wantStatus    int
		wantBody      string
	}{
		{"missing header", "", fiber.StatusForbidden, "Token not provided"},
		{"not bearer", "Basic abc", fiber.StatusForbidden, "Token not provided"},
		{"invalid token", "Bearer forged", fiber.StatusUnauthorized, "Session expired"},
		{"lowercase scheme", "bearer deleter", fiber.StatusOK, "ok"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := call(t, app, "DELETE", "/gated", tt.authorization)
			assert.Equal(t, tt.wantStatus, status)
			assert.Contains(t, body, tt.wantBody)
		})
	}
}

func TestRequireCapability(t *testing.T) {
	app := newGateApp(domain.CapDeleteMember)

	status, body := call(t, app, "DELETE", "/gated", "Bearer plain")
	assert.Equal(t, fiber.StatusForbidden, status)
	assert.JSONEq(t, `{"success":false,"error":"You do not have permission to perform this action"}`, body)

	status, _ = call(t, app, "DELETE", "/gated", "Bearer deleter")
	assert.Equal(t, fiber.StatusOK, status)

	// master passes with an empty capability map
	status, _ = call(t, app, "DELETE", "/gated", "Bearer master")
	assert.Equal(t, fiber.StatusOK, status)

	status, _ = call(t, newGateApp(domain.CapEditTransaction), "DELETE", "/gated", "Bearer deleter")
	assert.Equal(t, fiber.StatusForbidden, status)
}

func TestMasterOnly(t *testing.T) {
	app := newGateApp(domain.CapDeleteMember)

	status, _ := call(t, app, "POST", "/master", "Bearer master")
	assert.Equal(t, fiber.StatusOK, status)

	status, _ = call(t, app, "POST", "/master", "Bearer deleter")
	assert.Equal(t, fiber.StatusForbidden, status)
}

func TestBearerToken(t *testing.T) {
	assert.Equal(t, "abc", bearerToken("Bearer abc"))
	assert.Equal(t, "abc", bearerToken("  BEARER   abc "))
	assert.Equal(t, "", bearerToken("Bearer"))
	assert.Equal(t, "", bearerToken("Token abc"))
}

func TestCapabilityGateProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var perms domain.Capabilities
		for _, c := range domain.AllCapabilities {
			perms = perms.With(c, rapid.Bool().Draw(t, string(c)))
		}
		isMaster := rapid.Bool().Draw(t, "master")
		capability := rapid.SampledFrom(domain.AllCapabilities).Draw(t, "capability")

		app := fiber.New()
		auth := stubAuthenticator{"tok": {CallerID: "7", IsMaster: isMaster, Permissions: perms}}
		app.Get("/", RequireSession(auth), RequireCapability(capability), func(c *fiber.Ctx) error {
			return c.SendStatus(fiber.StatusNoContent)
		})

		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer tok")
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		resp.Body.Close()

		want := fiber.StatusForbidden
		if isMaster || perms.Has(capability) {
			want = fiber.StatusNoContent
		}
		if resp.StatusCode != want {
			t.Fatalf("status %d, want %d", resp.StatusCode, want)
		}
	})
}
