package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/ManuelReschke/visitas/internal/pkg/config"
)

func newMetricsApp(t *testing.T) *fiber.App {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	app := fiber.New()
	app.Get("/metrics", MetricsAuth(config.Metrics{User: "admin", PasswordHash: string(hash)}), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func TestMetricsAuth(t *testing.T) {
	app := newMetricsApp(t)

	tests := []struct {
		name       string
		user, pass string
		noAuth     bool
		want       int
	}{
		{name: "valid", user: "admin", pass: "s3cret", want: fiber.StatusOK},
		{name: "wrong password", user: "admin", pass: "nope", want: fiber.StatusUnauthorized},
		{name: "wrong user", user: "root", pass: "s3cret", want: fiber.StatusUnauthorized},
		{name: "missing", noAuth: true, want: fiber.StatusUnauthorized},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
		if !tt.noAuth {
			req.SetBasicAuth(tt.user, tt.pass)
		}
		resp, err := app.Test(req)
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.want, resp.StatusCode, tt.name)
	}
}
