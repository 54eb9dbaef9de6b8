package middleware

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
	"golang.org/x/crypto/bcrypt"

	"github.com/ManuelReschke/visitas/internal/pkg/config"
)

// MetricsAuth protects the metrics endpoint with basic auth. The password
// is checked against the configured bcrypt hash.
func MetricsAuth(cfg config.Metrics) fiber.Handler {
	return basicauth.New(basicauth.Config{
		Realm: "metrics",
		Authorizer: func(user, pass string) bool {
			if subtle.ConstantTimeCompare([]byte(user), []byte(cfg.User)) != 1 {
				return false
			}
			return bcrypt.CompareHashAndPassword([]byte(cfg.PasswordHash), []byte(pass)) == nil
		},
	})
}
