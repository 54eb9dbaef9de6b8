// Package session identifies browsers. Each browser gets a long-lived
// session whose id scopes its view counter.
package session

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"
)

const DefaultCookieName = "visitas_id"

// Expiration is refreshed on every load, so a browser keeps its scope as
// long as it comes back within a year.
const Expiration = 365 * 24 * time.Hour

const localsKey = "VISITOR_ID"

type Config struct {
	CookieName string
	// Secure marks the cookie HTTPS only. Browsers drop Secure cookies on
	// plain HTTP, which would reset the count on every load.
	Secure bool
	// Storage holds the sessions; nil keeps them in process memory.
	Storage fiber.Storage
}

func NewSessionStore(cfg Config) *session.Store {
	name := cfg.CookieName
	if name == "" {
		name = DefaultCookieName
	}

	return session.New(session.Config{
		Storage:        cfg.Storage,
		Expiration:     Expiration,
		KeyLookup:      "cookie:" + name,
		KeyGenerator:   uuid.NewString,
		CookiePath:     "/",
		CookieHTTPOnly: true,
		CookieSecure:   cfg.Secure,
		CookieSameSite: "Lax",
	})
}

// New returns a middleware loading the caller's session and saving it
// again, which issues or refreshes the cookie. A failing session store
// never fails the request: the request is served under a throwaway scope.
func New(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := visitorID(c, store)
		if err != nil {
			log.Warnf("session: %v, serving request without a persistent scope", err)
			id = uuid.NewString()
		}
		c.Locals(localsKey, id)
		return c.Next()
	}
}

func visitorID(c *fiber.Ctx, store *session.Store) (string, error) {
	sess, err := store.Get(c)
	if err != nil {
		return "", err
	}
	// the session must not be used after Save
	id := sess.ID()
	if err := sess.Save(); err != nil {
		return "", err
	}
	return id, nil
}

// ID returns the visitor id of the current request, or "" outside the
// middleware.
func ID(c *fiber.Ctx) string {
	id, _ := c.Locals(localsKey).(string)
	return id
}
