package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/ManuelReschke/visitas/app/controllers"
	"github.com/ManuelReschke/visitas/internal/pkg/config"
)

type Router interface {
	InstallRouter(app *fiber.App)
}

func InstallRouter(app *fiber.App, cc *controllers.CounterController, sessions *session.Store, cfg config.Config) {
	// HttpRouter installs the session middleware the API routes rely on,
	// so it has to go first.
	setup(app, NewHttpRouter(cc, sessions, cfg), NewApiRouter(cc))
}

func setup(app *fiber.App, router ...Router) {
	for _, r := range router {
		r.InstallRouter(app)
	}
}
