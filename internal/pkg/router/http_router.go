package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	fibersession "github.com/gofiber/fiber/v2/middleware/session"

	"github.com/ManuelReschke/visitas/app/controllers"
	"github.com/ManuelReschke/visitas/internal/pkg/config"
	"github.com/ManuelReschke/visitas/internal/pkg/constants"
	"github.com/ManuelReschke/visitas/internal/pkg/middleware"
	"github.com/ManuelReschke/visitas/internal/pkg/session"
)

type HttpRouter struct {
	counter  *controllers.CounterController
	sessions *fibersession.Store
	cfg      config.Config
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	app.Get(constants.HealthRoute, controllers.HandleHealth)

	// fiber metrics, only with a configured password hash
	if h.cfg.Metrics.Enabled() {
		app.Get(constants.MetricsRoute, middleware.MetricsAuth(h.cfg.Metrics), monitor.New())
	}

	// every route below belongs to one browser
	app.Use(session.New(h.sessions))

	app.Get(constants.PublicRoute, h.counter.HandlePage)
	app.Get(constants.CounterWidgetRoute, h.counter.HandleCounterWidget)
	app.Get(constants.DateWidgetRoute, h.counter.HandleDateWidget)
}

func NewHttpRouter(cc *controllers.CounterController, sessions *fibersession.Store, cfg config.Config) *HttpRouter {
	return &HttpRouter{counter: cc, sessions: sessions, cfg: cfg}
}
