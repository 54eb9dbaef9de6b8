package router

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/ManuelReschke/visitas/app/controllers"
	"github.com/ManuelReschke/visitas/internal/pkg/constants"
)

type ApiRouter struct {
	counter *controllers.CounterController
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	api := app.Group(constants.APIRoute, limiter.New(limiter.Config{
		Max:        60,
		Expiration: time.Minute,
	}))
	api.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Hello from api",
		})
	})

	// API v1 routes
	v1 := api.Group(constants.APIV1Route)
	v1.Get(constants.APICounterRoute, h.counter.HandleGetCounter)
	v1.Post(constants.APIVisitRoute, h.counter.HandleVisit)
}

func NewApiRouter(cc *controllers.CounterController) *ApiRouter {
	return &ApiRouter{counter: cc}
}
