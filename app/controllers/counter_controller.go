package controllers

import (
	"github.com/a-h/templ"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/ManuelReschke/visitas/internal/pkg/session"
	"github.com/ManuelReschke/visitas/internal/pkg/viewmodel"
	"github.com/ManuelReschke/visitas/internal/pkg/widget"
	"github.com/ManuelReschke/visitas/views"
)

// CounterController serves the page hosting the widgets and the counter API.
type CounterController struct {
	host  *widget.Host
	title string
	isDev bool
}

// NewCounterController creates a new counter controller for host
func NewCounterController(host *widget.Host, title string, isDev bool) *CounterController {
	return &CounterController{
		host:  host,
		title: title,
		isDev: isDev,
	}
}

// HandlePage renders the page; every load counts as one visit of the caller's browser
func (cc *CounterController) HandlePage(c *fiber.Ctx) error {
	page := cc.host.NewPage()
	cc.host.Load(c.UserContext(), session.ID(c), page)

	return c.Render("index", viewmodel.Layout{
		Title: cc.title,
		Lang:  cc.host.Formatter().Tag().String(),
		IsDev: cc.isDev,
		Counter: viewmodel.Element{
			ID:   cc.host.CounterElementID(),
			Text: page.Text(cc.host.CounterElementID()),
		},
		Date: viewmodel.Element{
			ID:   cc.host.DateElementID(),
			Text: page.Text(cc.host.DateElementID()),
		},
	})
}

// HandleCounterWidget counts one visit and returns only the counter element
func (cc *CounterController) HandleCounterWidget(c *fiber.Ctx) error {
	page := cc.host.NewPage()
	cc.host.Load(c.UserContext(), session.ID(c), page)

	id := cc.host.CounterElementID()
	handler := adaptor.HTTPHandler(templ.Handler(views.CounterBadge(id, page.Text(id))))
	return handler(c)
}

// HandleDateWidget returns only the date element, no visit is counted
func (cc *CounterController) HandleDateWidget(c *fiber.Ctx) error {
	page := cc.host.NewPage()
	cc.host.RenderDate(page)

	id := cc.host.DateElementID()
	handler := adaptor.HTTPHandler(templ.Handler(views.DateBadge(id, page.Text(id))))
	return handler(c)
}

// HandleGetCounter returns the caller's current count without incrementing it
func (cc *CounterController) HandleGetCounter(c *fiber.Ctx) error {
	count := cc.host.Peek(c.UserContext(), session.ID(c))

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"key":       cc.host.Key(),
		"count":     count,
		"formatted": cc.host.Formatter().Format(count),
		"locale":    cc.host.Formatter().Tag().String(),
	})
}

// HandleVisit counts one visit of the caller's browser
func (cc *CounterController) HandleVisit(c *fiber.Ctx) error {
	res := cc.host.Visit(c.UserContext(), session.ID(c))

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"previous":  res.Previous,
		"count":     res.Count,
		"formatted": cc.host.Formatter().Format(res.Count),
		"persisted": res.Persisted,
		"locale":    cc.host.Formatter().Tag().String(),
	})
}

// HandleHealth reports liveness
func HandleHealth(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "ok",
	})
}
