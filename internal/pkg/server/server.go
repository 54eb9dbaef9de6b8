// Package server assembles the fiber application hosting the widgets.
package server

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/ManuelReschke/visitas/app/controllers"
	"github.com/ManuelReschke/visitas/app/repository"
	"github.com/ManuelReschke/visitas/internal/pkg/cache"
	"github.com/ManuelReschke/visitas/internal/pkg/config"
	"github.com/ManuelReschke/visitas/internal/pkg/constants"
	"github.com/ManuelReschke/visitas/internal/pkg/counter"
	"github.com/ManuelReschke/visitas/internal/pkg/database"
	"github.com/ManuelReschke/visitas/internal/pkg/datedisplay"
	"github.com/ManuelReschke/visitas/internal/pkg/localeformat"
	"github.com/ManuelReschke/visitas/internal/pkg/router"
	"github.com/ManuelReschke/visitas/internal/pkg/session"
	"github.com/ManuelReschke/visitas/internal/pkg/storage"
	"github.com/ManuelReschke/visitas/internal/pkg/widget"
	"github.com/ManuelReschke/visitas/views"
)

const pageTitle = "Visitas"

// OpenStore connects the counter store selected by COUNTER_STORE.
func OpenStore(cfg config.Config) (counter.Store, error) {
	switch cfg.Counter.Store {
	case config.StoreMemory:
		return counter.NewMemoryStore(), nil
	case config.StoreRedis:
		return cache.NewStore(cache.SetupCache(cfg.Cache), cfg.Cache.Prefix), nil
	case config.StoreStorage:
		backend, err := storage.NewRedisStorage(cfg.Cache)
		if err != nil {
			return nil, err
		}
		return storage.NewStore(backend, cfg.Cache.Prefix), nil
	case config.StoreMySQL:
		db, err := database.SetupDatabase(cfg.Database)
		if err != nil {
			return nil, err
		}
		return repository.NewFactory(db).GetCounterRepository(), nil
	default:
		return nil, fmt.Errorf("unknown counter store %q", cfg.Counter.Store)
	}
}

// NewHost builds the widget host for cfg over store.
func NewHost(cfg config.Config, store counter.Store) (*widget.Host, error) {
	tag, err := localeformat.Parse(cfg.Counter.Locale)
	if err != nil {
		return nil, err
	}

	loc := time.Local
	if cfg.Counter.DateTimezone != "" {
		loc, err = time.LoadLocation(cfg.Counter.DateTimezone)
		if err != nil {
			return nil, fmt.Errorf("invalid DATE_TIMEZONE %q: %w", cfg.Counter.DateTimezone, err)
		}
	}

	return widget.NewHost(store, widget.Options{
		Key:              cfg.Counter.Key,
		CounterElementID: cfg.Counter.ElementID,
		Formatter:        localeformat.New(tag),
		Date: datedisplay.New(tag,
			datedisplay.WithLocation(loc),
			datedisplay.WithElementID(cfg.Counter.DateElementID),
		),
		Logger: log.DefaultLogger(),
	}), nil
}

// OpenSessionStorage returns the storage for visitor sessions selected by
// SESSION_STORE. Memory sessions return nil, fiber keeps them in process.
func OpenSessionStorage(cfg config.Config) (fiber.Storage, error) {
	if cfg.SessionStore != config.StoreRedis {
		return nil, nil
	}
	backend, err := storage.NewRedisStorage(cfg.Cache)
	if err != nil {
		return nil, fmt.Errorf("session storage: %w", err)
	}
	return backend, nil
}

// New returns the fiber application for cfg using store. Store and session
// backends holding connections are closed when the app shuts down.
func New(cfg config.Config, store counter.Store) (*fiber.App, error) {
	host, err := NewHost(cfg, store)
	if err != nil {
		return nil, err
	}

	sessionStorage, err := OpenSessionStorage(cfg)
	if err != nil {
		return nil, err
	}
	sessions := session.NewSessionStore(session.Config{
		CookieName: cfg.VisitorCookie,
		Secure:     cfg.VisitorCookieSecure,
		Storage:    sessionStorage,
	})

	// init fiber app
	app := fiber.New(fiber.Config{
		Views:                 views.Engine(),
		DisableStartupMessage: !cfg.IsDev(),
	})

	closeOnShutdown(app, "counter store", store)
	if sessionStorage != nil {
		closeOnShutdown(app, "session storage", sessionStorage)
	}

	// recovery and logging
	app.Use(recover.New(), logger.New())

	// SWAGGER / OPENAPI
	if _, err := os.Stat(cfg.APIDocsFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: constants.DocsBasePath,
			FilePath: cfg.APIDocsFile,
			Path:     "v1",
			Title:    pageTitle + " API",
		}))
	} else {
		log.Infof("API docs not found at %s, swagger disabled", cfg.APIDocsFile)
	}

	// ROUTER
	cc := controllers.NewCounterController(host, pageTitle, cfg.IsDev())
	router.InstallRouter(app, cc, sessions, cfg)

	return app, nil
}

func closeOnShutdown(app *fiber.App, name string, resource any) {
	closer, ok := resource.(io.Closer)
	if !ok {
		return
	}
	app.Hooks().OnShutdown(func() error {
		if err := closer.Close(); err != nil {
			return fmt.Errorf("close %s: %w", name, err)
		}
		log.Infof("Closed %s", name)
		return nil
	})
}
