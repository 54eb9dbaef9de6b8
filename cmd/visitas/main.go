package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/ManuelReschke/visitas/internal/pkg/config"
	"github.com/ManuelReschke/visitas/internal/pkg/env"
	"github.com/ManuelReschke/visitas/internal/pkg/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	app, cfg, err := NewApplication()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// shutdown runs the OnShutdown hooks closing the stores
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		<-ctx.Done()
		log.Info("Shutting down")
		if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			log.Errorf("Shutdown: %v", err)
		}
	}()

	if err := app.Listen(cfg.Addr()); err != nil {
		log.Fatal(err)
	}
	<-stopped
}

func NewApplication() (*fiber.App, config.Config, error) {
	if !env.SetupEnvFile() {
		log.Info("No .env file found, using process environment")
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, cfg, err
	}
	if cfg.IsDev() {
		log.SetLevel(log.LevelDebug)
	}
	cfg.APIDocsFile = resolvePath(cfg.APIDocsFile)

	store, err := server.OpenStore(cfg)
	if err != nil {
		return nil, cfg, err
	}
	log.Infof("Counter store: %s, locale: %s", cfg.Counter.Store, cfg.Counter.Locale)

	app, err := server.New(cfg, store)
	return app, cfg, err
}

// resolvePath finds a project relative file from the usual working directories.
func resolvePath(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	basePaths := []string{
		"./",        // Current directory
		"../../",    // From cmd/visitas to project root
		"../../../", // Fallback
	}
	for _, base := range basePaths {
		candidate := filepath.Join(base, path)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return path
}
