package config

import (
	"fmt"
	"net"

	cenv "github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"

	"github.com/ManuelReschke/visitas/internal/pkg/env"
)

// Store drivers accepted by COUNTER_STORE.
const (
	StoreMemory  = "memory"
	StoreRedis   = "redis"
	StoreStorage = "storage"
	StoreMySQL   = "mysql"
)

// Config is the complete runtime configuration of the visitas service.
type Config struct {
	AppEnv  string `env:"APP_ENV" envDefault:"prod"`
	AppHost string `env:"APP_HOST" envDefault:"localhost"`
	AppPort string `env:"APP_PORT" envDefault:"4000" validate:"required,numeric"`

	Counter  Counter
	Cache    Cache
	Database Database
	Metrics  Metrics

	VisitorCookie       string `env:"VISITOR_COOKIE" envDefault:"visitas_id" validate:"required"`
	VisitorCookieSecure bool   `env:"VISITOR_COOKIE_SECURE" envDefault:"false"`
	// SessionStore keeps the visitor sessions: memory or redis (gofiber storage)
	SessionStore string `env:"SESSION_STORE" envDefault:"memory" validate:"required,oneof=memory redis"`
	APIDocsFile  string `env:"API_DOCS_FILE" envDefault:"public/docs/v1/openapi.yml"`
}

// Counter configures the view counter and date widgets.
type Counter struct {
	Locale        string `env:"COUNTER_LOCALE" envDefault:"es-MX" validate:"required"`
	Key           string `env:"COUNTER_KEY" envDefault:"viewCount" validate:"required,max=200"`
	ElementID     string `env:"COUNTER_ELEMENT_ID" envDefault:"viewCount" validate:"required"`
	DateElementID string `env:"DATE_ELEMENT_ID" envDefault:"dateDisplay" validate:"required"`
	DateTimezone  string `env:"DATE_TIMEZONE"`
	Store         string `env:"COUNTER_STORE" envDefault:"memory" validate:"required,oneof=memory redis storage mysql"`
}

type Cache struct {
	Host     string `env:"CACHE_HOST" envDefault:"localhost"`
	Port     int    `env:"CACHE_PORT" envDefault:"6379" validate:"min=1,max=65535"`
	Password string `env:"CACHE_PASSWORD"`
	DB       int    `env:"CACHE_DB" envDefault:"0" validate:"min=0,max=15"`
	Prefix   string `env:"CACHE_PREFIX" envDefault:"visitas:"`
}

// Addr returns host:port for the redis client.
func (c Cache) Addr() string {
	return net.JoinHostPort(c.Host, fmt.Sprintf("%d", c.Port))
}

type Database struct {
	User     string `env:"DB_USER"`
	Password string `env:"DB_PASSWORD"`
	Host     string `env:"DB_HOST" envDefault:"127.0.0.1"`
	Port     string `env:"DB_PORT" envDefault:"3306" validate:"numeric"`
	Name     string `env:"DB_NAME"`
}

// DSN returns the go-sql-driver/mysql data source name.
func (d Database) DSN() string {
	// "user:pass@tcp(127.0.0.1:3306)/dbname?charset=utf8mb4&parseTime=True&loc=Local"
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.User, d.Password, d.Host, d.Port, d.Name)
}

// MigrateURL returns the golang-migrate database URL.
func (d Database) MigrateURL() string {
	return fmt.Sprintf("mysql://%s:%s@tcp(%s:%s)/%s?multiStatements=true",
		d.User, d.Password, d.Host, d.Port, d.Name)
}

type Metrics struct {
	User         string `env:"METRICS_USER" envDefault:"admin"`
	PasswordHash string `env:"METRICS_PASSWORD_HASH"`
}

// Enabled reports whether /metrics should be mounted.
func (m Metrics) Enabled() bool {
	return m.PasswordHash != ""
}

// Addr returns the listen address.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.AppHost, c.AppPort)
}

func (c Config) IsDev() bool {
	return c.AppEnv == "dev"
}

// Load parses the merged environment (.env values first, then the process
// environment) into a validated Config.
func Load() (Config, error) {
	return Parse(env.Environ())
}

// Parse builds a Config from an explicit variable map.
func Parse(vars map[string]string) (Config, error) {
	var cfg Config
	if err := cenv.ParseWithOptions(&cfg, cenv.Options{Environment: vars}); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate validates the config
func (c Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	if c.Counter.Store == StoreMySQL && c.Database.Name == "" {
		return fmt.Errorf("validation failed: DB_NAME is required for the %s store", StoreMySQL)
	}
	return nil
}
