package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"net/url"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Driver string

const (
	DriverPostgres Driver = "postgres"
	DriverSQLite   Driver = "sqlite"
	DriverMemory   Driver = "memory"
)

type Config struct {
	Env     string `yaml:"env" env:"ENV" env-default:"local"`
	AppName string `yaml:"app_name" env:"APP_NAME" env-default:"aikiddo-api"`
	BaseURL string `yaml:"base_url" env:"BASE_URL" env-default:"http://localhost:8000"`

	HTTPServer `yaml:"http_server"`
	Database   `yaml:"database"`
	Log        `yaml:"log"`
	CORS       `yaml:"cors"`
}

type HTTPServer struct {
	Addr            string        `yaml:"address" env:"HTTP_ADDR" env-default:":8000"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env:"HTTP_READ_TIMEOUT" env-default:"5s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env:"HTTP_WRITE_TIMEOUT" env-default:"10s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

type Database struct {
	Driver Driver `yaml:"driver" env:"DB_DRIVER" env-default:"postgres"`
	// URL es el DSN de Postgres o el path/URI de SQLite.
	URL string `yaml:"url" env:"DATABASE_URL"`
	// AutoMigrate crea el esquema al arrancar (postgres y sqlite).
	AutoMigrate bool `yaml:"auto_migrate" env:"DB_AUTO_MIGRATE" env-default:"false"`
}

type Log struct {
	Level  string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

type CORS struct {
	AllowedOrigins []string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-default:"*" env-separator:","`
}

// Load lee la config desde path (YAML o .env) o, si path es "", solo desde el entorno.
// Las variables de entorno pisan lo que venga del archivo.
func Load(path string) (*Config, error) {
	var cfg Config

	path = strings.TrimSpace(path)
	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// MustLoad resuelve el archivo con --config, CONFIG_PATH o un .env local,
// en ese orden. Si no hay archivo, usa solo el entorno.
func MustLoad() *Config {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		flagPath := flag.String("config", "", "path to the configuration file (YAML or .env)")
		flag.Parse()
		path = *flagPath
	}
	if path == "" {
		if _, err := os.Stat(".env"); err == nil {
			path = ".env"
		}
	}

	cfg, err := Load(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return cfg
}

func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverPostgres, DriverSQLite:
		if strings.TrimSpace(c.Database.URL) == "" {
			return fmt.Errorf("config: DATABASE_URL is required for driver %q", c.Database.Driver)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("config: unknown DB_DRIVER %q", c.Database.Driver)
	}

	if strings.TrimSpace(c.HTTPServer.Addr) == "" {
		return errors.New("config: HTTP_ADDR is required")
	}
	if _, _, _, err := c.PublicEndpoint(); err != nil {
		return err
	}
	return nil
}

// PublicEndpoint parte BaseURL en esquema, host y base path para el OpenAPI.
func (c *Config) PublicEndpoint() (scheme, host, basePath string, err error) {
	u, err := url.Parse(strings.TrimSpace(c.BaseURL))
	if err != nil {
		return "", "", "", fmt.Errorf("config: invalid BASE_URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", "", "", fmt.Errorf("config: BASE_URL must be absolute, got %q", c.BaseURL)
	}

	basePath = strings.TrimRight(u.Path, "/")
	if basePath == "" {
		basePath = "/"
	}
	return u.Scheme, u.Host, basePath, nil
}
