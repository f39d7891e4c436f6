package config

import (
	"errors"
	"os"
	"time"

	"github.com/ardanlabs/conf"
	"github.com/joho/godotenv"
	pkgerrors "github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Namespace prefixes environment overrides, e.g. DASHBOARD_WEB_HOST.
const Namespace = "DASHBOARD"

type Config struct {
	Web struct {
		Host            string        `yaml:"host"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
		AllowedOrigins  []string      `yaml:"allowed_origins"`
	} `yaml:"web"`
	Auth struct {
		JWTKey     string        `yaml:"jwt_key" conf:"noprint"`
		AccessTTL  time.Duration `yaml:"access_ttl"`
		RefreshTTL time.Duration `yaml:"refresh_ttl"`
	} `yaml:"auth"`
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password" conf:"noprint"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`
	Export struct {
		Dir string `yaml:"dir"`
	} `yaml:"export"`
	Seed struct {
		// Today fixes the day seed attendance is generated for (YYYY-MM-DD).
		Today string `yaml:"today"`
	} `yaml:"seed"`
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	var c Config
	c.Web.Host = "0.0.0.0:8080"
	c.Web.ReadTimeout = 5 * time.Second
	c.Web.WriteTimeout = 10 * time.Second
	c.Web.ShutdownTimeout = 5 * time.Second
	c.Auth.AccessTTL = 15 * time.Minute
	c.Auth.RefreshTTL = 72 * time.Hour
	c.Export.Dir = "./exports"
	return c
}

// NewConfig loads the configuration in layers: defaults, then the YAML file
// named by DASHBOARD_CONFIG (config.yaml if unset), then environment variables
// and command line flags. A .env file, when present, is loaded into the
// environment first. Missing files are not an error.
func NewConfig(args []string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, pkgerrors.Wrap(err, "loading .env")
	}

	c := Default()

	path := os.Getenv(Namespace + "_CONFIG")
	if path == "" {
		path = "config.yaml"
	}

	yamlFile, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, pkgerrors.Wrapf(err, "reading %s", path)
	default:
		if err = yaml.Unmarshal(yamlFile, &c); err != nil {
			return nil, pkgerrors.Wrapf(err, "parsing %s", path)
		}
	}

	if err = conf.Parse(args, Namespace, &c); err != nil {
		if errors.Is(err, conf.ErrHelpWanted) {
			return nil, err
		}
		return nil, pkgerrors.Wrap(err, "parsing config")
	}

	if c.Auth.JWTKey == "" {
		return nil, errors.New("missing jwt key")
	}
	if c.Seed.Today != "" {
		if _, err = time.Parse("2006-01-02", c.Seed.Today); err != nil {
			return nil, pkgerrors.Wrap(err, "seed today")
		}
	}

	return &c, nil
}

// Usage returns the command line help text.
func Usage() (string, error) {
	c := Default()
	return conf.Usage(Namespace, &c)
}

// String renders the configuration for the startup log, hiding secrets.
func (c *Config) String() string {
	out, err := conf.String(c)
	if err != nil {
		return err.Error()
	}
	return out
}

// Today returns the configured seed day, or now.
func (c *Config) Today(now time.Time) time.Time {
	if t, err := time.Parse("2006-01-02", c.Seed.Today); err == nil {
		return t
	}
	return now
}
