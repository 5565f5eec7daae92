package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultPath = "config/config.yaml"

	EnvDatabaseURL = "WORKHOURS_DATABASE_URL"
	// older deployments set this one; still honoured
	EnvMongoURI = "MONGODB_URI"

	ModeDev     = "dev"
	ModeRelease = "release"

	DriverMongo  = "mongodb"
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

var ErrNoConnectionString = errors.New("database connection string is not configured (set " + EnvDatabaseURL + ")")

type ServerConfig struct {
	Addr string `yaml:"addr"`
	Cert string `yaml:"cert"`
	Key  string `yaml:"key"`
}

type DatabaseConfig struct {
	Driver string `yaml:"driver"`
	URL    string `yaml:"url"`
	// mongo database name
	Name string `yaml:"name"`

	// mysql fallback when url is empty
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
}

type HoursConfig struct {
	BreakMinutes  int     `yaml:"break_minutes"`
	WeeklyTarget  float64 `yaml:"weekly_target"`
	MonthlyTarget float64 `yaml:"monthly_target"`
	MonthPolicy   string  `yaml:"month_policy"`
}

type Config struct {
	Version string         `yaml:"version"`
	Mode    string         `yaml:"mode"`
	Server  ServerConfig   `yaml:"server"`
	DB      DatabaseConfig `yaml:"database"`
	Hours   HoursConfig    `yaml:"hours"`
}

func Default() Config {
	return Config{
		Mode:   ModeRelease,
		Server: ServerConfig{Addr: ":8080"},
		DB:     DatabaseConfig{Driver: DriverMongo, Name: "workhours"},
		Hours: HoursConfig{
			BreakMinutes:  24,
			WeeklyTarget:  40,
			MonthlyTarget: 173.33,
			MonthPolicy:   "flat",
		},
	}
}

// Load reads the YAML file at path (a missing file is fine), then applies
// environment overrides. The result is validated.
func Load(path string) (*Config, error) {
	cfg := Default()
	buf, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(buf, &cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	applyEnv(&cfg, os.LookupEnv)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) {
	for _, key := range []string{EnvDatabaseURL, EnvMongoURI} {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			cfg.DB.URL = strings.TrimSpace(v)
			cfg.DB.Driver = inferDriver(cfg.DB.URL)
			return
		}
	}
}

func inferDriver(url string) string {
	switch {
	case strings.HasPrefix(url, "mongodb"):
		return DriverMongo
	case strings.HasPrefix(url, "file:"), strings.HasSuffix(url, ".db"), url == ":memory:":
		return DriverSQLite
	default:
		return DriverMySQL
	}
}

func (c *Config) Validate() error {
	if c.Mode != ModeDev && c.Mode != ModeRelease {
		return fmt.Errorf("mode must be %q or %q, got %q", ModeDev, ModeRelease, c.Mode)
	}
	switch c.DB.Driver {
	case DriverMongo, DriverSQLite:
		if c.DB.URL == "" {
			return ErrNoConnectionString
		}
	case DriverMySQL:
		if c.DB.URL == "" && c.DB.Host == "" {
			return ErrNoConnectionString
		}
	default:
		return fmt.Errorf("unsupported database driver %q", c.DB.Driver)
	}
	if c.Hours.BreakMinutes < 0 {
		return errors.New("hours.break_minutes must be >= 0")
	}
	if c.Hours.WeeklyTarget <= 0 || c.Hours.MonthlyTarget <= 0 {
		return errors.New("hours targets must be > 0")
	}
	return nil
}
