package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	AdminSecret  string
	CatalogPath  string
	FrontendURL  string
}

// ParseFlags validates flags and sets port number
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("spart-awards", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL (connection string or sqlite file path)")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.CatalogPath, "catalog", "", "Catalog YAML path (embedded default if unset)")
	fs.StringVar(&cfg.FrontendURL, "frontend", "", "Frontend origin allowed for credentialed CORS")

	// Secret (prefer env variable, but allow CLI for dev)
	fs.StringVar(&cfg.AdminSecret, "admin-secret", "", "Admin secret (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3318 // default
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, errors.New("database type must be sqlite or postgres")
	}

	if cfg.CatalogPath == "" {
		cfg.CatalogPath = os.Getenv("CATALOG_PATH")
	}

	if cfg.FrontendURL == "" {
		cfg.FrontendURL = os.Getenv("FRONTEND_URL")
	}

	// Secret - MUST be provided
	if cfg.AdminSecret == "" {
		cfg.AdminSecret = os.Getenv("ADMIN_SECRET")
	}
	if cfg.AdminSecret == "" {
		return Config{}, errors.New("ADMIN_SECRET required")
	}

	return cfg, nil
}

// DriverName maps the configured database type to its database/sql driver.
func (c Config) DriverName() string {
	if c.DatabaseType == "postgres" {
		return "postgres"
	}
	return "sqlite"
}
