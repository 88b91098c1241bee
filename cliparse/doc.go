// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: Connection string or sqlite file path (required)
  - DatabaseType: "sqlite" (default) or "postgres"
  - AdminSecret: Shared secret for admin endpoints (required)
  - CatalogPath: Catalog YAML path (optional; embedded default if unset)

# CLI Flags

	-p             Server port
	-d             Database URL
	-t             Database type
	-admin-secret  Admin secret
	-catalog       Catalog YAML path

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	ADMIN_SECRET  → -admin-secret
	CATALOG_PATH  → -catalog

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if DATABASE_URL or ADMIN_SECRET is missing, or
if DATABASE_TYPE is neither sqlite nor postgres.
*/
package cliparse
