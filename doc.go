// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the SPART Awards voting API server.

The server is the backend for the SPART theatre awards night: voters pick one
nominee per category, an administrator opens and closes voting, watches the
leaderboard, and archives each round.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	ADMIN_SECRET=... DATABASE_URL=awards.db go run main.go

Or with flags:

	go run main.go -p 3318 -t postgres -d "postgres://..." -admin-secret ...

# Configuration

Required settings:

  - DATABASE_URL (-d): connection string (postgres) or file path (sqlite)
  - ADMIN_SECRET (--admin-secret): shared secret for the admin endpoints

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - CATALOG_PATH (--catalog): catalog YAML; embedded SPART catalog if unset

# Architecture

The server uses a handler-based architecture with dependency injection:

  - catalog: immutable award catalog (categories, ordered nominees)
  - store: voting status, vote ledger, round archives
  - tally: pure tally projection (counts, winners, voter histories)
  - handlers: HTTP request handlers (vote, admin, catalog)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, admin gate, JSON helpers
  - models: Request/response types
  - db: Schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
