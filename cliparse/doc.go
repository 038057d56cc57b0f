// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: sqlite file path or PostgreSQL connection string (required)
  - DatabaseType: "sqlite" or "postgres" (default: sqlite)
  - APIKey: Shared secret checked on every request (required)

# CLI Flags

	-p        Server port
	-d        Database URL
	-t        Database type
	-api-key  Shared API key

# Environment Variables

The environment is parsed first (via caarlos0/env struct tags), then CLI
flags override whatever the environment provided:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	API_KEY       → -api-key

# Validation

ParseFlags returns an error if required values are missing:

  - DATABASE_URL must be provided
  - API_KEY must be provided
  - DATABASE_TYPE must be sqlite or postgres
*/
package cliparse
