// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Predio Track API server.

Predio Track records the status of land parcels ("predios") across
geographic sections. Every status write updates the parcel's current row
and appends an immutable change-log entry, and section-level statistics
fall back to the change log when a parcel row carries no section of its own.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=predios.db API_KEY=... go run main.go

Or with flags:

	go run main.go -p 3318 -d predios.db -api-key ...

# Configuration

Required settings:

  - DATABASE_URL (-d): database location (sqlite file or postgres URL)
  - API_KEY (-api-key): shared secret required on every request

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)

A .env file in the working directory is loaded automatically.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (predios, sessions, stats)
  - store: ParcelStore, change log, section resolver, aggregation
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - auth: Shared-secret request check
  - db: Schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
