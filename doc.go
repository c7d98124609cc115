// Copyright (c) 2025 the hushboard authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Hushboard API server.

Hushboard is an anonymous community board: token-based identities post
text updates and polls, comment, heart each other's content, and answer
radio or scale polls whose aggregate results are only disclosed once
enough people have responded.

# Starting the Server

The server requires an admin key via environment variable or CLI flag:

	ADMIN_KEY=secret go run .

Or with flags:

	go run . -p 3000 -d platform.db --admin-key secret

A .env file in the working directory is loaded if present.

# Configuration

Required settings:

  - ADMIN_KEY (--admin-key): Shared secret for the admin endpoints

Optional settings:

  - PORT (-p): Server port (default: 3000)
  - DATABASE_PATH (-d): SQLite file path (default: platform.db)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (identity, posts, comments, polls, admin)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers, error mapping
  - models: Domain, request, and response types
  - auth: Token generation and session validation
  - store: All SQL access, one transaction per mutation
  - poll: Response aggregation and the disclosure gate
  - db: Schema creation and the timestamp removal migration
  - cliparse: Configuration parsing

On startup the server creates the schema if missing and then runs a
one-time migration that rebuilds every content table without its
timestamp columns, so the database itself cannot order users' activity
in time.

See package documentation for each component.
*/
package main
