// Copyright (c) 2025 the hushboard authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3000)
  - DatabasePath: SQLite database file path (default: platform.db)
  - AdminKey: Shared secret for the admin endpoints (required)

# CLI Flags

	-p          Server port
	-d          SQLite database path
	--admin-key Admin API key

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_PATH → -d
	ADMIN_KEY     → --admin-key

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if required values are missing:

  - ADMIN_KEY must be provided

# Example

	// In main.go
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	database, err := db.Open(cfg.DatabasePath)
	// ...
	mux := router.NewRouter(database, cfg)
*/
package cliparse
