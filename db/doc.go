// Copyright (c) 2025 the hushboard authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles opening the SQLite store, schema creation, and the
one-time timestamp-column migration.

# Opening

Open configures the connection through DSN pragmas so every pooled
connection gets WAL journaling and foreign-key enforcement:

	conn, err := db.Open("platform.db")

# Schema Creation

CreateSchema initializes all required tables and indexes. Safe to call
multiple times - uses IF NOT EXISTS everywhere.

# Tables

  - users: anonymous identities (token + username, both unique)
  - posts: text posts and polls, ordered by sort_order
  - comments: per-post comments
  - poll_responses: one response per (user, post), upserted in place
  - hearts: one heart per (user, target_type, target_id)
  - session: login sessions (id is a hash of the session token)

All foreign keys use ON DELETE CASCADE except session.user_id.

# Migration

DropTimestampColumns rebuilds the five base tables without their
timestamp columns. It must run after CreateSchema and before anything
else touches the store; a failure is fatal to startup. See migrate.go
for the two-transaction structure.
*/
package db
