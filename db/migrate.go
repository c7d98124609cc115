// Copyright (c) 2025 the hushboard authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"hushboard/apperr"
)

// markerTable records that the timestamp migration has committed. Its
// existence is the only externally observable completion signal.
const markerTable = "migration_timestamps_dropped"

// shadowedTable describes one table the migration rebuilds: the shadow
// schema carries the same columns minus timestamps, and the copy always
// names columns explicitly because old and new schemas differ.
type shadowedTable struct {
	name    string
	create  string
	columns string
}

// Ordered parent-before-child; drops happen in the reverse order so no
// live table is dropped while another still holds a foreign key into it.
var shadowedTables = []shadowedTable{
	{
		name: "users",
		create: `CREATE TABLE users_new (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			token TEXT UNIQUE NOT NULL,
			username TEXT UNIQUE NOT NULL
		)`,
		columns: "id, token, username",
	},
	{
		name: "posts",
		create: `CREATE TABLE posts_new (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id INTEGER NOT NULL,
			title TEXT NOT NULL,
			content TEXT,
			post_type TEXT NOT NULL,
			poll_config TEXT,
			sort_order INTEGER DEFAULT 0,
			FOREIGN KEY (user_id) REFERENCES users (id) ON DELETE CASCADE
		)`,
		columns: "id, user_id, title, content, post_type, poll_config, sort_order",
	},
	{
		name: "comments",
		create: `CREATE TABLE comments_new (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id INTEGER NOT NULL,
			post_id INTEGER NOT NULL,
			content TEXT NOT NULL,
			FOREIGN KEY (user_id) REFERENCES users (id) ON DELETE CASCADE,
			FOREIGN KEY (post_id) REFERENCES posts (id) ON DELETE CASCADE
		)`,
		columns: "id, user_id, post_id, content",
	},
	{
		name: "poll_responses",
		create: `CREATE TABLE poll_responses_new (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id INTEGER NOT NULL,
			post_id INTEGER NOT NULL,
			response_data TEXT NOT NULL,
			FOREIGN KEY (user_id) REFERENCES users (id) ON DELETE CASCADE,
			FOREIGN KEY (post_id) REFERENCES posts (id) ON DELETE CASCADE,
			UNIQUE (user_id, post_id)
		)`,
		columns: "id, user_id, post_id, response_data",
	},
	{
		name: "hearts",
		create: `CREATE TABLE hearts_new (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id INTEGER NOT NULL,
			target_type TEXT NOT NULL,
			target_id INTEGER NOT NULL,
			FOREIGN KEY (user_id) REFERENCES users (id) ON DELETE CASCADE,
			UNIQUE (user_id, target_type, target_id)
		)`,
		columns: "id, user_id, target_type, target_id",
	},
}

// DropTimestampColumns removes the timestamp columns from the five base
// tables by rebuilding each through a shadow table. It is idempotent (a
// marker table short-circuits re-runs) and must complete before the
// store serves any other traffic.
//
// The rebuild runs in two transactions: the first creates the shadow
// tables and copies every row with per-table row-count verification;
// the second drops the live tables child-before-parent and renames the
// shadows into place. Foreign-key enforcement is disabled around the
// second transaction because dropping users would otherwise trip the
// session table's reference.
func DropTimestampColumns(ctx context.Context, sqldb *sql.DB) error {
	// All statements must share one connection: the foreign_keys pragma
	// is per-connection and would not reach a pooled sibling.
	conn, err := sqldb.Conn(ctx)
	if err != nil {
		return fmt.Errorf("migration: failed to acquire connection: %w", err)
	}
	defer conn.Close()

	var marker string
	err = conn.QueryRowContext(ctx,
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, markerTable,
	).Scan(&marker)
	if err == nil {
		return nil // already migrated
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("migration: marker check failed: %w", err)
	}

	slog.Info("dropping timestamp columns from base tables")

	if err := copyIntoShadows(ctx, conn); err != nil {
		return err
	}

	// SQLite ignores this pragma inside a transaction, so it has to
	// bracket the swap transaction rather than live in it.
	if _, err := conn.ExecContext(ctx, `PRAGMA foreign_keys = OFF`); err != nil {
		return fmt.Errorf("migration: failed to disable foreign keys: %w", err)
	}

	swapErr := swapShadowsIntoPlace(ctx, conn)

	if _, err := conn.ExecContext(ctx, `PRAGMA foreign_keys = ON`); err != nil && swapErr == nil {
		return fmt.Errorf("migration: failed to re-enable foreign keys: %w", err)
	}
	if swapErr != nil {
		return swapErr
	}

	slog.Info("timestamp migration complete")
	return nil
}

// copyIntoShadows is transaction 1: create every shadow table, copy all
// rows column-by-column, and verify row counts before committing.
func copyIntoShadows(ctx context.Context, conn *sql.Conn) error {
	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("migration: failed to begin copy transaction: %w", err)
	}
	defer tx.Rollback()

	for _, t := range shadowedTables {
		if _, err := tx.ExecContext(ctx, t.create); err != nil {
			return fmt.Errorf("migration: failed to create %s_new: %w", t.name, err)
		}

		var before int
		if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM `+t.name).Scan(&before); err != nil {
			return fmt.Errorf("migration: failed to count %s: %w", t.name, err)
		}

		copyStmt := fmt.Sprintf("INSERT INTO %s_new (%s) SELECT %s FROM %s",
			t.name, t.columns, t.columns, t.name)
		if _, err := tx.ExecContext(ctx, copyStmt); err != nil {
			return fmt.Errorf("migration: failed to copy %s: %w", t.name, err)
		}

		var after int
		if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM `+t.name+`_new`).Scan(&after); err != nil {
			return fmt.Errorf("migration: failed to count %s_new: %w", t.name, err)
		}

		if before != after {
			return apperr.Integrity("migration: %s data copy failed: %d -> %d", t.name, before, after)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("migration: failed to commit copy transaction: %w", err)
	}
	return nil
}

// swapShadowsIntoPlace is transaction 2: drop the live tables
// child-before-parent, rename every shadow to its final name, verify
// foreign-key integrity, and plant the completion marker.
func swapShadowsIntoPlace(ctx context.Context, conn *sql.Conn) error {
	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("migration: failed to begin swap transaction: %w", err)
	}
	defer tx.Rollback()

	for i := len(shadowedTables) - 1; i >= 0; i-- {
		name := shadowedTables[i].name
		if _, err := tx.ExecContext(ctx, `DROP TABLE `+name); err != nil {
			return fmt.Errorf("migration: failed to drop %s: %w", name, err)
		}
	}

	for _, t := range shadowedTables {
		stmt := fmt.Sprintf("ALTER TABLE %s_new RENAME TO %s", t.name, t.name)
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration: failed to rename %s_new: %w", t.name, err)
		}
	}

	if err := checkForeignKeys(ctx, tx); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `CREATE TABLE `+markerTable+` (
		id INTEGER PRIMARY KEY,
		completed_at TEXT DEFAULT CURRENT_TIMESTAMP
	)`); err != nil {
		return fmt.Errorf("migration: failed to create marker table: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO `+markerTable+` (id) VALUES (1)`); err != nil {
		return fmt.Errorf("migration: failed to populate marker table: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("migration: failed to commit swap transaction: %w", err)
	}
	return nil
}

// checkForeignKeys runs PRAGMA foreign_key_check and turns any
// violation rows into a fatal Integrity error listing them.
func checkForeignKeys(ctx context.Context, tx *sql.Tx) error {
	rows, err := tx.QueryContext(ctx, `PRAGMA foreign_key_check`)
	if err != nil {
		return fmt.Errorf("migration: foreign key check failed to run: %w", err)
	}
	defer rows.Close()

	var violations []string
	for rows.Next() {
		var table, parent string
		var rowid, fkid sql.NullInt64
		if err := rows.Scan(&table, &rowid, &parent, &fkid); err != nil {
			return fmt.Errorf("migration: failed to scan foreign key violation: %w", err)
		}
		violations = append(violations,
			fmt.Sprintf("%s rowid=%d -> %s", table, rowid.Int64, parent))
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("migration: foreign key check failed: %w", err)
	}

	if len(violations) > 0 {
		return apperr.Integrity("migration: foreign key integrity check failed: %d violations (%s)",
			len(violations), strings.Join(violations, "; "))
	}
	return nil
}
