// Copyright (c) 2025 the hushboard authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store owns all reads and writes against the relational store.

A Store is constructed once in main over an opened *sql.DB and injected
into the handlers; there is no package-level handle. Every read queries
current state - nothing mutable is cached across calls.

# Write semantics

Each logical mutation is a single transaction. The idempotent writes
(poll-response upsert, heart toggle) do a preliminary existence check
only to report insert-vs-update; the unique index and its ON CONFLICT
clause are what actually prevent duplicate rows under concurrent
identical requests.

# Feed assembly

Feed builds the consumer view: posts in sort_order with their comments,
heart counts, the viewer's poll responses, and privacy-gated poll
aggregates. Heart counts are tallied with one fixed GROUP BY query per
target type, so the query count is bounded regardless of feed size.
*/
package store
