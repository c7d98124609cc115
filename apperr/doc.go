// Copyright (c) 2025 the hushboard authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package apperr defines the error kinds the core signals to callers.

# Kinds

  - ErrNotFound: a referenced post, comment, user, or session is missing
  - ErrUnauthorized: an actor tried to mutate a resource it does not own
  - ErrValidation: malformed input (bad poll config, wrong post type,
    username collision)
  - ErrIntegrity: stored data contradicts itself (migration row-count
    mismatch, foreign-key violation, poll_config tag not matching
    post_type)

Callers classify with errors.Is:

	if errors.Is(err, apperr.ErrNotFound) { ... }

The first three kinds are recoverable per request. Integrity errors are
fatal: they abort startup or the enclosing transaction, and a handler
that sees one must not pretend the request half-succeeded.

The HTTP layer maps kinds to status codes (404, 403, 400, 500); the core
never deals in status codes itself.
*/
package apperr
