// Copyright (c) 2025 the hushboard authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the domain types shared across the server.

# Entities

  - User: anonymous identity; the token is the sole authentication
    secret and never appears in JSON output
  - Post: text post or poll (radio/scale); polls carry a PollConfig
  - Comment, PollResponse, Heart, Session

# Poll configuration

PollConfig is a tagged union discriminated by its Type field. The tag
must match the owning post's post_type; every read re-validates this
and a mismatch is a data-integrity error, not a request error.

# Responses

ResponseData is deliberately lenient: fields of the wrong JSON type are
dropped rather than rejected, because aggregation is specified to
ignore unrecognized values instead of failing on them.

# Aggregates

RadioAggregates and ScaleAggregates are the computed summaries the
aggregation engine produces and the privacy gate guards. Both satisfy
PollAggregates.
*/
package models
