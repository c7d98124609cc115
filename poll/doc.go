// Copyright (c) 2025 the hushboard authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package poll computes poll aggregates and enforces the disclosure gate.

# Aggregation

ComputeRadio and ComputeScale are pure functions over a poll's config
and its raw responses. They never touch the store, have no side
effects, and are safe to call concurrently.

Radio polls tally one counter per declared option. The two reserved
sentinels (prefer_not_to_say, not_applicable) land in separate
counters; any other unrecognized value is silently ignored - it counts
toward totalResponses but toward nothing else.

Scale polls average the numeric values, report observed min/max
alongside the configured bounds, and build one distribution bucket per
integer value in [min, max].

Percentages are computed over valid responses (recognized options, or
numeric values) and rounded half-up.

# Privacy Gate

Aggregates are disclosed only once a poll has at least
MinResponsesForDisclosure responses, and an authenticated viewer must
additionally have submitted their own response first. Export reporting
bypasses the participation rule but never the floor: ExportRadio and
ExportScale emit zeroed placeholder rows for under-threshold polls so
downstream column layouts never depend on visibility.
*/
package poll
