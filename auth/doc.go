// Copyright (c) 2025 the hushboard authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth generates the platform's secrets and manages sessions.

# Identity tokens

An identity token is the one and only authentication secret of an
anonymous user: 20 random bytes, base64url-encoded (~27 characters).
Possession of the token is identity - there are no passwords.

# Session tokens

Logging in (creating or verifying an identity) issues a session token:
20 random bytes, lowercase base32. Only a SHA-256 hash of it is stored
as the session id, so a leaked database cannot be replayed into live
sessions. Sessions last 30 days and are deleted lazily when an expired
one is presented.

Username rules live here too: 2-30 characters of [A-Za-z0-9_-].
*/
package auth
