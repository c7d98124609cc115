// Copyright (c) 2025 the hushboard authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"strconv"

	"hushboard/auth"
	"hushboard/models"
	"hushboard/store"
)

// sessionHeader carries the session token on authenticated requests.
const sessionHeader = "X-Session-Token"

// viewer resolves the request's session token to a user. A missing or
// invalid token yields (nil, nil): the caller decides whether the
// endpoint tolerates anonymous access.
func viewer(s *store.Store, r *http.Request) (*models.User, error) {
	token := r.Header.Get(sessionHeader)
	_, user, err := auth.ValidateSessionToken(s, token)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// pathID parses the {id} path segment as an int64.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
