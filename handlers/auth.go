// Copyright (c) 2025 the hushboard authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"hushboard/apperr"
	"hushboard/auth"
	"hushboard/middleware"
	"hushboard/models"
	"hushboard/store"
)

type IdentityHandler struct {
	store *store.Store
}

func NewIdentityHandler(s *store.Store) *IdentityHandler {
	return &IdentityHandler{store: s}
}

// CreateIdentity handles POST /auth/identity
// Mints a fresh anonymous identity and logs it in.
func (h *IdentityHandler) CreateIdentity(w http.ResponseWriter, r *http.Request) {
	var req models.CreateIdentityRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := auth.ValidateUsername(req.Username); err != nil {
		middleware.WriteError(w, err)
		return
	}

	token, err := auth.GenerateIdentityToken()
	if err != nil {
		slog.Error("failed to generate identity token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create identity")
		return
	}

	user, err := h.store.CreateUser(token, req.Username)
	if err != nil {
		middleware.WriteError(w, err)
		return
	}

	sessionToken, err := auth.CreateSession(h.store, user.ID)
	if err != nil {
		slog.Error("failed to create session", "error", err, "user_id", user.ID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	slog.Info("identity created", "user_id", user.ID, "username", user.Username)

	middleware.JSONResponse(w, http.StatusCreated, models.IdentityResponse{
		Token:        token,
		SessionToken: sessionToken,
		Username:     user.Username,
		UserID:       user.ID,
	})
}

// VerifyToken handles POST /auth/verify
// Logs an existing identity token in, issuing a fresh session.
func (h *IdentityHandler) VerifyToken(w http.ResponseWriter, r *http.Request) {
	var req models.VerifyTokenRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Token == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "token is required")
		return
	}

	user, err := h.store.FindUserByToken(req.Token)
	if errors.Is(err, apperr.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid token")
		return
	}
	if err != nil {
		middleware.WriteError(w, err)
		return
	}

	sessionToken, err := auth.CreateSession(h.store, user.ID)
	if err != nil {
		slog.Error("failed to create session", "error", err, "user_id", user.ID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	slog.Info("identity verified", "user_id", user.ID)

	middleware.JSONResponse(w, http.StatusOK, models.IdentityResponse{
		Token:        req.Token,
		SessionToken: sessionToken,
		Username:     user.Username,
		UserID:       user.ID,
	})
}

// Logout handles POST /auth/logout
func (h *IdentityHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token := r.Header.Get(sessionHeader)
	if err := auth.InvalidateSessionToken(h.store, token); err != nil {
		middleware.WriteError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, map[string]bool{"success": true})
}
