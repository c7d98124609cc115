// Copyright (c) 2025 the hushboard authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"hushboard/middleware"
	"hushboard/models"
	"hushboard/store"
)

type HeartHandler struct {
	store *store.Store
}

func NewHeartHandler(s *store.Store) *HeartHandler {
	return &HeartHandler{store: s}
}

// ToggleHeart handles POST /hearts
// Adds the viewer's heart to the target, or removes it if present.
func (h *HeartHandler) ToggleHeart(w http.ResponseWriter, r *http.Request) {
	user, err := viewer(h.store, r)
	if err != nil {
		middleware.WriteError(w, err)
		return
	}
	if user == nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req models.ToggleHeartRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	hearted, err := h.store.ToggleHeart(user.ID, req.TargetType, req.TargetID)
	if err != nil {
		middleware.WriteError(w, err)
		return
	}

	slog.Info("heart toggled",
		"user_id", user.ID,
		"target_type", req.TargetType,
		"target_id", req.TargetID,
		"hearted", hearted,
	)

	middleware.JSONResponse(w, http.StatusOK, models.ToggleHeartResponse{Hearted: hearted})
}
