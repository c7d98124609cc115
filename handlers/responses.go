// Copyright (c) 2025 the hushboard authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"hushboard/middleware"
	"hushboard/models"
	"hushboard/poll"
	"hushboard/store"
)

type ResponseHandler struct {
	store *store.Store
}

func NewResponseHandler(s *store.Store) *ResponseHandler {
	return &ResponseHandler{store: s}
}

// SubmitResponse handles POST /posts/{id}/response
// First submission inserts; re-submission replaces the stored answer.
// The reply echoes the post's aggregates, gated the same way the feed
// gates them. The submitter has responded by definition, so only the
// disclosure floor can withhold them here.
func (h *ResponseHandler) SubmitResponse(w http.ResponseWriter, r *http.Request) {
	user, err := viewer(h.store, r)
	if err != nil {
		middleware.WriteError(w, err)
		return
	}
	if user == nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	postID, ok := pathID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid post id")
		return
	}

	var req models.SubmitResponseRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	isNew, err := h.store.SubmitResponse(user.ID, postID, req.ResponseData)
	if err != nil {
		middleware.WriteError(w, err)
		return
	}

	agg, err := h.store.PollAggregates(postID)
	if err != nil {
		middleware.WriteError(w, err)
		return
	}

	slog.Info("response submitted", "post_id", postID, "user_id", user.ID, "is_new", isNew)

	middleware.JSONResponse(w, http.StatusOK, models.SubmitResponseResponse{
		IsNewResponse: isNew,
		PollResults:   poll.Gate(agg, true, true),
	})
}
