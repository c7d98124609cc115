// Copyright (c) 2025 the hushboard authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"hushboard/cliparse"
	"hushboard/middleware"
	"hushboard/models"
	"hushboard/store"
)

type AdminHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewAdminHandler(s *store.Store, cfg cliparse.Config) *AdminHandler {
	return &AdminHandler{store: s, cfg: cfg}
}

// authorized checks the X-Admin-Key header against the configured key.
func (h *AdminHandler) authorized(w http.ResponseWriter, r *http.Request) bool {
	key := r.Header.Get("X-Admin-Key")
	if key == "" || subtle.ConstantTimeCompare([]byte(key), []byte(h.cfg.AdminKey)) != 1 {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin key")
		return false
	}
	return true
}

// DeletePost handles DELETE /admin/posts/{id}
func (h *AdminHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	if !h.authorized(w, r) {
		return
	}

	id, ok := pathID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid post id")
		return
	}

	if err := h.store.AdminDeletePost(id); err != nil {
		middleware.WriteError(w, err)
		return
	}

	slog.Info("post deleted by admin", "post_id", id)

	middleware.JSONResponse(w, http.StatusOK, map[string]bool{"success": true})
}

// DeleteComment handles DELETE /admin/comments/{id}
func (h *AdminHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	if !h.authorized(w, r) {
		return
	}

	id, ok := pathID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid comment id")
		return
	}

	if err := h.store.AdminDeleteComment(id); err != nil {
		middleware.WriteError(w, err)
		return
	}

	slog.Info("comment deleted by admin", "comment_id", id)

	middleware.JSONResponse(w, http.StatusOK, map[string]bool{"success": true})
}

// MoveUp handles POST /admin/posts/{id}/move-up
// Swaps the post with its predecessor in feed order. Already at the
// top is not an error; the response says nothing moved.
func (h *AdminHandler) MoveUp(w http.ResponseWriter, r *http.Request) {
	if !h.authorized(w, r) {
		return
	}

	id, ok := pathID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid post id")
		return
	}

	moved, err := h.store.MovePostUp(id)
	if err != nil {
		middleware.WriteError(w, err)
		return
	}

	resp := models.MovePostResponse{Moved: moved}
	if !moved {
		resp.Message = "post is already first"
	}
	middleware.JSONResponse(w, http.StatusOK, resp)
}

// MoveDown handles POST /admin/posts/{id}/move-down
func (h *AdminHandler) MoveDown(w http.ResponseWriter, r *http.Request) {
	if !h.authorized(w, r) {
		return
	}

	id, ok := pathID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid post id")
		return
	}

	moved, err := h.store.MovePostDown(id)
	if err != nil {
		middleware.WriteError(w, err)
		return
	}

	resp := models.MovePostResponse{Moved: moved}
	if !moved {
		resp.Message = "post is already last"
	}
	middleware.JSONResponse(w, http.StatusOK, resp)
}

// MoveToPosition handles POST /admin/posts/{id}/position
// Renumbers the whole feed so the post lands at the 1-based position.
func (h *AdminHandler) MoveToPosition(w http.ResponseWriter, r *http.Request) {
	if !h.authorized(w, r) {
		return
	}

	id, ok := pathID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid post id")
		return
	}

	var req models.MovePostRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Position < 1 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "position must be at least 1")
		return
	}

	if err := h.store.MovePostToPosition(id, req.Position); err != nil {
		middleware.WriteError(w, err)
		return
	}

	slog.Info("post repositioned", "post_id", id, "position", req.Position)

	middleware.JSONResponse(w, http.StatusOK, models.MovePostResponse{Moved: true})
}

// Export handles GET /admin/export
// Returns per-poll summaries. Polls below the disclosure floor come
// back zeroed and marked censored rather than omitted, so the export
// shape is stable.
func (h *AdminHandler) Export(w http.ResponseWriter, r *http.Request) {
	if !h.authorized(w, r) {
		return
	}

	summaries, err := h.store.ExportSummaries()
	if err != nil {
		middleware.WriteError(w, err)
		return
	}

	slog.Info("export generated",
		"radio_polls", len(summaries.RadioPolls),
		"scale_polls", len(summaries.ScalePolls),
	)

	middleware.JSONResponse(w, http.StatusOK, summaries)
}
