// Copyright (c) 2025 the hushboard authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"hushboard/middleware"
	"hushboard/models"
	"hushboard/store"
)

type CommentHandler struct {
	store *store.Store
}

func NewCommentHandler(s *store.Store) *CommentHandler {
	return &CommentHandler{store: s}
}

// CreateComment handles POST /posts/{id}/comments
func (h *CommentHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
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

	var req models.CreateCommentRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if strings.TrimSpace(req.Content) == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "content is required")
		return
	}

	comment, err := h.store.CreateComment(user.ID, postID, req.Content)
	if err != nil {
		middleware.WriteError(w, err)
		return
	}

	slog.Info("comment created", "comment_id", comment.ID, "post_id", postID, "user_id", user.ID)

	middleware.JSONResponse(w, http.StatusCreated, comment)
}

// UpdateComment handles PUT /comments/{id}
func (h *CommentHandler) UpdateComment(w http.ResponseWriter, r *http.Request) {
	user, err := viewer(h.store, r)
	if err != nil {
		middleware.WriteError(w, err)
		return
	}
	if user == nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	id, ok := pathID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid comment id")
		return
	}

	var req models.CreateCommentRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if strings.TrimSpace(req.Content) == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "content is required")
		return
	}

	comment, err := h.store.UpdateComment(id, user.ID, req.Content)
	if err != nil {
		middleware.WriteError(w, err)
		return
	}

	slog.Info("comment updated", "comment_id", comment.ID, "user_id", user.ID)

	middleware.JSONResponse(w, http.StatusOK, comment)
}

// DeleteComment handles DELETE /comments/{id}
func (h *CommentHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	user, err := viewer(h.store, r)
	if err != nil {
		middleware.WriteError(w, err)
		return
	}
	if user == nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	id, ok := pathID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid comment id")
		return
	}

	if err := h.store.DeleteComment(id, user.ID); err != nil {
		middleware.WriteError(w, err)
		return
	}

	slog.Info("comment deleted", "comment_id", id, "user_id", user.ID)

	middleware.JSONResponse(w, http.StatusOK, map[string]bool{"success": true})
}
