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

type PostHandler struct {
	store *store.Store
}

func NewPostHandler(s *store.Store) *PostHandler {
	return &PostHandler{store: s}
}

// Feed handles GET /feed
// Anonymous access is allowed; poll results are withheld for it.
func (h *PostHandler) Feed(w http.ResponseWriter, r *http.Request) {
	user, err := viewer(h.store, r)
	if err != nil {
		middleware.WriteError(w, err)
		return
	}

	var viewerID *int64
	if user != nil {
		viewerID = &user.ID
	}

	posts, err := h.store.Feed(viewerID)
	if err != nil {
		middleware.WriteError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.FeedResponse{Posts: posts})
}

// CreatePost handles POST /posts
func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	user, err := viewer(h.store, r)
	if err != nil {
		middleware.WriteError(w, err)
		return
	}
	if user == nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req models.CreatePostRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Title == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "title is required")
		return
	}
	if err := models.ValidateConfigForPost(req.PostType, req.PollConfig); err != nil {
		middleware.WriteError(w, err)
		return
	}

	post, err := h.store.CreatePost(user.ID, req.Title, req.Content, req.PostType, req.PollConfig)
	if err != nil {
		middleware.WriteError(w, err)
		return
	}

	slog.Info("post created", "post_id", post.ID, "user_id", user.ID, "post_type", post.PostType)

	middleware.JSONResponse(w, http.StatusCreated, post)
}

// UpdatePost handles PUT /posts/{id}
func (h *PostHandler) UpdatePost(w http.ResponseWriter, r *http.Request) {
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
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid post id")
		return
	}

	var req models.CreatePostRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Title == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "title is required")
		return
	}
	if err := models.ValidateConfigForPost(req.PostType, req.PollConfig); err != nil {
		middleware.WriteError(w, err)
		return
	}

	post, err := h.store.UpdatePost(id, user.ID, req.Title, req.Content, req.PostType, req.PollConfig)
	if err != nil {
		middleware.WriteError(w, err)
		return
	}

	slog.Info("post updated", "post_id", post.ID, "user_id", user.ID)

	middleware.JSONResponse(w, http.StatusOK, post)
}

// DeletePost handles DELETE /posts/{id}
func (h *PostHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
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
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid post id")
		return
	}

	if err := h.store.DeletePost(id, user.ID); err != nil {
		middleware.WriteError(w, err)
		return
	}

	slog.Info("post deleted", "post_id", id, "user_id", user.ID)

	middleware.JSONResponse(w, http.StatusOK, map[string]bool{"success": true})
}
