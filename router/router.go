// Copyright (c) 2025 the hushboard authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"hushboard/cliparse"
	"hushboard/handlers"
	"hushboard/middleware"
	"hushboard/store"
)

func NewRouter(s *store.Store, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	identityHandler := handlers.NewIdentityHandler(s)
	postHandler := handlers.NewPostHandler(s)
	commentHandler := handlers.NewCommentHandler(s)
	responseHandler := handlers.NewResponseHandler(s)
	heartHandler := handlers.NewHeartHandler(s)
	adminHandler := handlers.NewAdminHandler(s, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Identity
	mux.HandleFunc("POST /auth/identity", middleware.WithLogging(identityHandler.CreateIdentity))
	mux.HandleFunc("POST /auth/verify", middleware.WithLogging(identityHandler.VerifyToken))
	mux.HandleFunc("POST /auth/logout", middleware.WithLogging(identityHandler.Logout))

	// Feed and posts
	mux.HandleFunc("GET /feed", middleware.WithLogging(postHandler.Feed))
	mux.HandleFunc("POST /posts", middleware.WithLogging(postHandler.CreatePost))
	mux.HandleFunc("PUT /posts/{id}", middleware.WithLogging(postHandler.UpdatePost))
	mux.HandleFunc("DELETE /posts/{id}", middleware.WithLogging(postHandler.DeletePost))

	// Comments
	mux.HandleFunc("POST /posts/{id}/comments", middleware.WithLogging(commentHandler.CreateComment))
	mux.HandleFunc("PUT /comments/{id}", middleware.WithLogging(commentHandler.UpdateComment))
	mux.HandleFunc("DELETE /comments/{id}", middleware.WithLogging(commentHandler.DeleteComment))

	// Poll responses and hearts
	mux.HandleFunc("POST /posts/{id}/response", middleware.WithLogging(responseHandler.SubmitResponse))
	mux.HandleFunc("POST /hearts", middleware.WithLogging(heartHandler.ToggleHeart))

	// Admin operations (X-Admin-Key)
	mux.HandleFunc("DELETE /admin/posts/{id}", middleware.WithLogging(adminHandler.DeletePost))
	mux.HandleFunc("DELETE /admin/comments/{id}", middleware.WithLogging(adminHandler.DeleteComment))
	mux.HandleFunc("POST /admin/posts/{id}/move-up", middleware.WithLogging(adminHandler.MoveUp))
	mux.HandleFunc("POST /admin/posts/{id}/move-down", middleware.WithLogging(adminHandler.MoveDown))
	mux.HandleFunc("POST /admin/posts/{id}/position", middleware.WithLogging(adminHandler.MoveToPosition))
	mux.HandleFunc("GET /admin/export", middleware.WithLogging(adminHandler.Export))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("hushboard API v1"))
	})

	return mux
}
