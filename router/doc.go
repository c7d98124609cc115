// Copyright (c) 2025 the hushboard authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Hushboard API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(st, cfg)

# Endpoints

Health:

	GET /health

Identity:

	POST /auth/identity - Create anonymous identity
	POST /auth/verify   - Log an identity token in
	POST /auth/logout   - Invalidate the session

Feed and content (X-Session-Token, feed readable anonymously):

	GET    /feed                - Feed with comments, hearts, results
	POST   /posts               - Create post
	PUT    /posts/{id}          - Update own post
	DELETE /posts/{id}          - Delete own post
	POST   /posts/{id}/comments - Comment on a post
	PUT    /comments/{id}       - Update own comment
	DELETE /comments/{id}       - Delete own comment
	POST   /posts/{id}/response - Submit or replace poll response
	POST   /hearts              - Toggle a heart

Admin (requires X-Admin-Key):

	DELETE /admin/posts/{id}          - Remove any post
	DELETE /admin/comments/{id}       - Remove any comment
	POST   /admin/posts/{id}/move-up  - Swap with predecessor
	POST   /admin/posts/{id}/move-down - Swap with successor
	POST   /admin/posts/{id}/position - Renumber to a position
	GET    /admin/export              - Poll summaries

# Handler Initialization

The router creates handler instances with dependency injection:

	identityHandler := handlers.NewIdentityHandler(s)
	postHandler := handlers.NewPostHandler(s)
	adminHandler := handlers.NewAdminHandler(s, cfg)

All handlers receive the store; the admin handler also receives the
configuration for key checks.
*/
package router
