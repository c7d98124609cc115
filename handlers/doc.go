// Copyright (c) 2025 the hushboard authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Hushboard API.

# Handler Types

Each handler is a struct with store and config dependencies:

  - IdentityHandler: Anonymous identity creation, login, and logout
  - PostHandler: Feed retrieval and post CRUD
  - CommentHandler: Comment CRUD under posts
  - ResponseHandler: Poll response submission
  - HeartHandler: Heart toggling on posts and comments
  - AdminHandler: Moderation, curation, and export

Handlers are created via constructor functions that accept *store.Store
(and Config where admin access is involved):

	postHandler := handlers.NewPostHandler(st)

# Identity Flow

Identity is a bearer token, not an account:

	POST /auth/identity → CreateIdentity (returns token + sessionToken)
	POST /auth/verify   → VerifyToken (logs an existing token in)
	POST /auth/logout   → Logout

Authenticated operations require the X-Session-Token header. The feed
is readable without one, with poll results withheld.

# Content Flow

	GET  /feed                  → Feed (posts, comments, hearts, gated results)
	POST /posts                 → CreatePost
	PUT  /posts/{id}            → UpdatePost (owner only)
	DELETE /posts/{id}          → DeletePost (owner only)
	POST /posts/{id}/comments   → CreateComment
	PUT  /comments/{id}         → UpdateComment (author only)
	DELETE /comments/{id}       → DeleteComment (author only)
	POST /posts/{id}/response   → SubmitResponse (upsert, echoes results)
	POST /hearts                → ToggleHeart

# Admin Surface

Admin operations require the X-Admin-Key header matching the
configured key:

	DELETE /admin/posts/{id}            → DeletePost
	DELETE /admin/comments/{id}         → DeleteComment
	POST /admin/posts/{id}/move-up      → MoveUp
	POST /admin/posts/{id}/move-down    → MoveDown
	POST /admin/posts/{id}/position     → MoveToPosition
	GET  /admin/export                  → Export (uncensored above the floor)
*/
package handlers
