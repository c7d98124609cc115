// Copyright (c) 2025 the hushboard authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"hushboard/models"
	"hushboard/testutil"
)

func TestCreateCommentHandler(t *testing.T) {
	s := testutil.SetupTestStore(t)
	handler := NewCommentHandler(s)
	author, _ := testutil.CreateTestUser(t, s, "author")
	_, sessionToken := testutil.CreateTestUser(t, s, "commenter")
	post := testutil.CreateTestPost(t, s, author.ID, "discuss")

	idStr := strconv.FormatInt(post.ID, 10)

	tests := []struct {
		name           string
		postID         string
		body           interface{}
		sessionToken   string
		expectedStatus int
	}{
		{"valid comment", idStr, models.CreateCommentRequest{Content: "great point"}, sessionToken, http.StatusCreated},
		{"blank content", idStr, models.CreateCommentRequest{Content: "   "}, sessionToken, http.StatusBadRequest},
		{"unauthenticated", idStr, models.CreateCommentRequest{Content: "hi"}, "", http.StatusUnauthorized},
		{"unknown post", "9999", models.CreateCommentRequest{Content: "hi"}, sessionToken, http.StatusNotFound},
		{"bad post id", "abc", models.CreateCommentRequest{Content: "hi"}, sessionToken, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			headers := map[string]string{}
			if tt.sessionToken != "" {
				headers["X-Session-Token"] = tt.sessionToken
			}
			req := testutil.MakeRequest("POST", "/posts/"+tt.postID+"/comments", tt.body, headers)
			req.SetPathValue("id", tt.postID)
			w := httptest.NewRecorder()
			handler.CreateComment(w, req)
			testutil.AssertStatus(t, w, tt.expectedStatus)
		})
	}
}

func TestCommentOwnershipHandlers(t *testing.T) {
	s := testutil.SetupTestStore(t)
	handler := NewCommentHandler(s)
	author, authorSession := testutil.CreateTestUser(t, s, "author")
	_, strangerSession := testutil.CreateTestUser(t, s, "stranger")
	post := testutil.CreateTestPost(t, s, author.ID, "post")
	comment := testutil.AddTestComment(t, s, author.ID, post.ID, "my words")

	idStr := strconv.FormatInt(comment.ID, 10)

	t.Run("stranger cannot edit", func(t *testing.T) {
		req := testutil.MakeRequest("PUT", "/comments/"+idStr,
			models.CreateCommentRequest{Content: "hijacked"},
			map[string]string{"X-Session-Token": strangerSession})
		req.SetPathValue("id", idStr)
		w := httptest.NewRecorder()
		handler.UpdateComment(w, req)
		testutil.AssertStatus(t, w, http.StatusForbidden)
	})

	t.Run("author can edit", func(t *testing.T) {
		req := testutil.MakeRequest("PUT", "/comments/"+idStr,
			models.CreateCommentRequest{Content: "revised words"},
			map[string]string{"X-Session-Token": authorSession})
		req.SetPathValue("id", idStr)
		w := httptest.NewRecorder()
		handler.UpdateComment(w, req)
		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.Comment
		testutil.AssertJSON(t, w, &resp)
		if resp.Content != "revised words" {
			t.Errorf("content = %q, want revised words", resp.Content)
		}
	})

	t.Run("author can delete", func(t *testing.T) {
		req := testutil.MakeRequest("DELETE", "/comments/"+idStr, nil,
			map[string]string{"X-Session-Token": authorSession})
		req.SetPathValue("id", idStr)
		w := httptest.NewRecorder()
		handler.DeleteComment(w, req)
		testutil.AssertStatus(t, w, http.StatusOK)

		comments, err := s.CommentsForPost(post.ID)
		if err != nil {
			t.Fatalf("CommentsForPost() error = %v", err)
		}
		if len(comments) != 0 {
			t.Error("comment survived deletion")
		}
	})
}
