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

func TestAdminAuthorization(t *testing.T) {
	s := testutil.SetupTestStore(t)
	cfg := testutil.GetTestConfig()
	handler := NewAdminHandler(s, cfg)
	user, _ := testutil.CreateTestUser(t, s, "author")
	post := testutil.CreateTestPost(t, s, user.ID, "target")

	idStr := strconv.FormatInt(post.ID, 10)

	tests := []struct {
		name           string
		key            string
		expectedStatus int
	}{
		{"missing key", "", http.StatusUnauthorized},
		{"wrong key", "wrong-key", http.StatusUnauthorized},
		{"correct key", cfg.AdminKey, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			headers := map[string]string{}
			if tt.key != "" {
				headers["X-Admin-Key"] = tt.key
			}
			req := testutil.MakeRequest("DELETE", "/admin/posts/"+idStr, nil, headers)
			req.SetPathValue("id", idStr)
			w := httptest.NewRecorder()
			handler.DeletePost(w, req)
			testutil.AssertStatus(t, w, tt.expectedStatus)
		})
	}
}

func TestAdminDeleteComment(t *testing.T) {
	s := testutil.SetupTestStore(t)
	cfg := testutil.GetTestConfig()
	handler := NewAdminHandler(s, cfg)
	user, _ := testutil.CreateTestUser(t, s, "author")
	post := testutil.CreateTestPost(t, s, user.ID, "post")
	comment := testutil.AddTestComment(t, s, user.ID, post.ID, "removable")

	idStr := strconv.FormatInt(comment.ID, 10)
	req := testutil.MakeRequest("DELETE", "/admin/comments/"+idStr, nil, map[string]string{
		"X-Admin-Key": cfg.AdminKey,
	})
	req.SetPathValue("id", idStr)
	w := httptest.NewRecorder()
	handler.DeleteComment(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	comments, err := s.CommentsForPost(post.ID)
	if err != nil {
		t.Fatalf("CommentsForPost() error = %v", err)
	}
	if len(comments) != 0 {
		t.Error("comment survived admin deletion")
	}
}

func TestAdminMovePost(t *testing.T) {
	s := testutil.SetupTestStore(t)
	cfg := testutil.GetTestConfig()
	handler := NewAdminHandler(s, cfg)
	user, _ := testutil.CreateTestUser(t, s, "curator")
	first := testutil.CreateTestPost(t, s, user.ID, "first")
	second := testutil.CreateTestPost(t, s, user.ID, "second")

	adminHeaders := map[string]string{"X-Admin-Key": cfg.AdminKey}

	moveReq := func(action string, postID int64, body interface{}) *httptest.ResponseRecorder {
		idStr := strconv.FormatInt(postID, 10)
		req := testutil.MakeRequest("POST", "/admin/posts/"+idStr+"/"+action, body, adminHeaders)
		req.SetPathValue("id", idStr)
		w := httptest.NewRecorder()
		switch action {
		case "move-up":
			handler.MoveUp(w, req)
		case "move-down":
			handler.MoveDown(w, req)
		case "position":
			handler.MoveToPosition(w, req)
		}
		return w
	}

	t.Run("move up swaps order", func(t *testing.T) {
		w := moveReq("move-up", second.ID, nil)
		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.MovePostResponse
		testutil.AssertJSON(t, w, &resp)
		if !resp.Moved {
			t.Error("expected the post to move")
		}
	})

	t.Run("moving the first post up is a no-op", func(t *testing.T) {
		w := moveReq("move-up", second.ID, nil) // second is now first
		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.MovePostResponse
		testutil.AssertJSON(t, w, &resp)
		if resp.Moved {
			t.Error("first post should not move")
		}
		if resp.Message == "" {
			t.Error("no-op move should explain itself")
		}
	})

	t.Run("move to position", func(t *testing.T) {
		w := moveReq("position", second.ID, models.MovePostRequest{Position: 2})
		testutil.AssertStatus(t, w, http.StatusOK)
	})

	t.Run("position below one is rejected", func(t *testing.T) {
		w := moveReq("position", first.ID, models.MovePostRequest{Position: 0})
		testutil.AssertStatus(t, w, http.StatusBadRequest)
	})
}

func TestAdminExport(t *testing.T) {
	s := testutil.SetupTestStore(t)
	cfg := testutil.GetTestConfig()
	handler := NewAdminHandler(s, cfg)
	author, _ := testutil.CreateTestUser(t, s, "author")

	// One poll above the floor, one below
	popular := testutil.CreateTestRadioPoll(t, s, author.ID, "popular", "a", "b")
	for _, name := range []string{"u1", "u2", "u3", "u4", "u5"} {
		u, _ := testutil.CreateTestUser(t, s, name)
		testutil.SubmitTestResponse(t, s, u.ID, popular.ID, models.ResponseData{SelectedOption: "a"})
	}

	quiet := testutil.CreateTestScalePoll(t, s, author.ID, "quiet", 1, 5)
	testutil.SubmitTestResponse(t, s, author.ID, quiet.ID, models.ResponseData{ScaleValue: floatPtr(3)})

	req := testutil.MakeRequest("GET", "/admin/export", nil, map[string]string{
		"X-Admin-Key": cfg.AdminKey,
	})
	w := httptest.NewRecorder()
	handler.Export(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.ExportResponse
	testutil.AssertJSON(t, w, &resp)

	if len(resp.RadioPolls) != 1 || len(resp.ScalePolls) != 1 {
		t.Fatalf("export = %d radio, %d scale, want 1 and 1", len(resp.RadioPolls), len(resp.ScalePolls))
	}

	radio := resp.RadioPolls[0]
	if radio.Censored {
		t.Error("poll above the floor should not be censored")
	}
	if radio.ResponseCount != 5 || radio.Options[0].Count != 5 {
		t.Errorf("radio export = %+v", radio)
	}

	scale := resp.ScalePolls[0]
	if !scale.Censored {
		t.Error("poll below the floor must be censored")
	}
	if scale.ResponseCount != 0 {
		t.Errorf("censored export leaked a response count: %d", scale.ResponseCount)
	}
	for _, c := range scale.Counts {
		if c != 0 {
			t.Errorf("censored export leaked counts: %v", scale.Counts)
		}
	}
}

func floatPtr(v float64) *float64 { return &v }
