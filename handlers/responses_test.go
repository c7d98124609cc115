// Copyright (c) 2025 the hushboard authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"hushboard/models"
	"hushboard/testutil"
)

func submitResponse(t *testing.T, handler *ResponseHandler, postID int64, sessionToken string, data models.ResponseData) *httptest.ResponseRecorder {
	t.Helper()

	idStr := strconv.FormatInt(postID, 10)
	req := testutil.MakeRequest("POST", "/posts/"+idStr+"/response",
		models.SubmitResponseRequest{ResponseData: data},
		map[string]string{"X-Session-Token": sessionToken})
	req.SetPathValue("id", idStr)
	w := httptest.NewRecorder()
	handler.SubmitResponse(w, req)
	return w
}

func TestSubmitResponseHandler(t *testing.T) {
	s := testutil.SetupTestStore(t)
	handler := NewResponseHandler(s)
	author, _ := testutil.CreateTestUser(t, s, "author")
	post := testutil.CreateTestRadioPoll(t, s, author.ID, "gated", "a", "b")

	_, sessionToken := testutil.CreateTestUser(t, s, "voter")

	t.Run("first submission below the floor", func(t *testing.T) {
		w := submitResponse(t, handler, post.ID, sessionToken, models.ResponseData{SelectedOption: "a"})
		testutil.AssertStatus(t, w, http.StatusOK)

		var resp struct {
			IsNewResponse bool            `json:"isNewResponse"`
			PollResults   json.RawMessage `json:"pollResults"`
		}
		testutil.AssertJSON(t, w, &resp)
		if !resp.IsNewResponse {
			t.Error("first submission should be new")
		}
		if len(resp.PollResults) != 0 {
			t.Errorf("results disclosed below the floor: %s", resp.PollResults)
		}
	})

	t.Run("resubmission is an update", func(t *testing.T) {
		w := submitResponse(t, handler, post.ID, sessionToken, models.ResponseData{SelectedOption: "b"})
		testutil.AssertStatus(t, w, http.StatusOK)

		var resp struct {
			IsNewResponse bool `json:"isNewResponse"`
		}
		testutil.AssertJSON(t, w, &resp)
		if resp.IsNewResponse {
			t.Error("resubmission should not be new")
		}
	})

	t.Run("submitter sees results once the floor is reached", func(t *testing.T) {
		// Four more voters reach the disclosure floor
		for _, name := range []string{"v2", "v3", "v4", "v5"} {
			u, _ := testutil.CreateTestUser(t, s, name)
			testutil.SubmitTestResponse(t, s, u.ID, post.ID, models.ResponseData{SelectedOption: "a"})
		}

		w := submitResponse(t, handler, post.ID, sessionToken, models.ResponseData{SelectedOption: "b"})
		testutil.AssertStatus(t, w, http.StatusOK)

		var resp struct {
			PollResults *models.RadioAggregates `json:"pollResults"`
		}
		testutil.AssertJSON(t, w, &resp)
		if resp.PollResults == nil {
			t.Fatal("submitter should see results at the floor")
		}
		if resp.PollResults.TotalResponses != 5 {
			t.Errorf("total = %d, want 5", resp.PollResults.TotalResponses)
		}
	})

	t.Run("unauthenticated is rejected", func(t *testing.T) {
		idStr := strconv.FormatInt(post.ID, 10)
		req := testutil.MakeRequest("POST", "/posts/"+idStr+"/response",
			models.SubmitResponseRequest{ResponseData: models.ResponseData{SelectedOption: "a"}}, nil)
		req.SetPathValue("id", idStr)
		w := httptest.NewRecorder()
		handler.SubmitResponse(w, req)
		testutil.AssertStatus(t, w, http.StatusUnauthorized)
	})

	t.Run("empty response data is rejected", func(t *testing.T) {
		w := submitResponse(t, handler, post.ID, sessionToken, models.ResponseData{})
		testutil.AssertStatus(t, w, http.StatusBadRequest)
	})

	t.Run("unknown post", func(t *testing.T) {
		w := submitResponse(t, handler, 9999, sessionToken, models.ResponseData{SelectedOption: "a"})
		testutil.AssertStatus(t, w, http.StatusNotFound)
	})
}
