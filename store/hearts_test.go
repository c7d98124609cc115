// Copyright (c) 2025 the hushboard authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store_test

import (
	"errors"
	"testing"

	"hushboard/apperr"
	"hushboard/models"
	"hushboard/store"
	"hushboard/testutil"
)

func TestToggleHeart(t *testing.T) {
	s := testutil.SetupTestStore(t)
	user, _ := testutil.CreateTestUser(t, s, "hearter")
	post := testutil.CreateTestPost(t, s, user.ID, "heart me")

	t.Run("toggle on then off", func(t *testing.T) {
		hearted, err := s.ToggleHeart(user.ID, models.TargetPost, post.ID)
		if err != nil {
			t.Fatalf("ToggleHeart() error = %v", err)
		}
		if !hearted {
			t.Error("first toggle should add a heart")
		}

		hearted, err = s.ToggleHeart(user.ID, models.TargetPost, post.ID)
		if err != nil {
			t.Fatalf("ToggleHeart() error = %v", err)
		}
		if hearted {
			t.Error("second toggle should remove the heart")
		}

		tallies, err := s.HeartTallies(models.TargetPost, &user.ID)
		if err != nil {
			t.Fatalf("HeartTallies() error = %v", err)
		}
		if tally := tallies[post.ID]; tally.Count != 0 {
			t.Errorf("heart count after even toggles = %d, want 0", tally.Count)
		}
	})

	t.Run("comment target", func(t *testing.T) {
		comment := testutil.AddTestComment(t, s, user.ID, post.ID, "a comment")
		hearted, err := s.ToggleHeart(user.ID, models.TargetComment, comment.ID)
		if err != nil {
			t.Fatalf("ToggleHeart() error = %v", err)
		}
		if !hearted {
			t.Error("toggle on comment should add a heart")
		}
	})

	t.Run("invalid target type", func(t *testing.T) {
		_, err := s.ToggleHeart(user.ID, "reaction", post.ID)
		if !errors.Is(err, apperr.ErrValidation) {
			t.Errorf("expected validation error, got %v", err)
		}
	})

	t.Run("missing target", func(t *testing.T) {
		_, err := s.ToggleHeart(user.ID, models.TargetPost, 9999)
		if !errors.Is(err, apperr.ErrNotFound) {
			t.Errorf("expected not found error, got %v", err)
		}
	})
}

func TestHeartTallies(t *testing.T) {
	s := testutil.SetupTestStore(t)
	alice, _ := testutil.CreateTestUser(t, s, "alice")
	bob, _ := testutil.CreateTestUser(t, s, "bob")
	carol, _ := testutil.CreateTestUser(t, s, "carol")

	post := testutil.CreateTestPost(t, s, alice.ID, "popular post")
	quiet := testutil.CreateTestPost(t, s, alice.ID, "quiet post")

	for _, id := range []int64{alice.ID, bob.ID, carol.ID} {
		if _, err := s.ToggleHeart(id, models.TargetPost, post.ID); err != nil {
			t.Fatalf("ToggleHeart() error = %v", err)
		}
	}

	t.Run("viewer sees own heart flagged", func(t *testing.T) {
		tallies, err := s.HeartTallies(models.TargetPost, &bob.ID)
		if err != nil {
			t.Fatalf("HeartTallies() error = %v", err)
		}

		tally := tallies[post.ID]
		if tally.Count != 3 {
			t.Errorf("heart count = %d, want 3", tally.Count)
		}
		if !tally.ViewerHearted {
			t.Error("viewer's own heart not flagged")
		}
		if _, ok := tallies[quiet.ID]; ok {
			t.Error("unhearted post should not appear in tallies")
		}
	})

	t.Run("anonymous viewer gets counts without flags", func(t *testing.T) {
		tallies, err := s.HeartTallies(models.TargetPost, nil)
		if err != nil {
			t.Fatalf("HeartTallies() error = %v", err)
		}

		tally := tallies[post.ID]
		if tally.Count != 3 {
			t.Errorf("heart count = %d, want 3", tally.Count)
		}
		if tally.ViewerHearted {
			t.Error("anonymous viewer cannot have hearted anything")
		}
	})
}

func TestDeleteClearsHearts(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := store.New(db)

	countHearts := func(t *testing.T) int {
		t.Helper()
		var n int
		if err := db.QueryRow(`SELECT COUNT(*) FROM hearts`).Scan(&n); err != nil {
			t.Fatalf("counting hearts: %v", err)
		}
		return n
	}

	author, _ := testutil.CreateTestUser(t, s, "cascade_author")
	fan, _ := testutil.CreateTestUser(t, s, "cascade_fan")

	t.Run("comment deletion removes its hearts", func(t *testing.T) {
		post := testutil.CreateTestPost(t, s, author.ID, "kept post")
		comment := testutil.AddTestComment(t, s, author.ID, post.ID, "soon gone")
		if _, err := s.ToggleHeart(fan.ID, models.TargetComment, comment.ID); err != nil {
			t.Fatalf("ToggleHeart() error = %v", err)
		}

		if err := s.DeleteComment(comment.ID, author.ID); err != nil {
			t.Fatalf("DeleteComment() error = %v", err)
		}
		if n := countHearts(t); n != 0 {
			t.Errorf("%d heart rows survived comment deletion", n)
		}
	})

	t.Run("post deletion removes hearts on it and on its comments", func(t *testing.T) {
		post := testutil.CreateTestPost(t, s, author.ID, "doomed post")
		comment := testutil.AddTestComment(t, s, fan.ID, post.ID, "doomed comment")
		if _, err := s.ToggleHeart(fan.ID, models.TargetPost, post.ID); err != nil {
			t.Fatalf("ToggleHeart() error = %v", err)
		}
		if _, err := s.ToggleHeart(author.ID, models.TargetComment, comment.ID); err != nil {
			t.Fatalf("ToggleHeart() error = %v", err)
		}

		if err := s.AdminDeletePost(post.ID); err != nil {
			t.Fatalf("AdminDeletePost() error = %v", err)
		}
		if n := countHearts(t); n != 0 {
			t.Errorf("%d heart rows survived post deletion", n)
		}
	})
}
