// Copyright (c) 2025 Beep Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/beep-labs/beep/auth"
	"github.com/beep-labs/beep/models"
	"github.com/beep-labs/beep/router"
	"github.com/beep-labs/beep/testutil"
)

func TestConcurrentSessionCreates(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	mux := router.NewRouter(conn, cfg)

	const n = 20

	var wg sync.WaitGroup
	codes := make([]int, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			req := testutil.MakeRequest("POST", "/sessions", models.CreateSessionRequest{
				Token:     auth.GenerateToken(),
				EventCode: "BEEP",
				Answers:   testutil.CompleteAnswers("BEEP", i),
			}, nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			codes[i] = w.Code
		}(i)
	}
	wg.Wait()

	for i, code := range codes {
		if code != http.StatusCreated {
			t.Errorf("Create %d: expected 201, got %d", i, code)
		}
	}

	adminKey := auth.GenerateAdminKey("BEEP", cfg.AdminKeySalt)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("GET", "/events/BEEP/stats", nil, map[string]string{
		"X-Admin-Key": adminKey,
	}))
	testutil.AssertStatus(t, w, http.StatusOK)

	var stats models.EventStatsResponse
	testutil.AssertJSON(t, w, &stats)
	if stats.ParticipantCount != n {
		t.Errorf("Expected %d participants, got %d", n, stats.ParticipantCount)
	}
}

func TestConcurrentDuplicateTokenCreates(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	mux := router.NewRouter(conn, testutil.GetTestConfig())

	token := auth.GenerateToken()
	answers := testutil.CompleteAnswers("BEEP", 0)

	const n = 10

	var wg sync.WaitGroup
	codes := make([]int, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			req := testutil.MakeRequest("POST", "/sessions", models.CreateSessionRequest{
				Token:     token,
				EventCode: "BEEP",
				Answers:   answers,
			}, nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			codes[i] = w.Code
		}(i)
	}
	wg.Wait()

	var created, conflicted int
	for _, code := range codes {
		switch code {
		case http.StatusCreated:
			created++
		case http.StatusConflict:
			conflicted++
		default:
			t.Errorf("Unexpected status %d", code)
		}
	}

	// insert-only: exactly one writer wins, everyone else conflicts
	if created != 1 {
		t.Errorf("Expected exactly 1 created, got %d", created)
	}
	if conflicted != n-1 {
		t.Errorf("Expected %d conflicts, got %d", n-1, conflicted)
	}
}
