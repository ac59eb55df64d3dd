// Copyright (c) 2025 Beep Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/beep-labs/beep/router"
	"github.com/beep-labs/beep/testutil"
)

func TestRoutes(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	mux := router.NewRouter(conn, testutil.GetTestConfig())

	cases := []struct {
		method string
		path   string
		status int
	}{
		{"GET", "/health", http.StatusOK},
		{"GET", "/", http.StatusOK},
		{"DELETE", "/sessions", http.StatusMethodNotAllowed},
		{"POST", "/health", http.StatusMethodNotAllowed},
		{"GET", "/sessions/does-not-exist", http.StatusNotFound},
	}

	for _, tc := range cases {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, testutil.MakeRequest(tc.method, tc.path, nil, nil))
		if w.Code != tc.status {
			t.Errorf("%s %s: expected %d, got %d", tc.method, tc.path, tc.status, w.Code)
		}
	}
}

func TestHealthBody(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	mux := router.NewRouter(conn, testutil.GetTestConfig())

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("GET", "/health", nil, nil))
	if w.Body.String() != "OK" {
		t.Errorf("Expected OK, got %q", w.Body.String())
	}
}
