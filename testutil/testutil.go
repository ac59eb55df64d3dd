// Copyright (c) 2025 Beep Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/beep-labs/beep/auth"
	"github.com/beep-labs/beep/catalog"
	"github.com/beep-labs/beep/cliparse"
	"github.com/beep-labs/beep/db"
	"github.com/beep-labs/beep/models"
)

// SetupTestDB creates a fresh in-memory sqlite database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         8787,
		DatabaseURL:  ":memory:",
		DatabaseType: "sqlite",
		AdminKeySalt: "test-admin-salt",
	}
}

// CompleteAnswers builds a valid, complete answer snapshot for an event.
// Every question is answered with its option at optionIdx (wrapping), with
// medium importance and no deal-breakers on Layer B. Two snapshots built
// with the same optionIdx agree on every question.
func CompleteAnswers(eventCode string, optionIdx int) models.QuizAnswers {
	answers := models.QuizAnswers{
		LayerA:    map[string]string{},
		EventCode: eventCode,
	}
	for _, q := range catalog.LayerA() {
		answers.LayerA[q.ID] = q.Options[optionIdx%len(q.Options)].Value
	}
	for _, q := range catalog.LayerB() {
		answers.LayerB = append(answers.LayerB, models.LayerBAnswer{
			QuestionID: q.ID,
			Value:      q.Options[optionIdx%len(q.Options)].Value,
			Importance: models.ImportanceMedium,
		})
	}
	return answers
}

// CreateTestSession inserts a session row directly and returns its token
func CreateTestSession(t *testing.T, conn *sql.DB, eventCode string, answers models.QuizAnswers) string {
	t.Helper()

	token := auth.GenerateToken()
	answersJSON, err := json.Marshal(answers)
	if err != nil {
		t.Fatalf("Failed to marshal answers: %v", err)
	}

	_, err = conn.Exec(`
		INSERT INTO session (token, event_code, answers, created_at)
		VALUES ($1, $2, $3, $4)
	`, token, eventCode, string(answersJSON), time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to create test session: %v", err)
	}

	return token
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
