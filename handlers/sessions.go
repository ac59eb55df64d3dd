// Copyright (c) 2025 Beep Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/beep-labs/beep/auth"
	"github.com/beep-labs/beep/catalog"
	"github.com/beep-labs/beep/cliparse"
	"github.com/beep-labs/beep/middleware"
	"github.com/beep-labs/beep/models"
)

type SessionHandler struct {
	db        *sql.DB
	cfg       cliparse.Config
	questions []models.Question
}

func NewSessionHandler(db *sql.DB, cfg cliparse.Config) *SessionHandler {
	return &SessionHandler{db: db, cfg: cfg, questions: catalog.Questions()}
}

// CreateSession handles POST /sessions
// Inserts a new session row for a client-minted token. Sessions are
// insert-only: rotation publishes a new token instead of updating the old
// row, and a duplicate token is a conflict, never an overwrite.
func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSessionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Validate input
	if req.Token == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "token is required")
		return
	}
	if !auth.ValidToken(req.Token) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "token must be a UUID")
		return
	}

	eventCode, err := auth.NormalizeEventCode(req.EventCode)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	var validationErr *models.ValidationError
	if err := models.ValidateAnswers(req.Answers, h.questions); err != nil {
		if errors.As(err, &validationErr) {
			middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("failed to validate answers", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	// The stored snapshot keeps the normalized event code so lookup-side
	// membership checks compare like with like.
	req.Answers.EventCode = eventCode

	answersJSON, err := json.Marshal(req.Answers)
	if err != nil {
		slog.Error("failed to marshal answers", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	createdAt := time.Now().UTC()
	_, err = h.db.Exec(`
		INSERT INTO session (token, event_code, answers, created_at)
		VALUES ($1, $2, $3, $4)
	`, req.Token, eventCode, string(answersJSON), createdAt)

	if err != nil {
		if isDuplicateKey(err) {
			middleware.ErrorResponse(w, http.StatusConflict, "Token already registered")
			return
		}
		slog.Error("failed to insert session", "error", err, "event_code", eventCode)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	slog.Info("session created", "event_code", eventCode)

	middleware.JSONResponse(w, http.StatusCreated, models.Session{
		Token:     req.Token,
		EventCode: eventCode,
		Answers:   req.Answers,
		CreatedAt: createdAt,
	})
}

// GetSession handles GET /sessions/{token}
// Fetches a session by exact token match. A missing row is a plain 404;
// the caller treats it as "absent", not a failure.
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	token := r.PathValue("token")
	if token == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "token is required")
		return
	}

	var sess models.Session
	var answersJSON string
	err := h.db.QueryRow(`
		SELECT token, event_code, answers, created_at
		FROM session
		WHERE token = $1
	`, token).Scan(&sess.Token, &sess.EventCode, &answersJSON, &sess.CreatedAt)

	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Session not found")
		return
	}
	if err != nil {
		slog.Error("failed to query session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if err := json.Unmarshal([]byte(answersJSON), &sess.Answers); err != nil {
		slog.Error("failed to unmarshal stored answers", "error", err, "token", token)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Corrupt session record")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, sess)
}

// isDuplicateKey matches unique-violation errors from both supported
// drivers (sqlite and postgres).
func isDuplicateKey(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value violates unique constraint")
}
