// Copyright (c) 2025 Beep Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/beep-labs/beep/auth"
	"github.com/beep-labs/beep/cliparse"
	"github.com/beep-labs/beep/middleware"
	"github.com/beep-labs/beep/models"
)

// recentParticipantsLimit bounds the dashboard's recent-joins list.
const recentParticipantsLimit = 50

type EventHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewEventHandler(db *sql.DB, cfg cliparse.Config) *EventHandler {
	return &EventHandler{db: db, cfg: cfg}
}

// GetEventStats handles GET /events/{code}/stats
// Returns the participant count and the most recent joins for the event
// dashboard. Requires the event's admin key in X-Admin-Key.
func (h *EventHandler) GetEventStats(w http.ResponseWriter, r *http.Request) {
	eventCode, err := auth.NormalizeEventCode(r.PathValue("code"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	adminKey := r.Header.Get("X-Admin-Key")
	if err := auth.ValidateAdminKey(eventCode, adminKey, h.cfg.AdminKeySalt); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin key")
		return
	}

	var count int
	err = h.db.QueryRow(`
		SELECT COUNT(*) FROM session WHERE event_code = $1
	`, eventCode).Scan(&count)
	if err != nil {
		slog.Error("failed to count sessions", "error", err, "event_code", eventCode)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	rows, err := h.db.Query(`
		SELECT token, created_at
		FROM session
		WHERE event_code = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, eventCode, recentParticipantsLimit)
	if err != nil {
		slog.Error("failed to query participants", "error", err, "event_code", eventCode)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	participants := []models.Participant{}
	for rows.Next() {
		var p models.Participant
		if err := rows.Scan(&p.Token, &p.CreatedAt); err != nil {
			slog.Error("failed to scan participant", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		participants = append(participants, p)
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to read participants", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.EventStatsResponse{
		EventCode:        eventCode,
		ParticipantCount: count,
		Participants:     participants,
	})
}
