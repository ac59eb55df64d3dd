// Copyright (c) 2025 Beep Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package registry

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/beep-labs/beep/models"
)

// ErrNotFound is returned by Lookup when no session matches the token.
// Absence is a normal outcome, not a transport failure.
var ErrNotFound = errors.New("session not found")

// StoreError reports a save/lookup that failed at the transport or server
// level. The client never retries; the caller decides.
type StoreError struct {
	Op         string
	StatusCode int
	Message    string
	Err        error
}

func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("registry %s failed: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("registry %s failed: status %d: %s", e.Op, e.StatusCode, e.Message)
}

func (e *StoreError) Unwrap() error { return e.Err }

// IsStoreError reports whether err is a transport/server failure rather
// than a normal absence.
func IsStoreError(err error) bool {
	var se *StoreError
	return errors.As(err, &se)
}

// Client talks to the session registry API. Safe for concurrent use.
type Client struct {
	http *resty.Client
}

// New builds a Client for the registry at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("registry base URL is required")
	}

	c := &Client{http: resty.New().SetBaseURL(baseURL)}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// NewFromEnv builds a Client from BEEP_* environment variables.
func NewFromEnv() (*Client, error) {
	cfg, err := ConfigFromEnv()
	if err != nil {
		return nil, err
	}
	return New(cfg.BaseURL, WithTimeout(cfg.Timeout), WithDebug(cfg.Debug))
}

// Save publishes a new session row for token. Each call inserts an
// independent row; the registry never updates an existing token.
func (c *Client) Save(ctx context.Context, token, eventCode string, answers models.QuizAnswers) (models.Session, error) {
	var sess models.Session
	var apiErr models.ErrorResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(models.CreateSessionRequest{Token: token, EventCode: eventCode, Answers: answers}).
		SetResult(&sess).
		SetError(&apiErr).
		Post("/sessions")
	if err != nil {
		return models.Session{}, &StoreError{Op: "save", Err: err}
	}
	if resp.StatusCode() != http.StatusCreated {
		return models.Session{}, &StoreError{Op: "save", StatusCode: resp.StatusCode(), Message: apiErr.Message}
	}

	return sess, nil
}

// Lookup fetches a session by exact token match. Returns ErrNotFound when
// no row matches and a *StoreError on transport failure.
func (c *Client) Lookup(ctx context.Context, token string) (models.Session, error) {
	var sess models.Session
	var apiErr models.ErrorResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&sess).
		SetError(&apiErr).
		SetPathParam("token", token).
		Get("/sessions/{token}")
	if err != nil {
		return models.Session{}, &StoreError{Op: "lookup", Err: err}
	}

	switch resp.StatusCode() {
	case http.StatusOK:
		return sess, nil
	case http.StatusNotFound:
		return models.Session{}, ErrNotFound
	default:
		return models.Session{}, &StoreError{Op: "lookup", StatusCode: resp.StatusCode(), Message: apiErr.Message}
	}
}

// EventStats fetches the dashboard view for an event. adminKey is the
// HMAC key for that event code.
func (c *Client) EventStats(ctx context.Context, eventCode, adminKey string) (models.EventStatsResponse, error) {
	var stats models.EventStatsResponse
	var apiErr models.ErrorResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("X-Admin-Key", adminKey).
		SetResult(&stats).
		SetError(&apiErr).
		SetPathParam("code", eventCode).
		Get("/events/{code}/stats")
	if err != nil {
		return models.EventStatsResponse{}, &StoreError{Op: "event stats", Err: err}
	}
	if resp.StatusCode() != http.StatusOK {
		return models.EventStatsResponse{}, &StoreError{Op: "event stats", StatusCode: resp.StatusCode(), Message: apiErr.Message}
	}

	return stats, nil
}
