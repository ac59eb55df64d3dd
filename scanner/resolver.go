// Copyright (c) 2025 Beep Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scanner

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/beep-labs/beep/auth"
	"github.com/beep-labs/beep/models"
	"github.com/beep-labs/beep/qr"
	"github.com/beep-labs/beep/registry"
)

// ErrScanInProgress is returned by Scan while another capture session is
// still running on the same Resolver.
var ErrScanInProgress = errors.New("scan already in progress")

// Rejection reasons - normal outcomes, not failures.
const (
	ReasonTokenNotFound  = "token not found"
	ReasonDifferentEvent = "different event"
)

// Fault reasons - distinguishable so the caller can present the right
// guidance.
const (
	FaultCamera  = "camera unavailable"
	FaultNetwork = "network failure"
	FaultDecode  = "malformed decode"
)

// CaptureError reports a camera-side failure, distinguishable from store
// errors.
type CaptureError struct {
	Reason string
	Err    error
}

func (e *CaptureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("capture failed: %s: %v", e.Reason, e.Err)
	}
	return "capture failed: " + e.Reason
}

func (e *CaptureError) Unwrap() error { return e.Err }

// State is the resolver's position in a capture session.
type State int

const (
	StateIdle State = iota
	StateCapturing
	StateResolving
	StateMatched
	StateRejected
	StateFaulted
)

func (s State) String() string {
	switch s {
	case StateCapturing:
		return "capturing"
	case StateResolving:
		return "resolving"
	case StateMatched:
		return "matched"
	case StateRejected:
		return "rejected"
	case StateFaulted:
		return "faulted"
	default:
		return "idle"
	}
}

// Registry is the lookup side of the session store, satisfied by
// *registry.Client.
type Registry interface {
	Lookup(ctx context.Context, token string) (models.Session, error)
}

// Engine scores two answer sets, satisfied by *match.Engine.
type Engine interface {
	Compute(self, peer models.QuizAnswers) models.MatchResult
}

// Outcome is the terminal result of one capture session.
type Outcome struct {
	State  State              // StateMatched, StateRejected, or StateFaulted
	Reason string             // set for Rejected and Faulted
	Result models.MatchResult // set for Matched
	Err    error              // set for Faulted
}

// Resolver runs capture sessions: decode one token from the stream,
// resolve it at the registry, enforce event membership, and score the pair
// exactly once. A Resolver is scoped to one user's answers at one event.
type Resolver struct {
	reg       Registry
	engine    Engine
	self      models.QuizAnswers
	eventCode string

	mu    sync.Mutex
	state State
}

// New builds a Resolver for the scanning user's own answer snapshot.
func New(reg Registry, engine Engine, self models.QuizAnswers) (*Resolver, error) {
	if reg == nil {
		return nil, errors.New("registry is required")
	}
	if engine == nil {
		return nil, errors.New("engine is required")
	}
	eventCode, err := auth.NormalizeEventCode(self.EventCode)
	if err != nil {
		return nil, err
	}
	self.EventCode = eventCode

	return &Resolver{reg: reg, engine: engine, self: self, eventCode: eventCode}, nil
}

// State reports the resolver's position for UI observation.
func (r *Resolver) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Scan runs one capture session to its terminal outcome. The first
// successfully decoded token wins; decode callbacks that race the stream
// teardown are ignored, so lookup and scoring run at most once per
// session. Cancelling ctx stops the camera, abandons any in-flight
// lookup's effect, and returns ctx.Err with no outcome.
func (r *Resolver) Scan(ctx context.Context, stream qr.DecodeStream) (Outcome, error) {
	if !r.begin() {
		return Outcome{}, ErrScanInProgress
	}

	tokenCh := make(chan string, 1)
	var accepted atomic.Bool

	stop, err := stream.Start(qr.Callbacks{
		OnToken: func(token string) {
			// At-most-one resolution per capture session: the first
			// decode wins, later callbacks are dropped even if the
			// stream hasn't finished stopping yet.
			if accepted.CompareAndSwap(false, true) {
				tokenCh <- token
			}
		},
		OnNoise: func() {
			// frames with no readable code are expected; never surfaced
		},
	})
	if err != nil {
		return r.fault(FaultCamera, err), nil
	}
	defer stop()

	var token string
	select {
	case token = <-tokenCh:
	case <-ctx.Done():
		r.setState(StateIdle)
		return Outcome{}, ctx.Err()
	}

	r.setState(StateResolving)
	// Suspend further decodes promptly; the accepted guard above keeps
	// any late callback harmless.
	stop()

	return r.resolve(ctx, token)
}

func (r *Resolver) resolve(ctx context.Context, token string) (Outcome, error) {
	if !auth.ValidToken(token) {
		return r.fault(FaultDecode, fmt.Errorf("decoded payload is not a session token")), nil
	}

	sess, err := r.reg.Lookup(ctx, token)
	if errors.Is(err, registry.ErrNotFound) {
		return r.reject(ReasonTokenNotFound), nil
	}
	if err != nil {
		if ctx.Err() != nil {
			// cancelled mid-lookup: no terminal state, no outcome
			r.setState(StateIdle)
			return Outcome{}, ctx.Err()
		}
		return r.fault(FaultNetwork, err), nil
	}

	if sess.EventCode != r.eventCode {
		return r.reject(ReasonDifferentEvent), nil
	}

	result := r.engine.Compute(r.self, sess.Answers)
	r.setState(StateMatched)
	return Outcome{State: StateMatched, Result: result}, nil
}

// begin transitions Idle (or a terminal state) into Capturing. Returns
// false when a capture session is already running.
func (r *Resolver) begin() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state == StateCapturing || r.state == StateResolving {
		return false
	}
	r.state = StateCapturing
	return true
}

func (r *Resolver) setState(s State) {
	r.mu.Lock()
	r.state = s
	r.mu.Unlock()
}

func (r *Resolver) reject(reason string) Outcome {
	r.setState(StateRejected)
	return Outcome{State: StateRejected, Reason: reason}
}

func (r *Resolver) fault(reason string, err error) Outcome {
	r.setState(StateFaulted)
	if reason == FaultNetwork {
		return Outcome{State: StateFaulted, Reason: reason, Err: err}
	}
	return Outcome{State: StateFaulted, Reason: reason, Err: &CaptureError{Reason: reason, Err: err}}
}
