// Copyright (c) 2025 Beep Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package lifecycle

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/beep-labs/beep/auth"
	"github.com/beep-labs/beep/models"
	"github.com/beep-labs/beep/qr"
)

// DefaultRotation is how long a displayed token stays current before a
// fresh one is minted.
const DefaultRotation = 90 * time.Second

// Registry is the save side of the session store, satisfied by
// *registry.Client.
type Registry interface {
	Save(ctx context.Context, token, eventCode string, answers models.QuizAnswers) (models.Session, error)
}

// State is the issuer's lifecycle position.
type State int

const (
	StateIdle State = iota
	StateMinting
	StateDisplaying
)

func (s State) String() string {
	switch s {
	case StateMinting:
		return "minting"
	case StateDisplaying:
		return "displaying"
	default:
		return "idle"
	}
}

// Display is one rendered rotation: the minted token and its QR image.
type Display struct {
	Token    string
	PNG      []byte
	IssuedAt time.Time
}

// Issuer mints session tokens, persists them through the Registry, renders
// them as QR images, and rotates on a fixed cadence until stopped. Old
// tokens are never revoked; each rotation inserts a new session row.
type Issuer struct {
	reg       Registry
	answers   models.QuizAnswers
	eventCode string
	interval  time.Duration
	size      int

	displays chan Display
	errs     chan error

	mu         sync.Mutex
	state      State
	current    Display
	hasCurrent bool
	started    bool
	stopped    bool
	cancel     context.CancelFunc
	done       chan struct{}
}

// New builds an Issuer for a completed answer snapshot. The snapshot's
// event code must be valid; it is normalized before use.
func New(reg Registry, answers models.QuizAnswers, opts ...Option) (*Issuer, error) {
	if reg == nil {
		return nil, errors.New("registry is required")
	}
	eventCode, err := auth.NormalizeEventCode(answers.EventCode)
	if err != nil {
		return nil, err
	}
	answers.EventCode = eventCode

	i := &Issuer{
		reg:       reg,
		answers:   answers,
		eventCode: eventCode,
		interval:  DefaultRotation,
		size:      qr.DefaultSize,
		displays:  make(chan Display, 1),
		errs:      make(chan error, 4),
		done:      make(chan struct{}),
	}
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return nil, err
		}
	}
	return i, nil
}

// Start mints the first token immediately and then rotates every interval
// until ctx is cancelled or Stop is called. It may be called once.
func (i *Issuer) Start(ctx context.Context) error {
	i.mu.Lock()
	if i.started {
		i.mu.Unlock()
		return errors.New("issuer already started")
	}
	i.started = true
	ctx, i.cancel = context.WithCancel(ctx)
	i.mu.Unlock()

	go i.run(ctx)
	return nil
}

// Displays delivers each new rotation. Only the latest undelivered display
// is retained; the channel closes after teardown.
func (i *Issuer) Displays() <-chan Display {
	return i.displays
}

// Errors delivers mint/save failures. Each failure is surfaced once and
// never retried; rotation continues on the next tick.
func (i *Issuer) Errors() <-chan error {
	return i.errs
}

// Current returns the most recent display, if any rotation has succeeded.
func (i *Issuer) Current() (Display, bool) {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.current, i.hasCurrent
}

// State reports the issuer's lifecycle position.
func (i *Issuer) State() State {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.state
}

// Stop tears the issuer down: the rotation timer is cancelled, no further
// tokens are minted, and an in-flight save that completes afterwards is
// discarded rather than displayed. Stopping twice is a no-op.
func (i *Issuer) Stop() {
	i.mu.Lock()
	i.stopped = true
	cancel := i.cancel
	started := i.started
	i.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if started {
		<-i.done
	}
}

func (i *Issuer) run(ctx context.Context) {
	defer close(i.done)
	defer close(i.displays)
	defer func() {
		i.mu.Lock()
		i.state = StateIdle
		i.mu.Unlock()
	}()

	i.mint(ctx)

	ticker := time.NewTicker(i.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			i.mint(ctx)
		}
	}
}

// mint performs one rotation: fresh token, save, render, publish.
func (i *Issuer) mint(ctx context.Context) {
	i.setState(StateMinting)

	token := auth.GenerateToken()
	sess, err := i.reg.Save(ctx, token, i.eventCode, i.answers)
	if err != nil {
		i.reportError(err)
		i.restoreDisplayState()
		return
	}

	png, err := qr.Encode(token, i.size)
	if err != nil {
		i.reportError(err)
		i.restoreDisplayState()
		return
	}

	d := Display{Token: token, PNG: png, IssuedAt: sess.CreatedAt}

	// Stale-callback guard: a save that lands after teardown must not
	// replace the displayed state.
	i.mu.Lock()
	if i.stopped || ctx.Err() != nil {
		i.mu.Unlock()
		return
	}
	i.current = d
	i.hasCurrent = true
	i.state = StateDisplaying
	i.mu.Unlock()

	// Keep only the latest undelivered display.
	select {
	case i.displays <- d:
	default:
		select {
		case <-i.displays:
		default:
		}
		select {
		case i.displays <- d:
		default:
		}
	}
}

func (i *Issuer) setState(s State) {
	i.mu.Lock()
	if !i.stopped {
		i.state = s
	}
	i.mu.Unlock()
}

// restoreDisplayState drops back to Displaying (previous code still shown)
// or Idle after a failed mint.
func (i *Issuer) restoreDisplayState() {
	i.mu.Lock()
	if !i.stopped {
		if i.hasCurrent {
			i.state = StateDisplaying
		} else {
			i.state = StateIdle
		}
	}
	i.mu.Unlock()
}

func (i *Issuer) reportError(err error) {
	select {
	case i.errs <- err:
	default:
		// caller isn't draining errors; drop rather than block rotation
	}
}
