// Copyright (c) 2025 Beep Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package lifecycle

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/beep-labs/beep/auth"
	"github.com/beep-labs/beep/models"
	"github.com/beep-labs/beep/testutil"
)

// fakeRegistry records saves. With blockUntilCancel set, Save waits for the
// context to be cancelled and then completes anyway, simulating a save that
// lands after teardown.
type fakeRegistry struct {
	mu     sync.Mutex
	tokens []string

	failWith         error
	blockUntilCancel bool
}

func (f *fakeRegistry) Save(ctx context.Context, token, eventCode string, answers models.QuizAnswers) (models.Session, error) {
	if f.blockUntilCancel {
		<-ctx.Done()
	}
	if f.failWith != nil {
		return models.Session{}, f.failWith
	}

	f.mu.Lock()
	f.tokens = append(f.tokens, token)
	f.mu.Unlock()

	return models.Session{
		Token:     token,
		EventCode: eventCode,
		Answers:   answers,
		CreatedAt: time.Now().UTC(),
	}, nil
}

func (f *fakeRegistry) saved() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.tokens...)
}

func waitDisplay(t *testing.T, i *Issuer) Display {
	t.Helper()
	select {
	case d, ok := <-i.Displays():
		if !ok {
			t.Fatal("Displays channel closed before a rotation arrived")
		}
		return d
	case <-time.After(5 * time.Second):
		t.Fatal("Timed out waiting for a display")
		return Display{}
	}
}

func TestStartMintsImmediately(t *testing.T) {
	reg := &fakeRegistry{}
	iss, err := New(reg, testutil.CompleteAnswers("BEEP", 0), WithRotation(time.Hour))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := iss.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer iss.Stop()

	d := waitDisplay(t, iss)
	if !auth.ValidToken(d.Token) {
		t.Errorf("Displayed token is not a UUID: %s", d.Token)
	}
	if !bytes.HasPrefix(d.PNG, []byte("\x89PNG")) {
		t.Error("Displayed image is not a PNG")
	}
	if d.IssuedAt.IsZero() {
		t.Error("Expected a non-zero issue time")
	}

	saved := reg.saved()
	if len(saved) != 1 || saved[0] != d.Token {
		t.Errorf("Expected the displayed token to be saved first, got %v", saved)
	}

	if got, ok := iss.Current(); !ok || got.Token != d.Token {
		t.Errorf("Current() disagrees with the delivered display: %+v", got)
	}
	if iss.State() != StateDisplaying {
		t.Errorf("Expected displaying state, got %s", iss.State())
	}
}

func TestRotationMintsFreshTokens(t *testing.T) {
	reg := &fakeRegistry{}
	iss, err := New(reg, testutil.CompleteAnswers("BEEP", 0), WithRotation(20*time.Millisecond))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := iss.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer iss.Stop()

	seen := map[string]bool{}
	for len(seen) < 3 {
		d := waitDisplay(t, iss)
		if seen[d.Token] {
			t.Fatalf("Token %s displayed twice; rotation must mint fresh tokens", d.Token)
		}
		seen[d.Token] = true
	}

	// Rotation inserts; it never revokes. Every displayed token was saved.
	saved := map[string]bool{}
	for _, token := range reg.saved() {
		saved[token] = true
	}
	for token := range seen {
		if !saved[token] {
			t.Errorf("Displayed token %s was never saved", token)
		}
	}
}

func TestStopIsIdempotentAndClosesDisplays(t *testing.T) {
	reg := &fakeRegistry{}
	iss, err := New(reg, testutil.CompleteAnswers("BEEP", 0), WithRotation(time.Hour))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := iss.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	waitDisplay(t, iss)
	iss.Stop()
	iss.Stop() // second stop is a no-op

	if iss.State() != StateIdle {
		t.Errorf("Expected idle after stop, got %s", iss.State())
	}

	select {
	case _, ok := <-iss.Displays():
		if ok {
			t.Error("Expected no further displays after stop")
		}
	case <-time.After(time.Second):
		t.Error("Displays channel not closed after stop")
	}
}

func TestStopBeforeStartIsSafe(t *testing.T) {
	iss, err := New(&fakeRegistry{}, testutil.CompleteAnswers("BEEP", 0))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	iss.Stop()
	iss.Stop()
}

func TestSaveLandingAfterStopIsDiscarded(t *testing.T) {
	// Save blocks until Stop cancels the context, then completes. The
	// completed save must not surface as a display.
	reg := &fakeRegistry{blockUntilCancel: true}
	iss, err := New(reg, testutil.CompleteAnswers("BEEP", 0), WithRotation(time.Hour))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := iss.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	iss.Stop()

	if _, ok := iss.Current(); ok {
		t.Error("A save completing after stop must not become current")
	}
	if d, ok := <-iss.Displays(); ok {
		t.Errorf("A save completing after stop must not be displayed, got %+v", d)
	}
	if iss.State() != StateIdle {
		t.Errorf("Expected idle after stop, got %s", iss.State())
	}
}

func TestSaveFailureSurfacesOnceAndRotationContinues(t *testing.T) {
	boom := errors.New("registry down")
	reg := &fakeRegistry{failWith: boom}
	iss, err := New(reg, testutil.CompleteAnswers("BEEP", 0), WithRotation(time.Hour))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := iss.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer iss.Stop()

	select {
	case err := <-iss.Errors():
		if !errors.Is(err, boom) {
			t.Errorf("Expected the save error, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Timed out waiting for the save error")
	}

	if _, ok := iss.Current(); ok {
		t.Error("A failed mint must not produce a display")
	}
}

func TestStartTwiceFails(t *testing.T) {
	iss, err := New(&fakeRegistry{}, testutil.CompleteAnswers("BEEP", 0), WithRotation(time.Hour))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := iss.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer iss.Stop()

	if err := iss.Start(context.Background()); err == nil {
		t.Error("Expected second Start to fail")
	}
}

func TestNewValidatesInput(t *testing.T) {
	answers := testutil.CompleteAnswers("BEEP", 0)

	if _, err := New(nil, answers); err == nil {
		t.Error("Expected an error for a nil registry")
	}

	bad := answers
	bad.EventCode = "TOOLONG"
	if _, err := New(&fakeRegistry{}, bad); err == nil {
		t.Error("Expected an error for an invalid event code")
	}

	if _, err := New(&fakeRegistry{}, answers, WithRotation(0)); err == nil {
		t.Error("Expected an error for a zero rotation interval")
	}
	if _, err := New(&fakeRegistry{}, answers, WithImageSize(-1)); err == nil {
		t.Error("Expected an error for a negative image size")
	}
}
