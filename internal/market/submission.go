package market

import (
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/abstrakts/storefront-core/internal/adapter"
)

// State is the lifecycle state of a submission
type State string

const (
	StateIdle       State = "idle"
	StateBuilding   State = "building"
	StateSubmitting State = "submitting"
	StateSuccess    State = "success"
	StateFailed     State = "failed"
	StateReloading  State = "reloading"
)

// ErrInvalidTransition is returned when a submission is moved out of order
var ErrInvalidTransition = errors.New("invalid submission transition")

// Submission tracks one transaction from building to the page reload.
// A failed submission is never retried; it goes back to idle when dismissed.
type Submission struct {
	mu       sync.Mutex
	id       string
	kind     Kind
	state    State
	failure  *Failure
	clock    adapter.Clock
	reloaded chan struct{}
}

// NewSubmission creates an idle submission
func NewSubmission(id string, kind Kind, clock adapter.Clock) *Submission {
	return &Submission{
		id:       id,
		kind:     kind,
		state:    StateIdle,
		clock:    clock,
		reloaded: make(chan struct{}),
	}
}

// ID returns the submission id
func (s *Submission) ID() string {
	return s.id
}

// Kind returns the kind of the submitted intent
func (s *Submission) Kind() Kind {
	return s.kind
}

// State returns the current state
func (s *Submission) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Failure returns the failure of a failed submission, nil otherwise
func (s *Submission) Failure() *Failure {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.failure
}

// Reloaded is closed once the submission reaches the reloading state
func (s *Submission) Reloaded() <-chan struct{} {
	return s.reloaded
}

// transition must be called with s.mu held
func (s *Submission) transition(to State, from ...State) error {
	if !slices.Contains(from, s.state) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s.state, to)
	}
	s.state = to
	return nil
}

// Build marks the start of action building
func (s *Submission) Build() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.transition(StateBuilding, StateIdle)
}

// Submit marks the hand-off to the signer
func (s *Submission) Submit() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.transition(StateSubmitting, StateBuilding)
}

// Succeed records the broadcast and schedules the reload after delay
func (s *Submission) Succeed(delay time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.transition(StateSuccess, StateSubmitting); err != nil {
		return err
	}

	timer := s.clock.After(delay)
	go func() {
		<-timer
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.transition(StateReloading, StateSuccess) == nil {
			close(s.reloaded)
		}
	}()
	return nil
}

// Fail records why building or signing failed
func (s *Submission) Fail(failure Failure) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.transition(StateFailed, StateBuilding, StateSubmitting); err != nil {
		return err
	}
	s.failure = &failure
	return nil
}

// Dismiss acknowledges a failure and returns the submission to idle
func (s *Submission) Dismiss() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.transition(StateIdle, StateFailed); err != nil {
		return err
	}
	s.failure = nil
	return nil
}
