package conversation

import (
	"errors"
	"sync"
)

var ErrPending = errors.New("a reply is still pending")

type State string

const (
	StateIdle    State = "idle"
	StatePending State = "pending"
)

// Session serialises one visitor's questions: between Begin and Complete
// the send control is disabled and further questions are refused.
type Session struct {
	mu    sync.Mutex
	state State
}

func NewSession() *Session {
	return &Session{state: StateIdle}
}

func (s *Session) Begin() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StatePending {
		return ErrPending
	}
	s.state = StatePending
	return nil
}

// Complete returns the session to idle. Calling it while idle is a no-op.
func (s *Session) Complete() {
	s.mu.Lock()
	s.state = StateIdle
	s.mu.Unlock()
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) Pending() bool {
	return s.State() == StatePending
}

// CanSend reports whether the send control is enabled.
func (s *Session) CanSend() bool {
	return !s.Pending()
}
