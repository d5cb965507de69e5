package persistence

import (
	"context"
	"sync"

	"github.com/taingy-srun/portfolio/internal/application/service"
	"github.com/taingy-srun/portfolio/internal/domain/conversation"
	"github.com/taingy-srun/portfolio/pkg/apperror"
)

type memorySessionGate struct {
	mu       sync.Mutex
	sessions map[string]*conversation.Session
}

// NewMemorySessionGate keeps pending flags in process. Only correct with a
// single server replica.
func NewMemorySessionGate() service.SessionGate {
	return &memorySessionGate{sessions: make(map[string]*conversation.Session)}
}

func (g *memorySessionGate) Acquire(_ context.Context, sessionID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	s, ok := g.sessions[sessionID]
	if !ok {
		s = conversation.NewSession()
		g.sessions[sessionID] = s
	}
	if err := s.Begin(); err != nil {
		return apperror.NewBusy("chat session", sessionID)
	}
	return nil
}

func (g *memorySessionGate) Release(_ context.Context, sessionID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if s, ok := g.sessions[sessionID]; ok {
		s.Complete()
		delete(g.sessions, sessionID)
	}
	return nil
}
