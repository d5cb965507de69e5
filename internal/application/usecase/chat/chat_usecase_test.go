package chat

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/taingy-srun/portfolio/internal/application/service"
	"github.com/taingy-srun/portfolio/internal/domain/conversation"
	"github.com/taingy-srun/portfolio/internal/domain/resume"
	"github.com/taingy-srun/portfolio/pkg/apperror"
	"github.com/taingy-srun/portfolio/pkg/logger"
)

type fakeGate struct {
	mu       sync.Mutex
	sessions map[string]*conversation.Session
	released []string
}

func newFakeGate() *fakeGate {
	return &fakeGate{sessions: map[string]*conversation.Session{}}
}

func (g *fakeGate) session(id string) *conversation.Session {
	g.mu.Lock()
	defer g.mu.Unlock()
	s, ok := g.sessions[id]
	if !ok {
		s = conversation.NewSession()
		g.sessions[id] = s
	}
	return s
}

func (g *fakeGate) Acquire(_ context.Context, id string) error {
	if err := g.session(id).Begin(); err != nil {
		return apperror.NewBusy("chat session", id)
	}
	return nil
}

func (g *fakeGate) Release(_ context.Context, id string) error {
	g.session(id).Complete()
	g.mu.Lock()
	g.released = append(g.released, id)
	g.mu.Unlock()
	return nil
}

type fakePublisher struct {
	mu     sync.Mutex
	events []service.QueryAnswered
	err    error
	// block, when set, holds every publish until it is closed.
	block chan struct{}
}

func (p *fakePublisher) PublishQueryAnswered(ctx context.Context, evt service.QueryAnswered) error {
	if p.block != nil {
		select {
		case <-p.block:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, evt)
	return p.err
}

func (p *fakePublisher) published() []service.QueryAnswered {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]service.QueryAnswered(nil), p.events...)
}

type ChatUseCaseTestSuite struct {
	suite.Suite
	gate      *fakeGate
	publisher *fakePublisher
	uc        *ChatUseCase
}

func (s *ChatUseCaseTestSuite) SetupTest() {
	s.gate = newFakeGate()
	s.publisher = &fakePublisher{}
	s.uc = NewChatUseCase(NewResponder(resume.Builtin()), s.gate, s.publisher, 0, logger.NewNopLogger())
}

func TestChatUseCase(t *testing.T) {
	suite.Run(t, new(ChatUseCaseTestSuite))
}

func (s *ChatUseCaseTestSuite) TestAnswersAndPublishesTopic() {
	out, err := s.uc.Execute(context.Background(), ChatInput{SessionID: "s1", Query: "  What's her experience?  "})
	s.Require().NoError(err)

	s.Equal("s1", out.SessionID)
	s.Equal(TopicExperience, out.Topic)
	s.Contains(out.Response, "Work Experience")

	s.Require().Eventually(func() bool { return len(s.publisher.published()) == 1 }, time.Second, time.Millisecond)
	evt := s.publisher.published()[0]
	s.Equal(TopicExperience, evt.Topic)
	s.Equal("s1", evt.SessionID)
	s.False(evt.AnsweredAt.IsZero())

	s.Equal([]string{"s1"}, s.gate.released)
	s.True(s.gate.session("s1").CanSend())
}

func (s *ChatUseCaseTestSuite) TestRejectsEmptyQuery() {
	_, err := s.uc.Execute(context.Background(), ChatInput{SessionID: "s1", Query: " \t "})
	s.ErrorIs(err, apperror.ErrInvalidInput)
	s.Empty(s.publisher.published())
	s.Empty(s.gate.released)
}

func (s *ChatUseCaseTestSuite) TestRejectsMissingSession() {
	_, err := s.uc.Execute(context.Background(), ChatInput{Query: "skills"})
	s.ErrorIs(err, apperror.ErrInvalidInput)
}

func (s *ChatUseCaseTestSuite) TestRefusesWhilePending() {
	s.Require().NoError(s.gate.session("s1").Begin())

	_, err := s.uc.Execute(context.Background(), ChatInput{SessionID: "s1", Query: "skills"})
	s.ErrorIs(err, apperror.ErrConflict)
	s.Empty(s.publisher.published())

	out, err := s.uc.Execute(context.Background(), ChatInput{SessionID: "s2", Query: "skills"})
	s.Require().NoError(err)
	s.Equal(TopicSkills, out.Topic)
}

func (s *ChatUseCaseTestSuite) TestPublishFailureDoesNotFailQuery() {
	s.publisher.err = errors.New("broker down")

	out, err := s.uc.Execute(context.Background(), ChatInput{SessionID: "s1", Query: "banana"})
	s.Require().NoError(err)
	s.Equal(TopicFallback, out.Topic)
}

func (s *ChatUseCaseTestSuite) TestSlowPublisherDoesNotHoldSession() {
	s.publisher.block = make(chan struct{})
	defer close(s.publisher.block)

	done := make(chan error, 1)
	go func() {
		_, err := s.uc.Execute(context.Background(), ChatInput{SessionID: "s1", Query: "skills"})
		done <- err
	}()

	select {
	case err := <-done:
		s.Require().NoError(err)
	case <-time.After(time.Second):
		s.Require().FailNow("answer waited for the event publisher")
	}
	s.True(s.gate.session("s1").CanSend())

	out, err := s.uc.Execute(context.Background(), ChatInput{SessionID: "s1", Query: "education"})
	s.Require().NoError(err)
	s.Equal(TopicEducation, out.Topic)
}

func (s *ChatUseCaseTestSuite) TestPublishOutlivesRequestContext() {
	ctx, cancel := context.WithCancel(context.Background())
	s.publisher.block = make(chan struct{})

	_, err := s.uc.Execute(ctx, ChatInput{SessionID: "s1", Query: "contact"})
	s.Require().NoError(err)
	cancel()
	close(s.publisher.block)

	s.Require().Eventually(func() bool { return len(s.publisher.published()) == 1 }, time.Second, time.Millisecond)
	s.Equal(TopicContact, s.publisher.published()[0].Topic)
}

func TestChatUseCaseDelaysReply(t *testing.T) {
	gate := newFakeGate()
	uc := NewChatUseCase(NewResponder(resume.Builtin()), gate, &fakePublisher{}, 50*time.Millisecond, logger.NewNopLogger())

	done := make(chan error, 1)
	start := time.Now()
	go func() {
		_, err := uc.Execute(context.Background(), ChatInput{SessionID: "s1", Query: "java"})
		done <- err
	}()

	require.Eventually(t, func() bool { return gate.session("s1").Pending() }, time.Second, time.Millisecond)

	_, err := uc.Execute(context.Background(), ChatInput{SessionID: "s1", Query: "java"})
	assert.ErrorIs(t, err, apperror.ErrConflict)

	require.NoError(t, <-done)
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
	assert.False(t, gate.session("s1").Pending())
}

func TestChatUseCaseCancelReleasesSession(t *testing.T) {
	gate := newFakeGate()
	pub := &fakePublisher{}
	uc := NewChatUseCase(NewResponder(resume.Builtin()), gate, pub, time.Hour, logger.NewNopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := uc.Execute(ctx, ChatInput{SessionID: "s1", Query: "java"})
	assert.ErrorIs(t, err, apperror.ErrInternal)
	assert.ErrorIs(t, err, context.Canceled)
	assert.True(t, gate.session("s1").CanSend())
	assert.Empty(t, pub.published())
}

func TestSuggestionsAnswerWithoutFallback(t *testing.T) {
	uc := NewChatUseCase(NewResponder(resume.Builtin()), newFakeGate(), &fakePublisher{}, 0, logger.NewNopLogger())
	for _, sg := range uc.Suggestions() {
		out, err := uc.Execute(context.Background(), ChatInput{SessionID: "s", Query: sg.Question})
		require.NoError(t, err)
		assert.NotEqual(t, TopicFallback, out.Topic, sg.Question)
	}
}
