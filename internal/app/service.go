package app

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/jaminalder/elite-tic-tac-toe/internal/domain"
)

// Errors exposed by the service layer.
var (
	ErrSessionNotFound = errors.New("session not found")
)

// Session is one browser session's game.
type Session struct {
	ID      string
	State   domain.GameState
	Created time.Time
	Updated time.Time
}

// Sessions keeps one game per browser session in memory. Every transition
// swaps the stored Session value wholesale; callers only ever get copies.
type Sessions struct {
	mu       sync.Mutex
	sessions map[string]Session
	newID    func() string
	now      func() time.Time
	log      *zap.Logger
}

// NewSessions creates an empty store.
func NewSessions(log *zap.Logger, opts ...Option) *Sessions {
	s := &Sessions{
		sessions: make(map[string]Session),
		newID:    newSessionID,
		now:      time.Now,
		log:      log.Named("sessions"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create registers a session holding a fresh game.
func (s *Sessions) Create() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	sess := Session{ID: s.newID(), State: domain.Reset(), Created: now, Updated: now}
	s.sessions[sess.ID] = sess
	s.log.Debug("session created", zap.String("session", sess.ID))
	return sess
}

// Get returns the session if present.
func (s *Sessions) Get(id string) (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

// Activate applies a cell activation. Ignored moves leave the session,
// including its Updated time, unchanged.
func (s *Sessions) Activate(id string, index int) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return Session{}, ErrSessionNotFound
	}
	next := domain.ApplyMove(sess.State, index)
	if next == sess.State {
		s.log.Debug("move ignored", zap.String("session", id), zap.Int("index", index))
		return sess, nil
	}
	mover := sess.State.Active
	sess.State = next
	sess.Updated = s.now()
	s.sessions[id] = sess

	fields := []zap.Field{
		zap.String("session", id),
		zap.Stringer("mark", mover),
		zap.Int("index", index),
		zap.Stringer("outcome", next.Outcome),
	}
	if next.IsOver() {
		s.log.Info("game finished", fields...)
	} else {
		s.log.Debug("move applied", fields...)
	}
	return sess, nil
}

// Reset replaces the session's game with a fresh one.
func (s *Sessions) Reset(id string) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return Session{}, ErrSessionNotFound
	}
	sess.State = domain.Reset()
	sess.Updated = s.now()
	s.sessions[id] = sess
	s.log.Debug("game reset", zap.String("session", id))
	return sess, nil
}

// Len returns the number of live sessions.
func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Evict drops sessions not updated within idle and returns how many went.
func (s *Sessions) Evict(idle time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	cutoff := s.now().Add(-idle)
	n := 0
	for id, sess := range s.sessions {
		if sess.Updated.Before(cutoff) {
			delete(s.sessions, id)
			n++
		}
	}
	return n
}

// RunJanitor evicts idle sessions every interval until ctx is done.
func (s *Sessions) RunJanitor(ctx context.Context, idle, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Evict(idle); n > 0 {
				s.log.Info("evicted idle sessions", zap.Int("count", n), zap.Int("remaining", s.Len()))
			}
		}
	}
}
