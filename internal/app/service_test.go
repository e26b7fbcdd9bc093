package app

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jaminalder/elite-tic-tac-toe/internal/domain"
)

// fakeClock is a manually advanced time source.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestSessions(t *testing.T) (*Sessions, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	n := 0
	ids := func() string { n++; return fmt.Sprintf("s%d", n) }
	return NewSessions(zap.NewNop(), WithClock(clock.Now), WithIDFunc(ids)), clock
}

func TestCreateAndGet(t *testing.T) {
	s, _ := newTestSessions(t)
	sess := s.Create()
	require.Equal(t, "s1", sess.ID)
	assert.Equal(t, domain.Reset(), sess.State)
	assert.False(t, sess.Created.IsZero())
	assert.Equal(t, sess.Created, sess.Updated)

	got, ok := s.Get(sess.ID)
	require.True(t, ok)
	assert.Equal(t, sess, got)

	_, ok = s.Get("missing")
	assert.False(t, ok)
}

func TestDefaultIDsAreUnique(t *testing.T) {
	s := NewSessions(zap.NewNop())
	a, b := s.Create(), s.Create()
	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, 2, s.Len())
}

func TestActivateAppliesMove(t *testing.T) {
	s, clock := newTestSessions(t)
	sess := s.Create()
	clock.Advance(time.Second)

	got, err := s.Activate(sess.ID, 4)
	require.NoError(t, err)
	assert.Equal(t, domain.X, got.State.Board[4])
	assert.Equal(t, domain.O, got.State.Active)
	assert.True(t, got.Updated.After(sess.Updated))

	stored, _ := s.Get(sess.ID)
	assert.Equal(t, got, stored)
}

func TestActivateIgnoredMoveLeavesSessionUnchanged(t *testing.T) {
	s, clock := newTestSessions(t)
	sess := s.Create()
	played, err := s.Activate(sess.ID, 0)
	require.NoError(t, err)
	clock.Advance(time.Minute)

	for _, i := range []int{0, -1, 9} {
		got, err := s.Activate(sess.ID, i)
		require.NoError(t, err)
		assert.Equal(t, played, got, "index %d", i)
	}
}

func TestActivateUnknownSession(t *testing.T) {
	s, _ := newTestSessions(t)
	_, err := s.Activate("nope", 0)
	require.ErrorIs(t, err, ErrSessionNotFound)
	_, err = s.Reset("nope")
	require.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionsAreIndependent(t *testing.T) {
	s, _ := newTestSessions(t)
	a, b := s.Create(), s.Create()
	_, err := s.Activate(a.ID, 0)
	require.NoError(t, err)

	gotB, _ := s.Get(b.ID)
	assert.Equal(t, domain.Reset(), gotB.State)
}

func TestPlayToWinAndReset(t *testing.T) {
	s, _ := newTestSessions(t)
	sess := s.Create()
	for _, i := range []int{0, 3, 1, 4, 2} {
		var err error
		sess, err = s.Activate(sess.ID, i)
		require.NoError(t, err)
	}
	require.Equal(t, domain.Outcome{Status: domain.Win, Winner: domain.X, Line: domain.Line{0, 1, 2}}, sess.State.Outcome)

	after, err := s.Activate(sess.ID, 8)
	require.NoError(t, err)
	assert.Equal(t, sess, after)

	reset, err := s.Reset(sess.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.Reset(), reset.State)
	assert.Equal(t, sess.Created, reset.Created)
}

func TestEvict(t *testing.T) {
	s, clock := newTestSessions(t)
	stale := s.Create()
	clock.Advance(30 * time.Minute)
	fresh := s.Create()
	clock.Advance(45 * time.Minute)

	assert.Equal(t, 1, s.Evict(time.Hour))
	_, ok := s.Get(stale.ID)
	assert.False(t, ok)
	_, ok = s.Get(fresh.ID)
	assert.True(t, ok)

	// activity keeps a session alive
	clock.Advance(10 * time.Minute)
	_, err := s.Activate(fresh.ID, 0)
	require.NoError(t, err)
	clock.Advance(50 * time.Minute)
	assert.Equal(t, 0, s.Evict(time.Hour))
	assert.Equal(t, 1, s.Len())
}

func TestRunJanitorStopsOnCancel(t *testing.T) {
	s := NewSessions(zap.NewNop())
	s.Create()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.RunJanitor(ctx, time.Nanosecond, time.Millisecond)
		close(done)
	}()

	require.Eventually(t, func() bool { return s.Len() == 0 }, 2*time.Second, 5*time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("janitor did not stop after cancel")
	}
}

func TestConcurrentActivate(t *testing.T) {
	s := NewSessions(zap.NewNop())
	sess := s.Create()

	var wg sync.WaitGroup
	for i := 0; i < 9; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _ = s.Activate(sess.ID, i)
		}(i)
	}
	wg.Wait()

	got, _ := s.Get(sess.ID)
	x, o := 0, 0
	for _, m := range got.State.Board {
		switch m {
		case domain.X:
			x++
		case domain.O:
			o++
		}
	}
	// marks always alternate, whatever order the goroutines ran in
	assert.True(t, x == o || x == o+1, "x=%d o=%d", x, o)
	assert.Equal(t, domain.CalculateOutcome(got.State.Board), got.State.Outcome)
}
