// Package auth tracks the signed-in user for interactive clients. The state
// starts unknown, becomes ready on the first SetUser or Clear, and notifies
// subscribers on every change.
package auth

import (
	"context"
	"sync"
)

// User is the identity attached to a session.
type User struct {
	UID         string
	IsAnonymous bool
	DisplayName string
	Email       string
	PhoneNumber string
}

// State is a concurrency-safe holder of the current session user.
type State struct {
	mu      sync.RWMutex
	user    *User
	ready   bool
	readyCh chan struct{}
	subs    map[int]chan *User
	nextSub int
}

// NewState constructs a State with no known user. WaitUntilReady blocks until
// the first SetUser or Clear.
func NewState() *State {
	return &State{
		readyCh: make(chan struct{}),
		subs:    make(map[int]chan *User),
	}
}

// SetUser records the signed-in user and notifies subscribers.
func (s *State) SetUser(u User) {
	s.publish(&u)
}

// Clear records that no user is signed in and notifies subscribers.
func (s *State) Clear() {
	s.publish(nil)
}

// CurrentUser returns the current user, or nil when signed out. The second
// return reports whether the state has been resolved at least once.
func (s *State) CurrentUser() (*User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil, s.ready
	}
	u := *s.user
	return &u, s.ready
}

// WaitUntilReady blocks until the auth state has resolved once, or until the
// context is done. It returns the user current at resolution time.
func (s *State) WaitUntilReady(ctx context.Context) (*User, error) {
	s.mu.RLock()
	ready := s.readyCh
	s.mu.RUnlock()

	select {
	case <-ready:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	u, _ := s.CurrentUser()
	return u, nil
}

// Subscribe returns a channel receiving each subsequent user change, and a
// cancel function that must be called to release the subscription. Slow
// subscribers miss intermediate states rather than blocking publishers.
func (s *State) Subscribe() (<-chan *User, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	ch := make(chan *User, 1)
	s.subs[id] = ch

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if _, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(ch)
		}
	}
	return ch, cancel
}

func (s *State) publish(u *User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = u
	if !s.ready {
		s.ready = true
		close(s.readyCh)
	}

	for _, ch := range s.subs {
		// Replace a pending unread value with the latest one.
		select {
		case <-ch:
		default:
		}
		ch <- u
	}
}
