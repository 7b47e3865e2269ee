// Package session tracks the signed-in user on the client side and notifies
// listeners when the session changes.
package session

import (
	stderrors "errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Event describes a session change.
type Event string

const (
	EventSignedIn  Event = "SIGNED_IN"
	EventSignedOut Event = "SIGNED_OUT"
)

// ErrInvalidToken is returned when an access token cannot be decoded.
var ErrInvalidToken = stderrors.New("session: invalid access token")

// Session is an authenticated user.
type Session struct {
	AccessToken string
	UserID      string
	Email       string
	ExpiresAt   time.Time
}

// Expired reports whether the token is past its expiry at now.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// Listener receives session changes. s is nil on sign-out.
type Listener func(event Event, s *Session)

// Provider exposes the current session and change notifications.
type Provider interface {
	Current() (Session, bool)
	Subscribe(fn Listener) (unsubscribe func())
}

type accessClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Store is an in-memory Provider. Tokens are decoded, not verified; the
// function host verifies them.
type Store struct {
	mu        sync.RWMutex
	current   *Session
	listeners map[int]Listener
	nextID    int
	now       func() time.Time
}

// NewStore creates an empty, signed-out store.
func NewStore() *Store {
	return &Store{
		listeners: make(map[int]Listener),
		now:       time.Now,
	}
}

// SignIn decodes accessToken and makes it the current session.
func (s *Store) SignIn(accessToken string) (Session, error) {
	accessToken = strings.TrimSpace(accessToken)
	if accessToken == "" {
		return Session{}, ErrInvalidToken
	}

	var claims accessClaims
	if _, _, err := jwt.NewParser().ParseUnverified(accessToken, &claims); err != nil {
		return Session{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.Subject == "" {
		return Session{}, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}

	sess := Session{
		AccessToken: accessToken,
		UserID:      claims.Subject,
		Email:       claims.Email,
	}
	if claims.ExpiresAt != nil {
		sess.ExpiresAt = claims.ExpiresAt.Time
	}

	s.mu.Lock()
	s.current = &sess
	s.mu.Unlock()

	s.notify(EventSignedIn, &sess)
	return sess, nil
}

// SignOut clears the session. Listeners are only told when a session existed.
func (s *Store) SignOut() {
	s.mu.Lock()
	wasSignedIn := s.current != nil
	s.current = nil
	s.mu.Unlock()

	if wasSignedIn {
		s.notify(EventSignedOut, nil)
	}
}

// Current returns the session if one exists and has not expired.
func (s *Store) Current() (Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil || s.current.Expired(s.now()) {
		return Session{}, false
	}
	return *s.current, true
}

// AccessToken returns the current token or "".
func (s *Store) AccessToken() string {
	sess, ok := s.Current()
	if !ok {
		return ""
	}
	return sess.AccessToken
}

// Subscribe registers fn for future changes. Calling the returned function
// more than once is a no-op.
func (s *Store) Subscribe(fn Listener) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.listeners, id)
			s.mu.Unlock()
		})
	}
}

// notify calls listeners synchronously, outside the lock so they may call back into the store.
func (s *Store) notify(event Event, sess *Session) {
	s.mu.RLock()
	ids := make([]int, 0, len(s.listeners))
	for id := range s.listeners {
		ids = append(ids, id)
	}
	s.mu.RUnlock()

	for _, id := range ids {
		s.mu.RLock()
		fn, ok := s.listeners[id]
		s.mu.RUnlock()
		if ok {
			fn(event, sess)
		}
	}
}
