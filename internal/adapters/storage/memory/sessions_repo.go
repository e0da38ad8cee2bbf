package memory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pet-adoption/internal/domain/sessions"
	"pet-adoption/internal/platform/apperr"
)

var errSessionNotFound = fmt.Errorf("session %w", apperr.ErrNotFound)

type sessionRepo struct {
	s *Store
}

func (r *sessionRepo) Create(ctx context.Context, sess sessions.Session) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if sess.Token == "" {
		return errors.New("session token required")
	}
	if _, exists := r.s.sessions[sess.Token]; exists {
		return errors.New("session already exists")
	}
	r.s.sessions[sess.Token] = sess
	return nil
}

func (r *sessionRepo) Get(ctx context.Context, token string) (sessions.Session, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	sess, ok := r.s.sessions[token]
	if !ok {
		return sessions.Session{}, errSessionNotFound
	}
	return sess, nil
}

func (r *sessionRepo) Delete(ctx context.Context, token string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.sessions, token)
	return nil
}

func (r *sessionRepo) DeleteByUser(ctx context.Context, userID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for tok, sess := range r.s.sessions {
		if sess.UserID == userID {
			delete(r.s.sessions, tok)
		}
	}
	return nil
}

func (r *sessionRepo) DeleteExpired(ctx context.Context, now time.Time) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	n := 0
	for tok, sess := range r.s.sessions {
		if sess.Expired(now) {
			delete(r.s.sessions, tok)
			n++
		}
	}
	return n, nil
}
