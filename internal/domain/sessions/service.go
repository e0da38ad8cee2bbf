package sessions

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"pet-adoption/internal/domain/staff"
	"pet-adoption/internal/platform/apperr"
	"pet-adoption/internal/platform/logger"
	"pet-adoption/internal/ports/auth"
)

// DefaultTTL: igual que la cookie del backend anterior (24h).
const DefaultTTL = 24 * time.Hour

// tokenBytes => token de 64 caracteres hex.
const tokenBytes = 32

var ErrInvalidCredentials = fmt.Errorf("login: %w", apperr.ErrInvalidCredentials)

// UserStore es lo que el login necesita del módulo staff.
type UserStore interface {
	GetByUsername(ctx context.Context, username string) (staff.StaffUser, error)
	RecordLogin(ctx context.Context, id string, at time.Time) error
}

type Service struct {
	repo   Repository
	users  UserStore
	hasher auth.PasswordHasher
	ttl    time.Duration
	log    logger.Logger

	now      func() time.Time
	newToken func() (string, error)

	dummyOnce sync.Once
	dummyHash string
}

func NewService(repo Repository, users UserStore, hasher auth.PasswordHasher, ttl time.Duration, log logger.Logger) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repo:     repo,
		users:    users,
		hasher:   hasher,
		ttl:      ttl,
		log:      log,
		now:      time.Now,
		newToken: randomToken,
	}
}

func (s *Service) TTL() time.Duration { return s.ttl }

// Login valida credenciales y abre una sesión.
// Usuario inexistente, inactivo o contraseña incorrecta dan el mismo ErrInvalidCredentials;
// el motivo real solo va al log.
// El username se compara exacto: sin trim ni case folding.
func (s *Service) Login(ctx context.Context, username, password string) (Session, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, apperr.ErrNotFound) {
			return Session{}, err
		}
		// Comparación contra un hash cualquiera para no revelar por tiempo si el usuario existe
		s.hasher.Verify(password, s.dummy())
		s.loginFailed(username, "unknown user")
		return Session{}, ErrInvalidCredentials
	}

	if !s.hasher.Verify(password, u.PasswordHash) {
		s.loginFailed(username, "wrong password")
		return Session{}, ErrInvalidCredentials
	}
	if !u.IsActive {
		s.loginFailed(username, "inactive account")
		return Session{}, ErrInvalidCredentials
	}

	token, err := s.newToken()
	if err != nil {
		return Session{}, fmt.Errorf("generate session token: %w", err)
	}

	now := s.now()
	sess := Session{
		Token:     token,
		UserID:    u.ID,
		Identity:  u.Identity(),
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	if err := s.repo.Create(ctx, sess); err != nil {
		return Session{}, err
	}

	if err := s.users.RecordLogin(ctx, u.ID, now); err != nil {
		// La sesión ya existe; no vale la pena fallar el login por esto.
		s.log.Warn("record last login failed", map[string]any{
			"user_id": u.ID,
			"error":   err.Error(),
		})
	}

	s.log.Info("login", map[string]any{
		"user_id":  u.ID,
		"username": u.Username,
		"role":     string(u.Role),
	})
	return sess, nil
}

// Resolve no modifica nada: una sesión vencida simplemente no resuelve.
// La limpieza la hace PurgeExpired.
func (s *Service) Resolve(ctx context.Context, token string) (auth.Identity, bool) {
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Identity{}, false
	}

	sess, err := s.repo.Get(ctx, token)
	if err != nil {
		if !errors.Is(err, apperr.ErrNotFound) {
			s.log.Error("resolve session", map[string]any{"error": err.Error()})
		}
		return auth.Identity{}, false
	}
	if sess.Expired(s.now()) {
		return auth.Identity{}, false
	}
	return sess.Identity, true
}

// Logout es idempotente.
func (s *Service) Logout(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil
	}
	sess, err := s.repo.Get(ctx, token)
	if err != nil {
		// ya cerrada o desconocida
		return s.repo.Delete(ctx, token)
	}
	if err := s.repo.Delete(ctx, token); err != nil {
		return err
	}
	s.log.Info("logout", map[string]any{"user_id": sess.UserID})
	return nil
}

func (s *Service) RevokeUser(ctx context.Context, userID string) error {
	if err := s.repo.DeleteByUser(ctx, userID); err != nil {
		return err
	}
	s.log.Info("sessions revoked", map[string]any{"user_id": userID})
	return nil
}

func (s *Service) PurgeExpired(ctx context.Context) (int, error) {
	n, err := s.repo.DeleteExpired(ctx, s.now())
	if err != nil {
		return 0, err
	}
	if n > 0 {
		s.log.Debug("expired sessions purged", map[string]any{"count": n})
	}
	return n, nil
}

// RunSweeper llama PurgeExpired cada interval hasta que ctx se cancele.
func (s *Service) RunSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if _, err := s.PurgeExpired(ctx); err != nil && ctx.Err() == nil {
				s.log.Warn("purge expired sessions", map[string]any{"error": err.Error()})
			}
		}
	}
}

func (s *Service) loginFailed(username, reason string) {
	s.log.Debug("login failed", map[string]any{
		"username": username,
		"reason":   reason,
	})
}

func (s *Service) dummy() string {
	s.dummyOnce.Do(func() {
		h, err := s.hasher.Hash("petconnect-dummy-password")
		if err == nil {
			s.dummyHash = h
		}
	})
	return s.dummyHash
}

func randomToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
