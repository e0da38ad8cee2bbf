package staff

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"pet-adoption/internal/platform/apperr"
	"pet-adoption/internal/platform/logger"
	"pet-adoption/internal/ports/auth"

	"github.com/google/uuid"
)

var (
	ErrNotFound = fmt.Errorf("staff user %w", apperr.ErrNotFound)
	// ErrSelfLockout: un admin no puede desactivarse ni quitarse el rol a sí mismo.
	ErrSelfLockout = fmt.Errorf("%w: cannot deactivate or demote your own account", apperr.ErrConflict)
)

const (
	// MinPasswordLength aplica a cuentas nuevas y cambios de contraseña.
	MinPasswordLength = 6
	// bcrypt no acepta más de 72 bytes
	MaxPasswordBytes = 72
)

// SessionRevoker corta las sesiones abiertas de un usuario (lo implementa sessions.Service).
type SessionRevoker interface {
	RevokeUser(ctx context.Context, userID string) error
}

type Service struct {
	repo    Repository
	hasher  auth.PasswordHasher
	revoker SessionRevoker
	now     func() time.Time
}

func NewService(repo Repository, hasher auth.PasswordHasher, revoker SessionRevoker) *Service {
	return &Service{
		repo:    repo,
		hasher:  hasher,
		revoker: revoker,
		now:     time.Now,
	}
}

type CreateInput struct {
	Username string
	Email    string
	Password string
	FullName string
	Role     string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (StaffUser, error) {
	now := s.now()
	u := StaffUser{
		ID:        uuid.NewString(),
		Username:  strings.TrimSpace(in.Username),
		Email:     strings.TrimSpace(in.Email),
		FullName:  strings.TrimSpace(in.FullName),
		Role:      auth.Role(strings.TrimSpace(in.Role)),
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if u.Role == "" {
		u.Role = auth.RoleStaff
	}

	v := validate(u)
	checkPassword(v, in.Password)
	if err := v.OrNil(); err != nil {
		return StaffUser{}, err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return StaffUser{}, err
	}
	u.PasswordHash = hash

	if err := s.repo.Create(ctx, u); err != nil {
		return StaffUser{}, err
	}

	logger.FromContext(ctx).Info("staff user created", map[string]any{
		"user_id":  u.ID,
		"username": u.Username,
		"role":     string(u.Role),
	})
	return u, nil
}

// UpdateInput: nil = no tocar. Password se re-hashea.
type UpdateInput struct {
	Email    *string
	FullName *string
	Role     *string
	Password *string
}

// Update aplica los cambios de un admin (actorID) sobre otro usuario.
// Un cambio de rol o de contraseña cierra las sesiones abiertas: la identidad
// guardada en la sesión quedaría vieja.
func (s *Service) Update(ctx context.Context, actorID, id string, in UpdateInput) (StaffUser, error) {
	u, err := s.GetByID(ctx, id)
	if err != nil {
		return StaffUser{}, err
	}
	prevRole := u.Role

	if in.Email != nil {
		u.Email = strings.TrimSpace(*in.Email)
	}
	if in.FullName != nil {
		u.FullName = strings.TrimSpace(*in.FullName)
	}
	if in.Role != nil {
		u.Role = auth.Role(strings.TrimSpace(*in.Role))
	}

	v := validate(u)
	if in.Password != nil {
		checkPassword(v, *in.Password)
	}
	if err := v.OrNil(); err != nil {
		return StaffUser{}, err
	}
	if u.ID == actorID && prevRole == auth.RoleAdmin && u.Role != auth.RoleAdmin {
		return StaffUser{}, ErrSelfLockout
	}

	if in.Password != nil {
		hash, err := s.hasher.Hash(*in.Password)
		if err != nil {
			return StaffUser{}, err
		}
		u.PasswordHash = hash
	}
	u.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, u); err != nil {
		return StaffUser{}, mapNotFound(err)
	}

	if u.Role != prevRole || in.Password != nil {
		if err := s.revokeSessions(ctx, u.ID); err != nil {
			return StaffUser{}, err
		}
	}
	return u, nil
}

// Deactivate deja la cuenta inactiva y cierra sus sesiones abiertas.
// Es idempotente. Nadie puede desactivar su propia cuenta.
func (s *Service) Deactivate(ctx context.Context, actorID, id string) (StaffUser, error) {
	u, err := s.GetByID(ctx, id)
	if err != nil {
		return StaffUser{}, err
	}
	if u.ID == actorID {
		return StaffUser{}, ErrSelfLockout
	}

	if u.IsActive {
		u.IsActive = false
		u.UpdatedAt = s.now()
		if err := s.repo.Update(ctx, u); err != nil {
			return StaffUser{}, mapNotFound(err)
		}
	}

	if err := s.revokeSessions(ctx, u.ID); err != nil {
		return StaffUser{}, err
	}

	logger.FromContext(ctx).Info("staff user deactivated", map[string]any{
		"user_id":  u.ID,
		"username": u.Username,
	})
	return u, nil
}

func (s *Service) revokeSessions(ctx context.Context, userID string) error {
	if s.revoker == nil {
		return nil
	}
	return s.revoker.RevokeUser(ctx, userID)
}

func (s *Service) GetByID(ctx context.Context, id string) (StaffUser, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return StaffUser{}, ErrNotFound
	}
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return StaffUser{}, mapNotFound(err)
	}
	return u, nil
}

func (s *Service) List(ctx context.Context) ([]StaffUser, error) {
	return s.repo.List(ctx)
}

// SeedAccount es una cuenta inicial con la contraseña en texto plano (se hashea al sembrar).
type SeedAccount struct {
	Username string
	Email    string
	Password string
	FullName string
	Role     auth.Role
}

// DefaultAccounts son las cuentas de demo del panel.
var DefaultAccounts = []SeedAccount{
	{Username: "admin", Email: "admin@petconnect.mn", Password: "admin123", FullName: "Admin User", Role: auth.RoleAdmin},
	{Username: "staff1", Email: "staff1@petconnect.mn", Password: "admin123", FullName: "Staff Member 1", Role: auth.RoleStaff},
}

// Seed crea las cuentas que falten (por username). Devuelve cuántas creó.
func (s *Service) Seed(ctx context.Context, accounts []SeedAccount) (int, error) {
	created := 0
	for _, a := range accounts {
		_, err := s.repo.GetByUsername(ctx, a.Username)
		if err == nil {
			continue
		}
		if !errors.Is(err, apperr.ErrNotFound) {
			return created, err
		}

		if _, err := s.Create(ctx, CreateInput{
			Username: a.Username,
			Email:    a.Email,
			Password: a.Password,
			FullName: a.FullName,
			Role:     string(a.Role),
		}); err != nil {
			return created, fmt.Errorf("seed %s: %w", a.Username, err)
		}
		created++
	}
	return created, nil
}

func validate(u StaffUser) *apperr.ValidationError {
	v := apperr.NewValidationError()

	if u.Username == "" {
		v.Add("username", "required")
	} else if strings.ContainsAny(u.Username, " \t\n") {
		v.Add("username", "must not contain spaces")
	}
	if u.Email == "" {
		v.Add("email", "required")
	} else if _, err := mail.ParseAddress(u.Email); err != nil {
		v.Add("email", "invalid email address")
	}
	if u.FullName == "" {
		v.Add("fullName", "required")
	}
	if !u.Role.Valid() {
		v.Add("role", "must be one of admin, staff")
	}
	return v
}

func checkPassword(v *apperr.ValidationError, password string) {
	switch {
	case len(password) < MinPasswordLength:
		v.Add("password", fmt.Sprintf("must be at least %d characters", MinPasswordLength))
	case len(password) > MaxPasswordBytes:
		v.Add("password", fmt.Sprintf("must be at most %d bytes", MaxPasswordBytes))
	}
}

func mapNotFound(err error) error {
	if errors.Is(err, apperr.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
