package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"pet-adoption/internal/domain/sessions"
	"pet-adoption/internal/platform/apperr"
	"pet-adoption/internal/ports/auth"
)

var errSessionNotFound = fmt.Errorf("session %w", apperr.ErrNotFound)

type SessionsRepo struct {
	db *sql.DB
}

func NewSessionsRepo(db *sql.DB) *SessionsRepo {
	return &SessionsRepo{db: db}
}

func (r *SessionsRepo) Create(ctx context.Context, s sessions.Session) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO sessions (
			token, user_id,
			username, email, full_name, role,
			created_at, expires_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		s.Token,
		s.UserID,
		s.Identity.Username,
		s.Identity.Email,
		s.Identity.FullName,
		string(s.Identity.Role),
		s.CreatedAt,
		s.ExpiresAt,
	)
	return err
}

func (r *SessionsRepo) Get(ctx context.Context, token string) (sessions.Session, error) {
	var (
		s    sessions.Session
		role string
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT
			token, user_id,
			username, email, full_name, role,
			created_at, expires_at
		FROM sessions
		WHERE token = $1
	`, token).Scan(
		&s.Token,
		&s.UserID,
		&s.Identity.Username,
		&s.Identity.Email,
		&s.Identity.FullName,
		&role,
		&s.CreatedAt,
		&s.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return sessions.Session{}, errSessionNotFound
		}
		return sessions.Session{}, err
	}
	s.Identity.UserID = s.UserID
	s.Identity.Role = auth.Role(role)
	return s, nil
}

func (r *SessionsRepo) Delete(ctx context.Context, token string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE token = $1`, token)
	return err
}

func (r *SessionsRepo) DeleteByUser(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE user_id = $1`, userID)
	return err
}

func (r *SessionsRepo) DeleteExpired(ctx context.Context, now time.Time) (int, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at <= $1`, now)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}
