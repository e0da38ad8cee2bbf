package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"pet-adoption/internal/domain/staff"
	"pet-adoption/internal/ports/auth"
)

type StaffRepo struct {
	db *sql.DB
}

func NewStaffRepo(db *sql.DB) *StaffRepo {
	return &StaffRepo{db: db}
}

const staffColumns = `
	id, username, email, password_hash, full_name,
	role, is_active, last_login_at,
	created_at, updated_at`

func (r *StaffRepo) Create(ctx context.Context, u staff.StaffUser) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO staff_users (`+staffColumns+`
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`,
		u.ID,
		u.Username,
		u.Email,
		u.PasswordHash,
		u.FullName,
		string(u.Role),
		u.IsActive,
		toNullTime(u.LastLoginAt),
		u.CreatedAt,
		u.UpdatedAt,
	)
	return mapStaffUnique(err)
}

// Update no cambia username ni last_login_at.
func (r *StaffRepo) Update(ctx context.Context, u staff.StaffUser) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE staff_users
		SET
			email = $2,
			password_hash = $3,
			full_name = $4,
			role = $5,
			is_active = $6,
			updated_at = $7
		WHERE id = $1
	`,
		u.ID,
		u.Email,
		u.PasswordHash,
		u.FullName,
		string(u.Role),
		u.IsActive,
		u.UpdatedAt,
	)
	if err != nil {
		return mapStaffUnique(err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return staff.ErrNotFound
	}
	return nil
}

func (r *StaffRepo) GetByID(ctx context.Context, id string) (staff.StaffUser, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return staff.StaffUser{}, staff.ErrNotFound
	}
	return r.getOne(ctx, `WHERE id = $1`, id)
}

func (r *StaffRepo) GetByUsername(ctx context.Context, username string) (staff.StaffUser, error) {
	if username == "" {
		return staff.StaffUser{}, staff.ErrNotFound
	}
	return r.getOne(ctx, `WHERE username = $1`, username)
}

func (r *StaffRepo) List(ctx context.Context) ([]staff.StaffUser, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+staffColumns+`
		FROM staff_users
		ORDER BY username ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]staff.StaffUser, 0)
	for rows.Next() {
		u, err := scanStaff(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *StaffRepo) RecordLogin(ctx context.Context, id string, at time.Time) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE staff_users SET last_login_at = $2 WHERE id = $1
	`, id, at)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return staff.ErrNotFound
	}
	return nil
}

func (r *StaffRepo) getOne(ctx context.Context, where string, arg any) (staff.StaffUser, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+staffColumns+`
		FROM staff_users
		`+where, arg)

	u, err := scanStaff(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return staff.StaffUser{}, staff.ErrNotFound
		}
		return staff.StaffUser{}, err
	}
	return u, nil
}

func scanStaff(scan func(dest ...any) error) (staff.StaffUser, error) {
	var (
		u         staff.StaffUser
		role      string
		lastLogin sql.NullTime
	)
	if err := scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&u.FullName,
		&role,
		&u.IsActive,
		&lastLogin,
		&u.CreatedAt,
		&u.UpdatedAt,
	); err != nil {
		return staff.StaffUser{}, err
	}
	u.Role = auth.Role(role)
	u.LastLoginAt = fromNullTime(lastLogin)
	return u, nil
}

func mapStaffUnique(err error) error {
	switch uniqueConstraint(err) {
	case "staff_users_username_key":
		return staff.ErrUsernameTaken
	case "staff_users_email_key":
		return staff.ErrEmailTaken
	}
	return err
}
