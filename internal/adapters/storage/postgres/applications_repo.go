package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"pet-adoption/internal/domain/applications"
	"pet-adoption/internal/platform/apperr"
)

type ApplicationsRepo struct {
	db *sql.DB
}

func NewApplicationsRepo(db *sql.DB) *ApplicationsRepo {
	return &ApplicationsRepo{db: db}
}

const applicationColumns = `
	id, pet_id,
	full_name, phone_number, email, age, address,
	living_condition, experience, reason,
	status, created_at`

func (r *ApplicationsRepo) Create(ctx context.Context, a applications.Application) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO applications (`+applicationColumns+`
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
	`,
		a.ID,
		a.PetID,
		a.FullName,
		a.PhoneNumber,
		a.Email,
		a.Age,
		a.Address,
		string(a.LivingCondition),
		toNullString(a.Experience),
		toNullString(a.Reason),
		string(a.Status),
		a.CreatedAt,
	)
	return err
}

func (r *ApplicationsRepo) GetByID(ctx context.Context, id string) (applications.Application, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return applications.Application{}, applications.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+applicationColumns+`
		FROM applications
		WHERE id = $1
	`, id)

	a, err := scanApplication(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return applications.Application{}, applications.ErrNotFound
		}
		return applications.Application{}, err
	}
	return a, nil
}

func (r *ApplicationsRepo) List(ctx context.Context, filter applications.ListFilter) ([]applications.Application, error) {
	var (
		where []string
		args  []any
	)
	if filter.PetID != "" {
		args = append(args, filter.PetID)
		where = append(where, fmt.Sprintf("pet_id = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, string(filter.Status))
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}

	q := `SELECT ` + applicationColumns + ` FROM applications`
	if len(where) > 0 {
		q += ` WHERE ` + strings.Join(where, " AND ")
	}
	q += ` ORDER BY created_at DESC, id ASC`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]applications.Application, 0)
	for rows.Next() {
		a, err := scanApplication(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// UpdateStatus hace el compare-and-set en el WHERE. Con 0 filas hay que distinguir
// "no existe" de "el status ya cambió".
func (r *ApplicationsRepo) UpdateStatus(ctx context.Context, id string, from, to applications.Status) (applications.Application, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE applications
		SET status = $3
		WHERE id = $1 AND status = $2
		RETURNING `+applicationColumns,
		id, string(from), string(to),
	)

	a, err := scanApplication(row.Scan)
	if err == nil {
		return a, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return applications.Application{}, err
	}

	if _, err := r.GetByID(ctx, id); err != nil {
		return applications.Application{}, err
	}
	return applications.Application{}, fmt.Errorf("%w: application status is not %s", apperr.ErrConflict, from)
}

func scanApplication(scan func(dest ...any) error) (applications.Application, error) {
	var (
		a          applications.Application
		living     string
		status     string
		experience sql.NullString
		reason     sql.NullString
	)
	if err := scan(
		&a.ID,
		&a.PetID,
		&a.FullName,
		&a.PhoneNumber,
		&a.Email,
		&a.Age,
		&a.Address,
		&living,
		&experience,
		&reason,
		&status,
		&a.CreatedAt,
	); err != nil {
		return applications.Application{}, err
	}

	a.LivingCondition = applications.LivingCondition(living)
	a.Status = applications.Status(status)
	a.Experience = fromNullString(experience)
	a.Reason = fromNullString(reason)
	return a, nil
}
