package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"pet-adoption/internal/domain/adoptions"
	"pet-adoption/internal/domain/applications"
	"pet-adoption/internal/domain/pets"
)

type AdoptionsRepo struct {
	db *sql.DB
}

func NewAdoptionsRepo(db *sql.DB) *AdoptionsRepo {
	return &AdoptionsRepo{db: db}
}

const adoptionColumns = `id, pet_id, application_id, adopted_by, story, adoption_date`

// Adopt corre en una transacción:
//  1. bloquea la solicitud (FOR UPDATE) y valida pet/status
//  2. UPDATE condicional de pets (is_adopted = false); 0 filas => ya adoptada o inexistente
//  3. aprueba la solicitud si seguía pending
//  4. inserta la adopción (índice único por pet_id como segunda barrera)
func (r *AdoptionsRepo) Adopt(ctx context.Context, a adoptions.Adoption) (adoptions.Adoption, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return adoptions.Adoption{}, err
	}
	defer func() { _ = tx.Rollback() }()

	var appPetID, status string
	err = tx.QueryRowContext(ctx, `
		SELECT pet_id, status
		FROM applications
		WHERE id = $1
		FOR UPDATE
	`, a.ApplicationID).Scan(&appPetID, &status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return adoptions.Adoption{}, applications.ErrNotFound
		}
		return adoptions.Adoption{}, err
	}
	if appPetID != a.PetID {
		return adoptions.Adoption{}, adoptions.ErrApplicationMismatch
	}
	if applications.Status(status) == applications.StatusRejected {
		return adoptions.Adoption{}, adoptions.ErrApplicationRejected
	}

	res, err := tx.ExecContext(ctx, `
		UPDATE pets
		SET is_adopted = TRUE
		WHERE id = $1 AND is_adopted = FALSE
	`, a.PetID)
	if err != nil {
		return adoptions.Adoption{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var exists bool
		if err := tx.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM pets WHERE id = $1)`, a.PetID).Scan(&exists); err != nil {
			return adoptions.Adoption{}, err
		}
		if !exists {
			return adoptions.Adoption{}, pets.ErrNotFound
		}
		return adoptions.Adoption{}, adoptions.ErrPetAlreadyAdopted
	}

	if applications.Status(status) == applications.StatusPending {
		if _, err := tx.ExecContext(ctx, `
			UPDATE applications
			SET status = 'approved'
			WHERE id = $1 AND status = 'pending'
		`, a.ApplicationID); err != nil {
			return adoptions.Adoption{}, err
		}
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO adoptions (`+adoptionColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6)
	`,
		a.ID,
		a.PetID,
		a.ApplicationID,
		a.AdoptedBy,
		toNullString(a.Story),
		a.AdoptionDate,
	); err != nil {
		if uniqueConstraint(err) == "adoptions_pet_id_key" {
			return adoptions.Adoption{}, adoptions.ErrPetAlreadyAdopted
		}
		return adoptions.Adoption{}, err
	}

	if err := tx.Commit(); err != nil {
		return adoptions.Adoption{}, err
	}
	return a, nil
}

func (r *AdoptionsRepo) GetByID(ctx context.Context, id string) (adoptions.Adoption, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return adoptions.Adoption{}, adoptions.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+adoptionColumns+`
		FROM adoptions
		WHERE id = $1
	`, id)

	a, err := scanAdoption(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return adoptions.Adoption{}, adoptions.ErrNotFound
		}
		return adoptions.Adoption{}, err
	}
	return a, nil
}

func (r *AdoptionsRepo) List(ctx context.Context) ([]adoptions.Adoption, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+adoptionColumns+`
		FROM adoptions
		ORDER BY adoption_date DESC, id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]adoptions.Adoption, 0)
	for rows.Next() {
		a, err := scanAdoption(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func scanAdoption(scan func(dest ...any) error) (adoptions.Adoption, error) {
	var (
		a     adoptions.Adoption
		story sql.NullString
	)
	if err := scan(
		&a.ID,
		&a.PetID,
		&a.ApplicationID,
		&a.AdoptedBy,
		&story,
		&a.AdoptionDate,
	); err != nil {
		return adoptions.Adoption{}, err
	}
	a.Story = fromNullString(story)
	return a, nil
}
