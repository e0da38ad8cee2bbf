package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"pet-adoption/internal/domain/pets"

	"github.com/jackc/pgx/v5/pgtype"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

const petColumns = `
	id,
	name, species, breed, age, weight, gender,
	description, health_status, image_url,
	is_adopted, created_at`

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pets (`+petColumns+`
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
	`,
		p.ID,
		p.Name,
		string(p.Species),
		p.Breed,
		p.Age,
		p.Weight,
		string(p.Gender),
		p.Description,
		nonNilTags(p.HealthStatus),
		toNullString(p.ImageURL),
		p.IsAdopted,
		p.CreatedAt,
	)
	return err
}

// Update no escribe is_adopted: ese flag solo lo cambia AdoptionsRepo.Adopt.
func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE pets
		SET
			name = $2,
			species = $3,
			breed = $4,
			age = $5,
			weight = $6,
			gender = $7,
			description = $8,
			health_status = $9,
			image_url = $10
		WHERE id = $1
	`,
		p.ID,
		p.Name,
		string(p.Species),
		p.Breed,
		p.Age,
		p.Weight,
		string(p.Gender),
		p.Description,
		nonNilTags(p.HealthStatus),
		toNullString(p.ImageURL),
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return pets.ErrNotFound
	}
	return nil
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return pets.Pet{}, pets.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+petColumns+`
		FROM pets
		WHERE id = $1
	`, id)

	p, err := scanPet(row.Scan, pgtype.NewMap())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, err
	}
	return p, nil
}

func (r *PetsRepo) List(ctx context.Context, filter pets.ListFilter) ([]pets.Pet, error) {
	q := `SELECT ` + petColumns + ` FROM pets`
	if filter.AvailableOnly {
		q += ` WHERE is_adopted = FALSE`
	}
	q += ` ORDER BY created_at ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	// pgtype.Map no es seguro para uso concurrente: uno por query
	m := pgtype.NewMap()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows.Scan, m)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PetsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM pets WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return pets.ErrNotFound
	}
	return nil
}

// scanPet lee health_status (text[]) con el SQLScanner de pgtype.
func scanPet(scan func(dest ...any) error, m *pgtype.Map) (pets.Pet, error) {
	var (
		p       pets.Pet
		species string
		gender  string
		img     sql.NullString
	)
	if err := scan(
		&p.ID,
		&p.Name,
		&species,
		&p.Breed,
		&p.Age,
		&p.Weight,
		&gender,
		&p.Description,
		m.SQLScanner(&p.HealthStatus),
		&img,
		&p.IsAdopted,
		&p.CreatedAt,
	); err != nil {
		return pets.Pet{}, err
	}

	p.Species = pets.Species(species)
	p.Gender = pets.Gender(gender)
	p.ImageURL = fromNullString(img)
	if p.HealthStatus == nil {
		p.HealthStatus = []string{}
	}
	return p, nil
}

func nonNilTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
