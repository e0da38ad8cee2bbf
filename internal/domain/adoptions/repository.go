package adoptions

import (
	"context"
	"fmt"

	"pet-adoption/internal/platform/apperr"
)

// Errores que devuelven los repos desde la unidad atómica de Adopt.
// Los repos también pueden devolver pets.ErrNotFound / applications.ErrNotFound.
var (
	ErrPetAlreadyAdopted   = fmt.Errorf("%w: pet already adopted", apperr.ErrConflict)
	ErrApplicationRejected = fmt.Errorf("%w: application was rejected", apperr.ErrConflict)
	ErrApplicationMismatch = fmt.Errorf("%w: application belongs to another pet", apperr.ErrInvalidInput)
)

type Repository interface {
	// Adopt es una sola unidad: revisa mascota y solicitud contra el estado actual,
	// aprueba la solicitud si sigue pending, marca la mascota como adoptada e inserta a.
	// Si algo falla no queda ningún cambio aplicado.
	Adopt(ctx context.Context, a Adoption) (Adoption, error)

	GetByID(ctx context.Context, id string) (Adoption, error)
	List(ctx context.Context) ([]Adoption, error)
}
