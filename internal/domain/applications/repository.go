package applications

import "context"

type Repository interface {
	Create(ctx context.Context, a Application) error
	GetByID(ctx context.Context, id string) (Application, error)
	List(ctx context.Context, filter ListFilter) ([]Application, error)

	// UpdateStatus es compare-and-set: solo cambia si el status actual es from.
	// Si no coincide devuelve un error que envuelve apperr.ErrConflict.
	UpdateStatus(ctx context.Context, id string, from, to Status) (Application, error)
}

type ListFilter struct {
	PetID  string
	Status Status
}
