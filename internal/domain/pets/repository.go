package pets

import "context"

type Repository interface {
	Create(ctx context.Context, p Pet) error
	Update(ctx context.Context, p Pet) error
	GetByID(ctx context.Context, id string) (Pet, error)
	List(ctx context.Context, filter ListFilter) ([]Pet, error)
	Delete(ctx context.Context, id string) error
}

// ListFilter: AvailableOnly excluye las mascotas ya adoptadas.
type ListFilter struct {
	AvailableOnly bool
}
