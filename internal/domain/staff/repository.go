package staff

import (
	"context"
	"fmt"
	"time"

	"pet-adoption/internal/platform/apperr"
)

// Los repos devuelven estos errores cuando se viola la unicidad.
var (
	ErrUsernameTaken = fmt.Errorf("%w: username already exists", apperr.ErrConflict)
	ErrEmailTaken    = fmt.Errorf("%w: email already exists", apperr.ErrConflict)
)

type Repository interface {
	Create(ctx context.Context, u StaffUser) error
	Update(ctx context.Context, u StaffUser) error
	GetByID(ctx context.Context, id string) (StaffUser, error)

	// GetByUsername compara exacto (case-sensitive).
	GetByUsername(ctx context.Context, username string) (StaffUser, error)
	List(ctx context.Context) ([]StaffUser, error)

	RecordLogin(ctx context.Context, id string, at time.Time) error
}
