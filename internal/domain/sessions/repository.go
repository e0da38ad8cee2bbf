package sessions

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, s Session) error
	Get(ctx context.Context, token string) (Session, error)

	// Delete es idempotente: borrar un token inexistente no es error.
	Delete(ctx context.Context, token string) error
	DeleteByUser(ctx context.Context, userID string) error

	// DeleteExpired borra las sesiones con ExpiresAt <= now y devuelve cuántas.
	DeleteExpired(ctx context.Context, now time.Time) (int, error)
}
