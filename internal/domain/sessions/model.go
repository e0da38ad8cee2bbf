package sessions

import (
	"time"

	"pet-adoption/internal/ports/auth"
)

// Session liga un token opaco a un snapshot de identidad.
// El TTL queda fijo al crearla (no hay renovación).
type Session struct {
	Token     string
	UserID    string
	Identity  auth.Identity
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired usa "now >= ExpiresAt": en el instante exacto ya no es válida.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
