package staff

import (
	"time"

	"pet-adoption/internal/ports/auth"
)

// StaffUser es una cuenta del panel. PasswordHash nunca sale por la API.
type StaffUser struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	FullName     string
	Role         auth.Role
	IsActive     bool

	LastLoginAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Identity es el snapshot que se guarda en la sesión.
func (u StaffUser) Identity() auth.Identity {
	return auth.Identity{
		UserID:   u.ID,
		Username: u.Username,
		Email:    u.Email,
		FullName: u.FullName,
		Role:     u.Role,
	}
}
