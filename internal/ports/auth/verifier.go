package auth

import "context"

// PasswordHasher es una función one-way con verificación.
// Verify devuelve false (nunca error) si el hash está mal formado.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}

// SessionResolver traduce un token de sesión opaco a una identidad.
// Lo implementa sessions.Service; el middleware depende solo de esto.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (Identity, bool)
}
