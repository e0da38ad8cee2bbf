package bcrypt

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost equivale a los 12 rounds que usaba el backend anterior.
const DefaultCost = 12

// Hasher implementa auth.PasswordHasher con bcrypt.
type Hasher struct {
	cost int
}

// NewHasher acepta cost fuera de rango y lo normaliza a DefaultCost.
// Los tests usan bcrypt.MinCost para no pagar ~250ms por hash.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &Hasher{cost: cost}
}

func (h *Hasher) Cost() int { return h.cost }

func (h *Hasher) Hash(plaintext string) (string, error) {
	if plaintext == "" {
		return "", errors.New("bcrypt: empty password")
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt: hash password: %w", err)
	}
	return string(b), nil
}

// Verify compara en tiempo constante (lo hace bcrypt). Hash mal formado => false.
func (h *Hasher) Verify(plaintext, hash string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
