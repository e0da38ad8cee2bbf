package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"pet-adoption/internal/ports/auth"
)

type ctxKey string

const identityKey ctxKey = "identity"

// DefaultSessionCookie es el nombre de cookie si la config no trae uno.
const DefaultSessionCookie = "petconnect_session"

// SessionCookie describe la cookie que transporta el token opaco de sesión.
type SessionCookie struct {
	Name   string
	Secure bool
	TTL    time.Duration
}

func (c SessionCookie) name() string {
	if strings.TrimSpace(c.Name) == "" {
		return DefaultSessionCookie
	}
	return c.Name
}

// Token lee el token de sesión del request ("" si no viene).
func (c SessionCookie) Token(r *http.Request) string {
	ck, err := r.Cookie(c.name())
	if err != nil {
		return ""
	}
	return strings.TrimSpace(ck.Value)
}

// Set escribe la cookie de sesión (HttpOnly, SameSite=Lax, Max-Age = TTL).
func (c SessionCookie) Set(w http.ResponseWriter, token string, expiresAt time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.name(),
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		MaxAge:   int(c.TTL.Seconds()),
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Clear borra la cookie en el cliente.
func (c SessionCookie) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.name(),
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// AuthContext:
// - Si viene cookie de sesión => intenta Resolve() y setea la identidad en el contexto.
// - Token inválido/expirado o sin cookie => el request sigue sin identidad.
// - No corta nunca: RequireAuth / RequireRole deciden 401/403.
func AuthContext(resolver auth.SessionResolver, cookie SessionCookie) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := cookie.Token(r)
			if token == "" || resolver == nil {
				next.ServeHTTP(w, r)
				return
			}

			id, ok := resolver.Resolve(r.Context(), token)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), id)))
		})
	}
}

func WithIdentity(ctx context.Context, id auth.Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

func GetIdentity(ctx context.Context) (auth.Identity, bool) {
	v := ctx.Value(identityKey)
	if v == nil {
		return auth.Identity{}, false
	}
	id, ok := v.(auth.Identity)
	if !ok || strings.TrimSpace(id.UserID) == "" {
		return auth.Identity{}, false
	}
	return id, true
}
