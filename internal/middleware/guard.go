package middleware

import (
	"net/http"

	"pet-adoption/internal/platform/apperr"
	"pet-adoption/internal/platform/httpx"
	"pet-adoption/internal/ports/auth"
)

// Decision es el resultado del guard para un request.
type Decision int

const (
	Allow Decision = iota
	Unauthenticated
	Forbidden
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case Unauthenticated:
		return "unauthenticated"
	default:
		return "forbidden"
	}
}

// Requirement es lo que exige una ruta. El zero value (AnyStaff) solo pide sesión.
type Requirement struct {
	Role auth.Role
}

var AnyStaff = Requirement{}

func RoleRequired(role auth.Role) Requirement {
	return Requirement{Role: role}
}

// Authorize es puro: no cachea ni consulta nada, se evalúa en cada request.
// El rol se compara exacto (sin jerarquía).
func Authorize(id *auth.Identity, req Requirement) Decision {
	if id == nil || id.UserID == "" {
		return Unauthenticated
	}
	if req.Role != "" && id.Role != req.Role {
		return Forbidden
	}
	return Allow
}

// Guard corta el request con 401/403 según Authorize.
func Guard(req Requirement) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var idp *auth.Identity
			if id, ok := GetIdentity(r.Context()); ok {
				idp = &id
			}

			switch Authorize(idp, req) {
			case Unauthenticated:
				httpx.WriteError(w, r, apperr.ErrUnauthenticated)
			case Forbidden:
				httpx.WriteError(w, r, apperr.ErrForbidden)
			default:
				next.ServeHTTP(w, r)
			}
		})
	}
}

// RequireAuth: cualquier usuario del staff con sesión válida.
func RequireAuth(next http.Handler) http.Handler {
	return Guard(AnyStaff)(next)
}

// RequireRole: rol exacto (p.ej. solo admin).
func RequireRole(role auth.Role) func(http.Handler) http.Handler {
	return Guard(RoleRequired(role))
}
