package sessions

import (
	"net/http"

	"pet-adoption/internal/middleware"
	"pet-adoption/internal/platform/apperr"
	"pet-adoption/internal/platform/httpx"
	"pet-adoption/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, cookie middleware.SessionCookie) {
	r.Route("/auth", func(ar chi.Router) {
		ar.Post("/login", loginHandler(svc, cookie))
		ar.Post("/logout", logoutHandler(svc, cookie))
		ar.With(middleware.RequireAuth).Get("/me", meHandler())
	})
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Message string        `json:"message"`
	User    auth.Identity `json:"user"`
}

type meResponse struct {
	User auth.Identity `json:"user"`
}

// loginHandler godoc
// @Summary Iniciar sesión
// @Description Valida usuario/contraseña y devuelve la cookie de sesión (HttpOnly).
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body loginRequest true "Credenciales"
// @Success 200 {object} loginResponse
// @Failure 400 {object} httpx.ErrorBody
// @Failure 401 {object} httpx.ErrorBody "INVALID_CREDENTIALS"
// @Router /auth/login [post]
func loginHandler(svc *Service, cookie middleware.SessionCookie) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		v := apperr.NewValidationError()
		if req.Username == "" {
			v.Add("username", "required")
		}
		if req.Password == "" {
			v.Add("password", "required")
		}
		if err := v.OrNil(); err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		sess, err := svc.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		cookie.TTL = svc.TTL()
		cookie.Set(w, sess.Token, sess.ExpiresAt)
		httpx.WriteJSON(w, http.StatusOK, loginResponse{
			Message: "login successful",
			User:    sess.Identity,
		})
	}
}

// logoutHandler godoc
// @Summary Cerrar sesión
// @Description Idempotente: sin cookie o con una sesión ya cerrada también responde 200.
// @Tags auth
// @Produce json
// @Success 200 {object} httpx.MessageBody
// @Router /auth/logout [post]
func logoutHandler(svc *Service, cookie middleware.SessionCookie) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Logout(r.Context(), cookie.Token(r)); err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		cookie.Clear(w)
		httpx.WriteMessage(w, http.StatusOK, "logout successful")
	}
}

// meHandler godoc
// @Summary Usuario actual
// @Tags auth
// @Produce json
// @Success 200 {object} meResponse
// @Failure 401 {object} httpx.ErrorBody
// @Router /auth/me [get]
func meHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := middleware.GetIdentity(r.Context())
		if !ok {
			httpx.WriteError(w, r, apperr.ErrUnauthenticated)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, meResponse{User: id})
	}
}
