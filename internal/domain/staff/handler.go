package staff

import (
	"net/http"
	"time"

	"pet-adoption/internal/middleware"
	"pet-adoption/internal/platform/httpx"
	"pet-adoption/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/staff/users", func(sr chi.Router) {
		// Solo admin (rol exacto)
		sr.Use(middleware.RequireRole(auth.RoleAdmin))

		sr.Get("/", listStaffHandler(svc))
		sr.Post("/", createStaffHandler(svc))
		sr.Get("/{userID}", getStaffHandler(svc))
		sr.Patch("/{userID}", updateStaffHandler(svc))
		sr.Post("/{userID}/deactivate", deactivateStaffHandler(svc))
	})
}

type createStaffRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password" minLength:"6" maxLength:"72"`
	FullName string `json:"fullName"`
	Role     string `json:"role" enums:"admin,staff"`
}

type updateStaffRequest struct {
	Email    *string `json:"email"`
	FullName *string `json:"fullName"`
	Role     *string `json:"role"`
	Password *string `json:"password"`
}

// StaffUserResponse nunca incluye passwordHash.
type StaffUserResponse struct {
	ID          string     `json:"id"`
	Username    string     `json:"username"`
	Email       string     `json:"email"`
	FullName    string     `json:"fullName"`
	Role        auth.Role  `json:"role"`
	IsActive    bool       `json:"isActive"`
	LastLoginAt *time.Time `json:"lastLoginAt"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// listStaffHandler godoc
// @Summary Listar usuarios del staff
// @Description Solo administradores.
// @Tags staff
// @Produce json
// @Success 200 {array} StaffUserResponse
// @Failure 401 {object} httpx.ErrorBody
// @Failure 403 {object} httpx.ErrorBody
// @Router /staff/users [get]
func listStaffHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		out := make([]StaffUserResponse, 0, len(items))
		for _, u := range items {
			out = append(out, ToStaffUserResponse(u))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

// createStaffHandler godoc
// @Summary Crear usuario del staff
// @Tags staff
// @Accept json
// @Produce json
// @Param payload body createStaffRequest true "Datos de la cuenta"
// @Success 201 {object} StaffUserResponse
// @Failure 400 {object} httpx.ErrorBody
// @Failure 403 {object} httpx.ErrorBody
// @Failure 409 {object} httpx.ErrorBody "username o email repetido"
// @Router /staff/users [post]
func createStaffHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createStaffRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		u, err := svc.Create(r.Context(), CreateInput(req))
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, ToStaffUserResponse(u))
	}
}

func getStaffHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, err := svc.GetByID(r.Context(), chi.URLParam(r, "userID"))
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, ToStaffUserResponse(u))
	}
}

// updateStaffHandler godoc
// @Summary Editar usuario del staff
// @Tags staff
// @Accept json
// @Produce json
// @Param userID path string true "ID del usuario"
// @Param payload body updateStaffRequest true "Campos a cambiar"
// @Success 200 {object} StaffUserResponse
// @Failure 400 {object} httpx.ErrorBody
// @Failure 404 {object} httpx.ErrorBody
// @Failure 409 {object} httpx.ErrorBody
// @Router /staff/users/{userID} [patch]
func updateStaffHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateStaffRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		actor, _ := middleware.GetIdentity(r.Context())
		u, err := svc.Update(r.Context(), actor.UserID, chi.URLParam(r, "userID"), UpdateInput(req))
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, ToStaffUserResponse(u))
	}
}

// deactivateStaffHandler godoc
// @Summary Desactivar usuario del staff
// @Description Deja la cuenta inactiva y cierra todas sus sesiones.
// @Tags staff
// @Produce json
// @Param userID path string true "ID del usuario"
// @Success 200 {object} StaffUserResponse
// @Failure 404 {object} httpx.ErrorBody
// @Failure 409 {object} httpx.ErrorBody "la propia cuenta"
// @Router /staff/users/{userID}/deactivate [post]
func deactivateStaffHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, _ := middleware.GetIdentity(r.Context())
		u, err := svc.Deactivate(r.Context(), actor.UserID, chi.URLParam(r, "userID"))
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, ToStaffUserResponse(u))
	}
}

func ToStaffUserResponse(u StaffUser) StaffUserResponse {
	return StaffUserResponse{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		FullName:    u.FullName,
		Role:        u.Role,
		IsActive:    u.IsActive,
		LastLoginAt: u.LastLoginAt,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
