package adoptions

import (
	"net/http"
	"time"

	"pet-adoption/internal/middleware"
	"pet-adoption/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/adoptions", func(ar chi.Router) {
		ar.Use(middleware.RequireAuth)
		ar.Get("/", listAdoptionsHandler(svc))
		ar.Post("/", recordAdoptionHandler(svc))
		ar.Get("/{adoptionID}", getAdoptionHandler(svc))
	})

	// Vive bajo /applications pero es una operación de adopción
	r.With(middleware.RequireAuth).Post("/applications/{applicationID}/approve", approveHandler(svc))
}

type recordAdoptionRequest struct {
	PetID         string  `json:"petId"`
	ApplicationID string  `json:"applicationId"`
	AdoptedBy     string  `json:"adoptedBy"`
	Story         *string `json:"story"`
}

type approveRequest struct {
	Story *string `json:"story"`
}

type AdoptionResponse struct {
	ID            string    `json:"id"`
	PetID         string    `json:"petId"`
	ApplicationID string    `json:"applicationId"`
	AdoptedBy     string    `json:"adoptedBy"`
	Story         *string   `json:"story"`
	AdoptionDate  time.Time `json:"adoptionDate"`
}

// listAdoptionsHandler godoc
// @Summary Listar adopciones
// @Tags adoptions
// @Produce json
// @Success 200 {array} AdoptionResponse
// @Failure 401 {object} httpx.ErrorBody
// @Router /adoptions [get]
func listAdoptionsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		out := make([]AdoptionResponse, 0, len(items))
		for _, a := range items {
			out = append(out, ToAdoptionResponse(a))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

func getAdoptionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := svc.GetByID(r.Context(), chi.URLParam(r, "adoptionID"))
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, ToAdoptionResponse(a))
	}
}

// recordAdoptionHandler godoc
// @Summary Registrar adopción
// @Description Marca la mascota como adoptada y aprueba la solicitud si seguía pending. adoptedBy es opcional (se usa el nombre del solicitante).
// @Tags adoptions
// @Accept json
// @Produce json
// @Param payload body recordAdoptionRequest true "Referencias de la adopción"
// @Success 201 {object} AdoptionResponse
// @Failure 400 {object} httpx.ErrorBody
// @Failure 401 {object} httpx.ErrorBody
// @Failure 409 {object} httpx.ErrorBody "mascota ya adoptada o solicitud rechazada"
// @Router /adoptions [post]
func recordAdoptionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req recordAdoptionRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		a, err := svc.RecordAdoption(r.Context(), RecordInput{
			PetID:         req.PetID,
			ApplicationID: req.ApplicationID,
			AdoptedBy:     req.AdoptedBy,
			Story:         req.Story,
		})
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, ToAdoptionResponse(a))
	}
}

// approveHandler godoc
// @Summary Aprobar solicitud y adoptar
// @Description Aprueba la solicitud y crea la adopción en una sola operación. El body es opcional.
// @Tags applications
// @Accept json
// @Produce json
// @Param applicationID path string true "ID de la solicitud"
// @Param payload body approveRequest false "Historia opcional"
// @Success 201 {object} AdoptionResponse
// @Failure 401 {object} httpx.ErrorBody
// @Failure 404 {object} httpx.ErrorBody
// @Failure 409 {object} httpx.ErrorBody
// @Router /applications/{applicationID}/approve [post]
func approveHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req approveRequest
		if r.ContentLength != 0 {
			if err := httpx.DecodeJSON(r, &req); err != nil {
				httpx.WriteError(w, r, err)
				return
			}
		}

		a, err := svc.ApproveAndAdopt(r.Context(), chi.URLParam(r, "applicationID"), req.Story)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, ToAdoptionResponse(a))
	}
}

func ToAdoptionResponse(a Adoption) AdoptionResponse {
	return AdoptionResponse{
		ID:            a.ID,
		PetID:         a.PetID,
		ApplicationID: a.ApplicationID,
		AdoptedBy:     a.AdoptedBy,
		Story:         a.Story,
		AdoptionDate:  a.AdoptionDate,
	}
}
