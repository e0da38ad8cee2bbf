package applications

import (
	"net/http"
	"strings"
	"time"

	"pet-adoption/internal/middleware"
	"pet-adoption/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/applications", func(ar chi.Router) {
		// Formulario público de adopción
		ar.Post("/", submitApplicationHandler(svc))

		ar.Group(func(sr chi.Router) {
			sr.Use(middleware.RequireAuth)
			sr.Get("/", listApplicationsHandler(svc))
			sr.Get("/{applicationID}", getApplicationHandler(svc))
			sr.Patch("/{applicationID}/status", updateStatusHandler(svc))
		})
	})
}

type submitApplicationRequest struct {
	PetID           string  `json:"petId"`
	FullName        string  `json:"fullName"`
	PhoneNumber     string  `json:"phoneNumber"`
	Email           string  `json:"email"`
	Age             int     `json:"age" minimum:"18"`
	Address         string  `json:"address"`
	LivingCondition string  `json:"livingCondition" enums:"apartment,house,house-with-yard"`
	Experience      *string `json:"experience"`
	Reason          *string `json:"reason"`
}

type updateStatusRequest struct {
	Status string `json:"status" enums:"pending,approved,rejected"`
}

type ApplicationResponse struct {
	ID              string          `json:"id"`
	PetID           string          `json:"petId"`
	FullName        string          `json:"fullName"`
	PhoneNumber     string          `json:"phoneNumber"`
	Email           string          `json:"email"`
	Age             int             `json:"age"`
	Address         string          `json:"address"`
	LivingCondition LivingCondition `json:"livingCondition"`
	Experience      *string         `json:"experience"`
	Reason          *string         `json:"reason"`
	Status          Status          `json:"status"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// submitApplicationHandler godoc
// @Summary Enviar solicitud de adopción
// @Description Formulario público. La mascota debe existir y no estar adoptada; el solicitante debe tener 18 años o más.
// @Tags applications
// @Accept json
// @Produce json
// @Param payload body submitApplicationRequest true "Datos del solicitante"
// @Success 201 {object} ApplicationResponse
// @Failure 400 {object} httpx.ErrorBody "validación por campo"
// @Failure 409 {object} httpx.ErrorBody "pet already adopted"
// @Router /applications [post]
func submitApplicationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req submitApplicationRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		a, err := svc.Submit(r.Context(), SubmitInput{
			PetID:           req.PetID,
			FullName:        req.FullName,
			PhoneNumber:     req.PhoneNumber,
			Email:           req.Email,
			Age:             req.Age,
			Address:         req.Address,
			LivingCondition: req.LivingCondition,
			Experience:      req.Experience,
			Reason:          req.Reason,
		})
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, ToApplicationResponse(a))
	}
}

// listApplicationsHandler godoc
// @Summary Listar solicitudes
// @Tags applications
// @Produce json
// @Param status query string false "pending | approved | rejected"
// @Param petId query string false "Filtrar por mascota"
// @Success 200 {array} ApplicationResponse
// @Failure 401 {object} httpx.ErrorBody
// @Router /applications [get]
func listApplicationsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := ListFilter{
			PetID:  strings.TrimSpace(r.URL.Query().Get("petId")),
			Status: Status(strings.TrimSpace(r.URL.Query().Get("status"))),
		}

		items, err := svc.List(r.Context(), filter)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		out := make([]ApplicationResponse, 0, len(items))
		for _, a := range items {
			out = append(out, ToApplicationResponse(a))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

func getApplicationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := svc.GetByID(r.Context(), chi.URLParam(r, "applicationID"))
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, ToApplicationResponse(a))
	}
}

// updateStatusHandler godoc
// @Summary Decidir solicitud
// @Description Cambia el status de una solicitud pending. Una solicitud ya aprobada o rechazada no puede volver a cambiar (409).
// @Tags applications
// @Accept json
// @Produce json
// @Param applicationID path string true "ID de la solicitud"
// @Param payload body updateStatusRequest true "Nuevo status"
// @Success 200 {object} ApplicationResponse
// @Failure 400 {object} httpx.ErrorBody
// @Failure 401 {object} httpx.ErrorBody
// @Failure 404 {object} httpx.ErrorBody
// @Failure 409 {object} httpx.ErrorBody
// @Router /applications/{applicationID}/status [patch]
func updateStatusHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateStatusRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		a, err := svc.Decide(r.Context(), chi.URLParam(r, "applicationID"), req.Status)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, ToApplicationResponse(a))
	}
}

func ToApplicationResponse(a Application) ApplicationResponse {
	return ApplicationResponse{
		ID:              a.ID,
		PetID:           a.PetID,
		FullName:        a.FullName,
		PhoneNumber:     a.PhoneNumber,
		Email:           a.Email,
		Age:             a.Age,
		Address:         a.Address,
		LivingCondition: a.LivingCondition,
		Experience:      a.Experience,
		Reason:          a.Reason,
		Status:          a.Status,
		CreatedAt:       a.CreatedAt,
	}
}
