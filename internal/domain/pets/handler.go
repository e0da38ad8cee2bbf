package pets

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"pet-adoption/internal/middleware"
	"pet-adoption/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets", func(pr chi.Router) {
		// Catálogo público
		pr.Get("/", listAvailableHandler(svc))

		// Staff (cualquier rol)
		pr.Group(func(sr chi.Router) {
			sr.Use(middleware.RequireAuth)
			sr.Get("/all", listAllHandler(svc))
			sr.Post("/", createPetHandler(svc))
			sr.Patch("/{petID}", updatePetHandler(svc))
			sr.Delete("/{petID}", deletePetHandler(svc))
		})

		pr.Get("/{petID}", getPetHandler(svc))
	})
}

// createPetRequest son los campos editables de una mascota (sin id/createdAt/isAdopted).
type createPetRequest struct {
	Name         string   `json:"name"`
	Species      string   `json:"species" enums:"dog,cat,rabbit,other"`
	Breed        string   `json:"breed"`
	Age          string   `json:"age"`
	Weight       string   `json:"weight"`
	Gender       string   `json:"gender" enums:"male,female"`
	Description  string   `json:"description"`
	HealthStatus []string `json:"healthStatus"`
	ImageURL     *string  `json:"imageUrl"`
}

type updatePetRequest struct {
	Name         *string   `json:"name"`
	Species      *string   `json:"species"`
	Breed        *string   `json:"breed"`
	Age          *string   `json:"age"`
	Weight       *string   `json:"weight"`
	Gender       *string   `json:"gender"`
	Description  *string   `json:"description"`
	HealthStatus *[]string `json:"healthStatus"`
	ImageURL     *string   `json:"imageUrl"` // null => limpiar (ver updatePetHandler)
}

type PetResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Species      Species   `json:"species"`
	Breed        string    `json:"breed"`
	Age          string    `json:"age"`
	Weight       string    `json:"weight"`
	Gender       Gender    `json:"gender"`
	Description  string    `json:"description"`
	HealthStatus []string  `json:"healthStatus"`
	ImageURL     *string   `json:"imageUrl"`
	IsAdopted    bool      `json:"isAdopted"`
	CreatedAt    time.Time `json:"createdAt"`
}

// listAvailableHandler godoc
// @Summary Catálogo público de mascotas
// @Description Lista solo las mascotas que todavía no fueron adoptadas. No requiere sesión.
// @Tags pets
// @Produce json
// @Success 200 {array} PetResponse
// @Failure 500 {object} httpx.ErrorBody
// @Router /pets [get]
func listAvailableHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListAvailable(r.Context())
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toPetResponses(items))
	}
}

func listAllHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListAll(r.Context())
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toPetResponses(items))
	}
}

// getPetHandler godoc
// @Summary Detalle de mascota
// @Tags pets
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Success 200 {object} PetResponse
// @Failure 404 {object} httpx.ErrorBody
// @Router /pets/{petID} [get]
func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.GetByID(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, ToPetResponse(p))
	}
}

// createPetHandler godoc
// @Summary Registrar mascota
// @Description Crea una mascota disponible para adopción. Requiere sesión de staff.
// @Tags pets
// @Accept json
// @Produce json
// @Param payload body createPetRequest true "Datos de la mascota"
// @Success 201 {object} PetResponse
// @Failure 400 {object} httpx.ErrorBody
// @Failure 401 {object} httpx.ErrorBody
// @Router /pets [post]
func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPetRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		p, err := svc.Create(r.Context(), CreateInput{
			Name:         req.Name,
			Species:      req.Species,
			Breed:        req.Breed,
			Age:          req.Age,
			Weight:       req.Weight,
			Gender:       req.Gender,
			Description:  req.Description,
			HealthStatus: req.HealthStatus,
			ImageURL:     req.ImageURL,
		})
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, ToPetResponse(p))
	}
}

// updatePetHandler aplica un PATCH parcial. Para imageUrl hay que distinguir
// "no enviado" de null (= limpiar), así que primero se decodifica a map.
func updatePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var raw map[string]json.RawMessage
		if err := httpx.DecodeJSON(r, &raw); err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		// Re-marshal y decode estricto al struct para reutilizar tags
		var req updatePetRequest
		{
			b, _ := json.Marshal(raw)
			dec := json.NewDecoder(bytes.NewReader(b))
			dec.DisallowUnknownFields()
			if err := dec.Decode(&req); err != nil {
				httpx.WriteErrorCode(w, http.StatusBadRequest, httpx.CodeValidation, "invalid json")
				return
			}
		}

		img := OptionalString{}
		if v, ok := raw["imageUrl"]; ok {
			img.Present = true
			if string(v) != "null" {
				img.Value = req.ImageURL
			}
		}

		p, err := svc.Update(r.Context(), chi.URLParam(r, "petID"), UpdateInput{
			Name:         req.Name,
			Species:      req.Species,
			Breed:        req.Breed,
			Age:          req.Age,
			Weight:       req.Weight,
			Gender:       req.Gender,
			Description:  req.Description,
			HealthStatus: req.HealthStatus,
			ImageURL:     img,
		})
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, ToPetResponse(p))
	}
}

func deletePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "petID")); err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteMessage(w, http.StatusOK, "pet deleted")
	}
}

func ToPetResponse(p Pet) PetResponse {
	tags := p.HealthStatus
	if tags == nil {
		tags = []string{}
	}
	return PetResponse{
		ID:           p.ID,
		Name:         p.Name,
		Species:      p.Species,
		Breed:        p.Breed,
		Age:          p.Age,
		Weight:       p.Weight,
		Gender:       p.Gender,
		Description:  p.Description,
		HealthStatus: tags,
		ImageURL:     p.ImageURL,
		IsAdopted:    p.IsAdopted,
		CreatedAt:    p.CreatedAt,
	}
}

func toPetResponses(items []Pet) []PetResponse {
	out := make([]PetResponse, 0, len(items))
	for _, p := range items {
		out = append(out, ToPetResponse(p))
	}
	return out
}
