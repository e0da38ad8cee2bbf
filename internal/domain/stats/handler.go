package stats

import (
	"net/http"

	"pet-adoption/internal/middleware"
	"pet-adoption/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.With(middleware.RequireAuth).Get("/stats", statsHandler(svc))
}

type StatsResponse struct {
	TotalAdopted        int `json:"totalAdopted"`
	CurrentPets         int `json:"currentPets"`
	ActivePets          int `json:"activePets"`
	HappyFamilies       int `json:"happyFamilies"`
	TodayApplications   int `json:"todayApplications"`
	MonthlyAdoptions    int `json:"monthlyAdoptions"`
	PendingApplications int `json:"pendingApplications"`
	PendingPets         int `json:"pendingPets"`
}

// statsHandler godoc
// @Summary Estadísticas del dashboard
// @Description "Hoy" y "este mes" se calculan en la zona horaria configurada (BUSINESS_TIMEZONE).
// @Tags stats
// @Produce json
// @Success 200 {object} StatsResponse
// @Failure 401 {object} httpx.ErrorBody
// @Router /stats [get]
func statsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st, err := svc.Compute(r.Context())
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, StatsResponse(st))
	}
}
