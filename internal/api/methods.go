package api

import (
	"net/http"

	"github.com/Harrowfield-Ag/Advisor/internal/catalog"
	"github.com/Harrowfield-Ag/Advisor/internal/scoring"
)

type MethodsHandler struct{}

func NewMethodsHandler() *MethodsHandler {
	return &MethodsHandler{}
}

// List handles GET /api/v1/methods.
func (h *MethodsHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.Profiles())
}

// Frontier handles GET /api/v1/methods/frontier: the Pareto-optimal
// subset of the catalog on efficiency, cost, environment and labor.
func (h *MethodsHandler) Frontier(w http.ResponseWriter, r *http.Request) {
	frontier := scoring.ComputeFrontier(catalog.FrontierPoints())
	if frontier == nil {
		frontier = []scoring.MethodPoint{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"frontier": frontier,
		"total":    len(catalog.Profiles()),
	})
}
