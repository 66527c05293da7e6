package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Harrowfield-Ag/Advisor/internal/store"
)

type ComparisonsHandler struct {
	store store.Store
}

func NewComparisonsHandler(s store.Store) *ComparisonsHandler {
	return &ComparisonsHandler{store: s}
}

// List handles GET /api/v1/comparisons.
func (h *ComparisonsHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := store.ComparisonFilter{
		Winner: r.URL.Query().Get("winner"),
		Method: r.URL.Query().Get("method"),
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filter.Limit = n
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filter.Offset = n
		}
	}

	comparisons, err := h.store.ListComparisons(r.Context(), filter)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if comparisons == nil {
		comparisons = []*store.Comparison{}
	}
	writeJSON(w, http.StatusOK, comparisons)
}

// Get handles GET /api/v1/comparisons/{id}.
func (h *ComparisonsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	c, err := h.store.GetComparison(r.Context(), id)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if c == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "comparison not found"})
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// Explain returns the scoring breakdown for a stored comparison.
// GET /api/v1/scoring/explain/{id}
func (h *ComparisonsHandler) Explain(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	c, err := h.store.GetComparison(r.Context(), id)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if c == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "comparison not found"})
		return
	}

	resp := map[string]interface{}{
		"comparison_id":           c.ID,
		"method_a":                c.MethodA,
		"method_b":                c.MethodB,
		"overall_winner":          c.Winner,
		"recommendation_strength": c.RecommendationStrength,
	}
	if c.Analysis != nil {
		resp["winner_by_criteria"] = c.Analysis["winner_by_criteria"]
		resp["criteria_results"] = c.Analysis["criteria_results"]
		resp["sensitivity_analysis"] = c.Analysis["sensitivity_analysis"]
	}
	writeJSON(w, http.StatusOK, resp)
}
