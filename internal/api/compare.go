package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/Harrowfield-Ag/Advisor/internal/catalog"
	"github.com/Harrowfield-Ag/Advisor/internal/events"
	"github.com/Harrowfield-Ag/Advisor/internal/scoring"
	"github.com/Harrowfield-Ag/Advisor/internal/store"
)

type CompareHandler struct {
	store  store.Store
	events events.Client
	engine *scoring.Engine
	logger *slog.Logger
}

func NewCompareHandler(s store.Store, ev events.Client, e *scoring.Engine, logger *slog.Logger) *CompareHandler {
	return &CompareHandler{store: s, events: ev, engine: e, logger: logger}
}

type CompareRequest struct {
	MethodA  *scoring.Candidate `json:"method_a"`
	MethodB  *scoring.Candidate `json:"method_b"`
	Context  *scoring.Context   `json:"context,omitempty"`
	Criteria []string           `json:"criteria,omitempty"`
	Weights  map[string]float64 `json:"weights,omitempty"`
}

type CompareResponse struct {
	ComparisonID string `json:"comparison_id"`
	*scoring.MultiCriteriaAnalysis
}

// Create handles POST /api/v1/comparisons.
func (h *CompareHandler) Create(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req CompareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		comparisonErrors.WithLabelValues("bad_request").Inc()
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.MethodA == nil || req.MethodB == nil {
		comparisonErrors.WithLabelValues("bad_request").Inc()
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "method_a and method_b required"})
		return
	}
	resolveCandidate(req.MethodA)
	resolveCandidate(req.MethodB)

	criteria, weights, err := parseCriteriaAndWeights(req.Criteria, req.Weights)
	if err != nil {
		comparisonErrors.WithLabelValues("validation").Inc()
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	analysis, err := h.engine.Compare(req.MethodA, req.MethodB, req.Context, criteria, weights)
	if err != nil {
		status := http.StatusInternalServerError
		kind := "internal"
		if errors.Is(err, scoring.ErrUnknownCriterion) ||
			errors.Is(err, scoring.ErrInvalidWeights) ||
			errors.Is(err, scoring.ErrEmptyAnalysis) {
			status = http.StatusBadRequest
			kind = "validation"
		}
		comparisonErrors.WithLabelValues(kind).Inc()
		writeJSON(w, status, map[string]string{"error": err.Error()})
		return
	}

	record := &store.Comparison{
		MethodA:                req.MethodA.Name,
		MethodB:                req.MethodB.Name,
		Winner:                 analysis.OverallWinner,
		RecommendationStrength: analysis.RecommendationStrength,
		RequestedBy:            r.Header.Get("X-Client-ID"),
		Context:                toJSONMap(req.Context),
		Analysis:               toJSONMap(analysis),
	}
	if err := h.store.CreateComparison(r.Context(), record); err != nil {
		comparisonErrors.WithLabelValues("store").Inc()
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	if h.events != nil {
		sensitive := 0
		for _, res := range analysis.Sensitivity {
			if res.Sensitive {
				sensitive++
			}
		}
		_ = h.events.Publish(events.SubjectComparisonCompleted(record.ID.String()), events.ComparisonCompletedEvent{
			ComparisonID:           record.ID.String(),
			MethodA:                record.MethodA,
			MethodB:                record.MethodB,
			Winner:                 record.Winner,
			RecommendationStrength: record.RecommendationStrength,
			SensitiveCriteria:      sensitive,
		})
	}

	comparisonsTotal.WithLabelValues(analysis.OverallWinner).Inc()
	comparisonDuration.Observe(time.Since(start).Seconds())

	writeJSON(w, http.StatusCreated, CompareResponse{
		ComparisonID:          record.ID.String(),
		MultiCriteriaAnalysis: analysis,
	})
}

// resolveCandidate backfills scoring fields from the method catalog
// when the caller only names a known method type.
func resolveCandidate(c *scoring.Candidate) {
	if c.EfficiencyScore != 0 || c.CostPerAcre != 0 {
		return
	}
	profile, ok := catalog.Lookup(c.MethodType)
	if !ok {
		return
	}
	name := c.Name
	*c = *profile.Candidate()
	if name != "" {
		c.Name = name
	}
}

func parseCriteriaAndWeights(rawCriteria []string, rawWeights map[string]float64) ([]scoring.Criterion, scoring.Weights, error) {
	var criteria []scoring.Criterion
	for _, s := range rawCriteria {
		c, err := scoring.ParseCriterion(s)
		if err != nil {
			return nil, nil, err
		}
		criteria = append(criteria, c)
	}

	var weights scoring.Weights
	if rawWeights != nil {
		weights = make(scoring.Weights, len(rawWeights))
		for s, v := range rawWeights {
			c, err := scoring.ParseCriterion(s)
			if err != nil {
				return nil, nil, err
			}
			weights[c] = v
		}
	}
	return criteria, weights, nil
}

// toJSONMap round-trips a value through JSON for storage as a
// document column.
func toJSONMap(v interface{}) map[string]interface{} {
	if v == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	var out map[string]interface{}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
