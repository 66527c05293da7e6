// seed_comparisons.go — standalone script to seed pairwise method comparisons via the Advisor API.
//
// Usage:
//
//	go run scripts/seed_comparisons.go -api http://localhost:8700 -client seed
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
)

type candidate struct {
	Name                string  `json:"name"`
	MethodType          string  `json:"method_type"`
	EfficiencyScore     float64 `json:"efficiency_score,omitempty"`
	CostPerAcre         float64 `json:"cost_per_acre,omitempty"`
	EnvironmentalImpact string  `json:"environmental_impact,omitempty"`
	LaborRequirement    string  `json:"labor_requirement,omitempty"`
}

type fieldConditions struct {
	SizeAcres    *float64 `json:"size_acres,omitempty"`
	SlopePercent *float64 `json:"slope_percent,omitempty"`
}

type comparisonContext struct {
	Field     *fieldConditions `json:"field,omitempty"`
	Equipment []string         `json:"equipment,omitempty"`
}

type compareRequest struct {
	MethodA *candidate         `json:"method_a"`
	MethodB *candidate         `json:"method_b"`
	Context *comparisonContext `json:"context,omitempty"`
}

func f(v float64) *float64 { return &v }

// Typical pairings an agronomist would want on file from day one.
// Bare method types let the API fill in catalog defaults.
var seedPairs = []compareRequest{
	{
		MethodA: &candidate{MethodType: "broadcast"},
		MethodB: &candidate{MethodType: "banded"},
		Context: &comparisonContext{
			Field:     &fieldConditions{SizeAcres: f(160), SlopePercent: f(2)},
			Equipment: []string{"spreader", "band_applicator"},
		},
	},
	{
		MethodA: &candidate{MethodType: "banded"},
		MethodB: &candidate{MethodType: "variable_rate"},
		Context: &comparisonContext{
			Field: &fieldConditions{SizeAcres: f(640)},
		},
	},
	{
		MethodA: &candidate{MethodType: "foliar"},
		MethodB: &candidate{MethodType: "fertigation"},
		Context: &comparisonContext{
			Field:     &fieldConditions{SizeAcres: f(40)},
			Equipment: []string{"sprayer", "irrigation_system"},
		},
	},
	{
		MethodA: &candidate{MethodType: "sidedress"},
		MethodB: &candidate{MethodType: "broadcast"},
		Context: &comparisonContext{
			Field: &fieldConditions{SizeAcres: f(120), SlopePercent: f(8)},
		},
	},
	{
		MethodA: &candidate{
			Name:            "custom broadcast",
			MethodType:      "broadcast",
			EfficiencyScore: 0.6,
			CostPerAcre:     10,
		},
		MethodB: &candidate{MethodType: "fertigation"},
	},
}

func main() {
	apiURL := flag.String("api", "http://localhost:8700", "Advisor API base URL")
	clientID := flag.String("client", "seed", "X-Client-ID header value")
	dryRun := flag.Bool("dry-run", false, "print requests without posting")
	flag.Parse()

	if *dryRun {
		for i, pair := range seedPairs {
			fmt.Printf("[%d] %s vs %s\n", i+1, pair.MethodA.MethodType, pair.MethodB.MethodType)
		}
		return
	}

	client := &http.Client{}
	created, failed := 0, 0
	for _, pair := range seedPairs {
		body, _ := json.Marshal(pair)
		req, err := http.NewRequest("POST", *apiURL+"/api/v1/comparisons", bytes.NewReader(body))
		if err != nil {
			log.Fatalf("build request: %v", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Client-ID", *clientID)

		resp, err := client.Do(req)
		if err != nil {
			log.Printf("post %s vs %s: %v", pair.MethodA.MethodType, pair.MethodB.MethodType, err)
			failed++
			continue
		}
		if resp.StatusCode != http.StatusCreated {
			log.Printf("post %s vs %s: status %d", pair.MethodA.MethodType, pair.MethodB.MethodType, resp.StatusCode)
			failed++
		} else {
			var out struct {
				ComparisonID  string `json:"comparison_id"`
				OverallWinner string `json:"overall_winner"`
			}
			_ = json.NewDecoder(resp.Body).Decode(&out)
			log.Printf("created %s: %s vs %s -> %s",
				out.ComparisonID, pair.MethodA.MethodType, pair.MethodB.MethodType, out.OverallWinner)
			created++
		}
		resp.Body.Close()
	}

	log.Printf("done: %d created, %d failed", created, failed)
}
