package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"deal_analyzer/pkg/core/assumption"
	"deal_analyzer/pkg/core/property"
	"deal_analyzer/pkg/core/strategy"
	"deal_analyzer/pkg/core/worksheet"
)

func fixture() assumption.Assumptions {
	return assumption.LoadProperty(&property.Data{
		Valuations: property.Valuations{Zestimate: 425000},
		Rentals:    property.Rentals{AverageRent: 2100, AverageDailyRate: 250},
		Market:     property.Market{PropertyTaxesAnnual: 4500, MortgageRate30Yr: 5.6},
	})
}

func TestRecalculate_PrefersServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/worksheet/ltr/calculate" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		var req worksheet.Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.InterestRatePercent != 5.6 {
			t.Errorf("interest rate on wire = %v, want whole percent 5.6", req.InterestRatePercent)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"strategy": "ltr",
			"result":   map[string]float64{"noi": 99999},
		})
	}))
	defer srv.Close()

	got, fromServer := New(srv.URL).Recalculate(context.Background(), strategy.LTR, fixture())
	if !fromServer {
		t.Fatal("expected server result")
	}
	if got["noi"] != 99999 {
		t.Errorf("noi = %v, want server value 99999", got["noi"])
	}
}

func TestRecalculate_FallsBackOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	a := fixture()
	got, fromServer := New(srv.URL).Recalculate(context.Background(), strategy.LTR, a)
	if fromServer {
		t.Fatal("expected local fallback")
	}
	want := worksheet.Flatten(strategy.LTR, a)
	if got["noi"] != want["noi"] {
		t.Errorf("noi = %v, want local %v", got["noi"], want["noi"])
	}
}

func TestRecalculate_LocalOnlyWithoutBaseURL(t *testing.T) {
	a := fixture()
	got, fromServer := New("").Recalculate(context.Background(), strategy.BRRRR, a)
	if fromServer {
		t.Fatal("expected local result with no base URL")
	}
	want := worksheet.Flatten(strategy.BRRRR, a)
	if got["cash_left_in_deal"] != want["cash_left_in_deal"] {
		t.Errorf("cash_left_in_deal = %v, want %v", got["cash_left_in_deal"], want["cash_left_in_deal"])
	}
}

func TestRecalculate_FallsBackOnUnreachableServer(t *testing.T) {
	got, fromServer := New("http://127.0.0.1:1").Recalculate(context.Background(), strategy.Wholesale, fixture())
	if fromServer {
		t.Fatal("expected local fallback")
	}
	if len(got) == 0 {
		t.Fatal("expected local result map")
	}
}
