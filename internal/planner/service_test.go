package planner_test

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/finlab/finance-engine/internal/planner"
)

func newTestRouter() chi.Router {
	r := chi.NewRouter()
	r.Mount("/api/v1/calc", planner.NewService().Routes())
	return r
}

func doCalc(t *testing.T, router chi.Router, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest("POST", "/api/v1/calc"+path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCompound_KnownValue(t *testing.T) {
	router := newTestRouter()

	w := doCalc(t, router, "/compound", planner.CompoundRequest{
		Principal: 1000, AnnualRate: 5, Years: 1, Frequency: 12,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		FinalAmount    float64 `json:"final_amount"`
		InterestEarned float64 `json:"interest_earned"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)

	if math.Abs(resp.FinalAmount-1051.16) > 0.01 {
		t.Errorf("expected final ~1051.16, got %.4f", resp.FinalAmount)
	}
	if math.Abs(resp.InterestEarned-51.16) > 0.01 {
		t.Errorf("expected interest ~51.16, got %.4f", resp.InterestEarned)
	}
}

func TestCompound_InvalidInput(t *testing.T) {
	router := newTestRouter()

	w := doCalc(t, router, "/compound", planner.CompoundRequest{
		Principal: 1000, AnnualRate: 5, Years: 1, // frequency missing
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	var resp map[string]string
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["error"] == "" {
		t.Error("expected a JSON error message")
	}
}

func TestCompound_MalformedBody(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest("POST", "/api/v1/calc/compound", bytes.NewReader([]byte("{not json")))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestLoan_KnownValue(t *testing.T) {
	router := newTestRouter()

	w := doCalc(t, router, "/loan", planner.LoanRequest{Principal: 10000, AnnualRate: 6, Years: 1})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		MonthlyPayment float64 `json:"monthly_payment"`
		TotalInterest  float64 `json:"total_interest"`
		Schedule       []struct {
			Month int `json:"month"`
		} `json:"schedule"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)

	if math.Abs(resp.MonthlyPayment-860.66) > 0.01 {
		t.Errorf("expected payment ~860.66, got %.4f", resp.MonthlyPayment)
	}
	if len(resp.Schedule) != 12 {
		t.Errorf("expected 12 schedule rows, got %d", len(resp.Schedule))
	}
}

func TestCAGR_KnownValue(t *testing.T) {
	router := newTestRouter()

	w := doCalc(t, router, "/cagr", planner.GrowthRequest{InitialValue: 1000, FinalValue: 2000, Years: 10})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		CAGRPct float64 `json:"cagr_pct"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)

	if math.Abs(resp.CAGRPct-7.177) > 0.01 {
		t.Errorf("expected CAGR ~7.177%%, got %.4f%%", resp.CAGRPct)
	}
}

func TestROI_Loss(t *testing.T) {
	router := newTestRouter()

	w := doCalc(t, router, "/roi", planner.GrowthRequest{InitialValue: 1000, FinalValue: 800, Years: 1})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		ROIPct float64 `json:"roi_pct"`
		Profit bool    `json:"profit"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)

	if resp.ROIPct != -20 {
		t.Errorf("expected ROI -20%%, got %.2f%%", resp.ROIPct)
	}
	if resp.Profit {
		t.Error("expected the loss flag")
	}
}

func TestMortgage_Escrow(t *testing.T) {
	router := newTestRouter()

	w := doCalc(t, router, "/mortgage", map[string]float64{
		"home_price":   300000,
		"down_payment": 60000,
		"years":        30,
		"annual_rate":  4,
		"property_tax": 3600,
		"insurance":    1200,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		TotalMonthly         float64 `json:"total_monthly"`
		PrincipalAndInterest float64 `json:"principal_and_interest"`
		MonthlyTax           float64 `json:"monthly_tax"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)

	if math.Abs(resp.PrincipalAndInterest-1145.80) > 0.05 {
		t.Errorf("expected P&I ~1145.80, got %.4f", resp.PrincipalAndInterest)
	}
	if resp.MonthlyTax != 300 {
		t.Errorf("expected monthly tax 300, got %.2f", resp.MonthlyTax)
	}
	if math.Abs(resp.TotalMonthly-(resp.PrincipalAndInterest+400)) > 1e-9 {
		t.Errorf("total must include escrow, got %.4f", resp.TotalMonthly)
	}
}

func TestRetirement_AgeOrderRejected(t *testing.T) {
	router := newTestRouter()

	w := doCalc(t, router, "/retirement", planner.RetirementRequest{
		CurrentAge: 70, RetirementAge: 65, AnnualRate: 7,
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestSavingsGoal_KnownValue(t *testing.T) {
	router := newTestRouter()

	w := doCalc(t, router, "/savings-goal", planner.SavingsGoalRequest{
		Goal: 12000, Current: 0, Years: 2, AnnualRate: 0,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		MonthlyNeeded float64 `json:"monthly_needed"`
		AmountToSave  float64 `json:"amount_to_save"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)

	if resp.MonthlyNeeded != 500 {
		t.Errorf("expected 500/month at zero rate, got %.4f", resp.MonthlyNeeded)
	}
	if resp.AmountToSave != 12000 {
		t.Errorf("expected amount to save 12000, got %.2f", resp.AmountToSave)
	}
}

func TestSavingsPayment_Solves(t *testing.T) {
	router := newTestRouter()

	w := doCalc(t, router, "/savings-payment", planner.SavingsPaymentRequest{
		Goal: 10000, Current: 2000, AnnualRate: 5, Months: 24,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp map[string]float64
	json.Unmarshal(w.Body.Bytes(), &resp)

	payment := resp["monthly_payment"]
	if payment <= 0 {
		t.Fatalf("expected a positive payment, got %.4f", payment)
	}
	// Depositing the solved payment must reach the goal.
	i := 0.05 / 12
	factor := math.Pow(1+i, 24)
	got := 2000*factor + payment*(factor-1)/i
	if math.Abs(got-10000) > 0.01 {
		t.Errorf("payment %.4f reaches %.4f, expected 10000", payment, got)
	}
}
