// Package planner provides the HTTP handlers for the financial
// calculators: compound and simple interest, growth rates, loans,
// mortgages, investment projections, retirement, and savings goals.
package planner

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/finlab/finance-engine/internal/annuity"
	"github.com/finlab/finance-engine/internal/metrics"
	"github.com/finlab/finance-engine/internal/projection"
)

// Service handles calculator requests. Handlers are pure request/response;
// all state lives in the projection inputs.
type Service struct{}

// NewService creates a new planner service.
func NewService() *Service {
	return &Service{}
}

// Routes mounts the calculator endpoints on a fresh router.
func (s *Service) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/compound", s.CompoundInterest)
	r.Post("/simple", s.SimpleInterest)
	r.Post("/cagr", s.CAGR)
	r.Post("/roi", s.ROI)
	r.Post("/loan", s.Loan)
	r.Post("/mortgage", s.Mortgage)
	r.Post("/investment", s.Investment)
	r.Post("/retirement", s.Retirement)
	r.Post("/savings-goal", s.SavingsGoal)
	r.Post("/savings-payment", s.SavingsPayment)
	return r
}

// --- Request types ---

// CompoundRequest is the JSON body for POST /compound.
type CompoundRequest struct {
	Principal    float64 `json:"principal"`
	AnnualRate   float64 `json:"annual_rate"` // percent, e.g. 5 for 5%
	Years        float64 `json:"years"`
	Frequency    int     `json:"frequency"` // compounding periods per year
	Contribution float64 `json:"contribution"`
}

// SimpleRequest is the JSON body for POST /simple.
type SimpleRequest struct {
	Principal  float64 `json:"principal"`
	AnnualRate float64 `json:"annual_rate"`
	Years      float64 `json:"years"`
}

// GrowthRequest is the JSON body for POST /cagr and POST /roi.
type GrowthRequest struct {
	InitialValue float64 `json:"initial_value"`
	FinalValue   float64 `json:"final_value"`
	Years        float64 `json:"years"`
}

// LoanRequest is the JSON body for POST /loan.
type LoanRequest struct {
	Principal  float64 `json:"principal"`
	AnnualRate float64 `json:"annual_rate"`
	Years      float64 `json:"years"`
}

// InvestmentRequest is the JSON body for POST /investment.
type InvestmentRequest struct {
	InitialInvestment   float64 `json:"initial_investment"`
	MonthlyContribution float64 `json:"monthly_contribution"`
	AnnualRate          float64 `json:"annual_rate"`
	Years               float64 `json:"years"`
}

// RetirementRequest is the JSON body for POST /retirement.
type RetirementRequest struct {
	CurrentAge          float64 `json:"current_age"`
	RetirementAge       float64 `json:"retirement_age"`
	CurrentSavings      float64 `json:"current_savings"`
	MonthlyContribution float64 `json:"monthly_contribution"`
	AnnualRate          float64 `json:"annual_rate"`
}

// SavingsGoalRequest is the JSON body for POST /savings-goal.
type SavingsGoalRequest struct {
	Goal       float64 `json:"goal"`
	Current    float64 `json:"current"`
	Years      float64 `json:"years"`
	AnnualRate float64 `json:"annual_rate"`
}

// SavingsPaymentRequest is the JSON body for POST /savings-payment.
type SavingsPaymentRequest struct {
	Goal       float64 `json:"goal"`
	Current    float64 `json:"current"`
	AnnualRate float64 `json:"annual_rate"`
	Months     int     `json:"months"`
}

// --- HTTP Handlers ---

// CompoundInterest handles POST /api/v1/calc/compound
func (s *Service) CompoundInterest(w http.ResponseWriter, r *http.Request) {
	var req CompoundRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := projection.CompoundInterest(projection.Input{
		Principal:    req.Principal,
		AnnualRate:   req.AnnualRate / 100,
		Years:        req.Years,
		Frequency:    req.Frequency,
		Contribution: req.Contribution,
	})
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	metrics.ProjectionsTotal.WithLabelValues("compound").Inc()
	writeJSON(w, result)
}

// SimpleInterest handles POST /api/v1/calc/simple
func (s *Service) SimpleInterest(w http.ResponseWriter, r *http.Request) {
	var req SimpleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := projection.SimpleInterest(req.Principal, req.AnnualRate/100, req.Years)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	metrics.ProjectionsTotal.WithLabelValues("simple").Inc()
	writeJSON(w, result)
}

// CAGR handles POST /api/v1/calc/cagr
func (s *Service) CAGR(w http.ResponseWriter, r *http.Request) {
	var req GrowthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := projection.CAGR(req.InitialValue, req.FinalValue, req.Years)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	metrics.ProjectionsTotal.WithLabelValues("cagr").Inc()
	writeJSON(w, result)
}

// ROI handles POST /api/v1/calc/roi
func (s *Service) ROI(w http.ResponseWriter, r *http.Request) {
	var req GrowthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := projection.ROI(req.InitialValue, req.FinalValue, req.Years)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	metrics.ProjectionsTotal.WithLabelValues("roi").Inc()
	writeJSON(w, result)
}

// Loan handles POST /api/v1/calc/loan
func (s *Service) Loan(w http.ResponseWriter, r *http.Request) {
	var req LoanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := projection.Loan(req.Principal, req.AnnualRate/100, req.Years)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	slog.Info("loan computed",
		"principal", req.Principal,
		"rate_pct", req.AnnualRate,
		"years", req.Years,
		"monthly_payment", result.MonthlyPayment,
	)

	metrics.ProjectionsTotal.WithLabelValues("loan").Inc()
	writeJSON(w, result)
}

// Mortgage handles POST /api/v1/calc/mortgage
func (s *Service) Mortgage(w http.ResponseWriter, r *http.Request) {
	var req projection.MortgageInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	req.AnnualRate /= 100

	result, err := projection.Mortgage(req)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	metrics.ProjectionsTotal.WithLabelValues("mortgage").Inc()
	writeJSON(w, result)
}

// Investment handles POST /api/v1/calc/investment
func (s *Service) Investment(w http.ResponseWriter, r *http.Request) {
	var req InvestmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := projection.Investment(req.InitialInvestment, req.MonthlyContribution, req.AnnualRate/100, req.Years)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	metrics.ProjectionsTotal.WithLabelValues("investment").Inc()
	writeJSON(w, result)
}

// Retirement handles POST /api/v1/calc/retirement
func (s *Service) Retirement(w http.ResponseWriter, r *http.Request) {
	var req RetirementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := projection.Retirement(req.CurrentAge, req.RetirementAge, req.CurrentSavings, req.MonthlyContribution, req.AnnualRate/100)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	metrics.ProjectionsTotal.WithLabelValues("retirement").Inc()
	writeJSON(w, result)
}

// SavingsGoal handles POST /api/v1/calc/savings-goal
func (s *Service) SavingsGoal(w http.ResponseWriter, r *http.Request) {
	var req SavingsGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := projection.SavingsGoal(req.Goal, req.Current, req.Years, req.AnnualRate/100)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	metrics.ProjectionsTotal.WithLabelValues("savings_goal").Inc()
	writeJSON(w, result)
}

// SavingsPayment handles POST /api/v1/calc/savings-payment
// Returns only the solved monthly deposit for a target balance.
func (s *Service) SavingsPayment(w http.ResponseWriter, r *http.Request) {
	var req SavingsPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	payment, err := annuity.SolvePayment(req.Goal, req.Current, req.AnnualRate/100/12, req.Months)
	if err != nil {
		status := http.StatusBadRequest
		if !errors.Is(err, annuity.ErrNonPositiveMonths) && !errors.Is(err, annuity.ErrNegativeRate) {
			status = http.StatusUnprocessableEntity
		}
		writeError(w, err.Error(), status)
		return
	}

	metrics.ProjectionsTotal.WithLabelValues("savings_payment").Inc()
	writeJSON(w, map[string]float64{"monthly_payment": payment})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
